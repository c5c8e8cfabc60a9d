/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package markup

import (
	"regexp"
	"strings"
	"sync"
)

// childSentinel marks where child markup lands inside a snippet.
const childSentinel = "${child}"

// placeholderRe matches editor-style ${N} and ${N:default} placeholders in
// snippet text. The engine has no cursor, so they collapse to their default.
var placeholderRe = regexp.MustCompile(`\$\{[0-9]+(?::([^}]*))?\}`)

// htmlTemplate is a compiled snippet: literal text around the child slot.
type htmlTemplate struct {
	prefix string
	suffix string
}

// htmlTemplateCache memoises compiled snippets by source string. Entries
// are write-once; a concurrent double compile produces an identical value.
var htmlTemplateCache sync.Map // string -> htmlTemplate

func compileHTMLSnippet(raw string) htmlTemplate {
	if cached, ok := htmlTemplateCache.Load(raw); ok {
		return cached.(htmlTemplate)
	}

	s := placeholderRe.ReplaceAllString(raw, "$1")
	prefix, suffix, _ := strings.Cut(s, childSentinel)
	tpl := htmlTemplate{prefix: prefix, suffix: suffix}
	htmlTemplateCache.Store(raw, tpl)
	return tpl
}

// makeHTMLTag renders one tag as HTML. Snippet-backed names expand their
// template; everything else builds an element from the resolved record.
func makeHTMLTag(r *renderer, t *tagRecord, content string) string {
	if raw, ok := r.tables.HTMLSnippets[t.Name]; ok {
		tpl := compileHTMLSnippet(raw)
		return tpl.prefix + t.Text + content + tpl.suffix
	}

	open := "<" + t.Name + r.htmlAttrs(t)

	selfClosing := t.Text == "" && content == "" &&
		(!t.HasBody || t.Settings.SelfClosing)
	if selfClosing {
		return open + r.opts.SelfClosingStyle
	}

	text := t.Text
	if text == "" && content == "" && r.opts.LeafPlaceholder != nil {
		text = r.opts.LeafPlaceholder()
	}

	closing := "</" + t.Name + ">"
	if content != "" && (strings.Contains(content, "\n") || t.Settings.Block) {
		inner := content
		if text != "" {
			inner = text + "\n" + content
		}
		return open + ">\n" + r.indent(inner) + "\n" + closing
	}
	return open + ">" + text + content + closing
}

// htmlAttrs renders id, classes, and attributes. JSX mode renames class
// and for, and leaves {expr} values unquoted.
func (r *renderer) htmlAttrs(t *tagRecord) string {
	var b strings.Builder

	if t.ID != "" {
		b.WriteString(` id="` + t.ID + `"`)
	}

	if len(t.Classes) > 0 {
		if r.opts.JSX {
			if r.opts.JSXBracesForClass {
				b.WriteString(` className={` + strings.Join(t.Classes, ".") + `}`)
			} else {
				b.WriteString(` className="` + strings.Join(t.Classes, " ") + `"`)
			}
		} else {
			b.WriteString(` class="` + strings.Join(t.Classes, " ") + `"`)
		}
	}

	for _, p := range t.Props {
		key := p.Key
		if r.opts.JSX && key == "for" {
			key = "htmlFor"
		}
		if r.opts.JSX && strings.HasPrefix(p.Value, "{") && strings.HasSuffix(p.Value, "}") {
			b.WriteString(" " + key + "=" + p.Value)
			continue
		}
		b.WriteString(" " + key + `="` + p.Value + `"`)
	}

	return b.String()
}
