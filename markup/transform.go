/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package markup renders an abbreviation tree to markup text. Four
// tag-makers share one resolved tag record: plain HTML, comment-decorated
// HTML, HAML, and Hiccup; the e filter XML-escapes whichever of them ran.
package markup

import (
	"fmt"
	"math/rand"
	"strings"

	"bennypowers.dev/emmet/abbrev"
	"bennypowers.dev/emmet/data"
	"bennypowers.dev/emmet/lorem"
)

// Recognised filter names.
const (
	FilterHTML    = "html"
	FilterComment = "c"
	FilterHAML    = "haml"
	FilterHiccup  = "hic"
	FilterEscape  = "e"
)

// Options control rendering.
type Options struct {
	// IndentWidth is the number of spaces per indent level.
	IndentWidth int

	// SelfClosingStyle closes a self-closing tag: " />", "/>", or ">".
	SelfClosingStyle string

	// JSX renders className/htmlFor and unquotes {expr} attribute values.
	JSX bool

	// JSXBracesForClass renders className={a.b.c} instead of a quoted list.
	JSXBracesForClass bool

	// LeafPlaceholder supplies body text for empty non-self-closing tags.
	LeafPlaceholder func() string

	// LoremSeed seeds the generator behind lorem placeholders.
	LoremSeed uint64
}

// maker renders one resolved tag around already-rendered child content.
type maker func(r *renderer, t *tagRecord, content string) string

// tagRecord is a tag with numbering resolved, classes deduplicated, and
// default attributes merged in.
type tagRecord struct {
	Name     string
	HasBody  bool
	ID       string
	Classes  []string
	Props    []data.Attr
	Text     string
	Settings data.TagSettings
}

type renderer struct {
	tables *data.Tables
	opts   Options
	make   maker
	rng    *rand.Rand
}

// Transform renders e using the given filter chain. Unknown filter names
// are ignored; when several primary makers are listed the last one wins.
func Transform(e abbrev.Expr, filters []string, tables *data.Tables, opts Options) (string, error) {
	primary := FilterHTML
	escape := false
	for _, f := range filters {
		switch f {
		case FilterHTML, FilterComment, FilterHAML, FilterHiccup:
			primary = f
		case FilterEscape:
			escape = true
		}
	}

	r := &renderer{
		tables: tables,
		opts:   opts,
		rng:    rand.New(rand.NewSource(int64(opts.LoremSeed))),
	}
	switch primary {
	case FilterComment:
		r.make = makeCommentTag
	case FilterHAML:
		r.make = makeHAMLTag
	case FilterHiccup:
		r.make = makeHiccupTag
	default:
		r.make = makeHTMLTag
	}

	out, err := r.render(e, "")
	if err != nil {
		return "", err
	}
	if escape {
		out = Escape(out)
	}
	return out, nil
}

// render walks the tree. content is pending child markup waiting for the
// nearest enclosing tag; list and sibling parents hand it to every item.
func (r *renderer) render(e abbrev.Expr, content string) (string, error) {
	switch v := e.(type) {
	case *abbrev.List:
		outs := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			s, err := r.render(item, content)
			if err != nil {
				return "", err
			}
			outs = append(outs, s)
		}
		return strings.Join(outs, "\n"), nil

	case *abbrev.Sibling:
		left, err := r.render(v.Left, content)
		if err != nil {
			return "", err
		}
		right, err := r.render(v.Right, content)
		if err != nil {
			return "", err
		}
		return left + "\n" + right, nil

	case *abbrev.ParentChild:
		child, err := r.render(v.Child, content)
		if err != nil {
			return "", err
		}
		return r.render(v.Parent, child)

	case *abbrev.Tag:
		return r.make(r, r.resolve(v), content), nil

	case *abbrev.Text:
		return v.Content.String() + content, nil

	case *abbrev.Lorem:
		return lorem.Paragraph(r.rng, v.Words) + content, nil
	}

	return "", fmt.Errorf("cannot render %T node", e)
}

// resolve flattens a tag for the makers: numbering outside multiplication
// gets index 0 of 1, classes deduplicate keeping first occurrence, props
// deduplicate by key with the last value winning, and default attributes
// fill in around them.
func (r *renderer) resolve(t *abbrev.Tag) *tagRecord {
	rec := &tagRecord{
		Name:    t.Name.String(),
		HasBody: t.HasBody,
	}
	rec.Settings = r.tables.Settings(rec.Name)
	if t.ID != nil {
		rec.ID = t.ID.String()
	}
	if t.Text != nil {
		rec.Text = t.Text.String()
	}

	for _, c := range t.Classes {
		s := c.String()
		seen := false
		for _, existing := range rec.Classes {
			if existing == s {
				seen = true
				break
			}
		}
		if !seen {
			rec.Classes = append(rec.Classes, s)
		}
	}

	var user []data.Attr
	for _, p := range t.Props {
		value := p.Value.String()
		replaced := false
		for i := range user {
			if user[i].Key == p.Key {
				user[i].Value = value
				replaced = true
				break
			}
		}
		if !replaced {
			user = append(user, data.Attr{Key: p.Key, Value: value})
		}
	}

	for _, def := range rec.Settings.DefaultAttr {
		attr := def
		for i, u := range user {
			if u.Key == def.Key {
				attr = u
				user = append(user[:i], user[i+1:]...)
				break
			}
		}
		rec.Props = append(rec.Props, attr)
	}
	rec.Props = append(rec.Props, user...)

	return rec
}

// indent prefixes every line of s with one indent level.
func (r *renderer) indent(s string) string {
	pad := strings.Repeat(" ", r.opts.IndentWidth)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}

// Escape XML-escapes s. Ampersands go first so the entities introduced for
// < and > are not escaped twice.
func Escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
