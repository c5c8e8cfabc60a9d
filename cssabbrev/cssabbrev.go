/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cssabbrev expands CSS and Sass property abbreviations: snippet
// keys with numeric, color, and keyword arguments, an !important flag, and
// vendor-prefix decoration.
package cssabbrev

import (
	"regexp"
	"strings"

	"bennypowers.dev/emmet/data"
)

// Options control CSS rendering.
type Options struct {
	// Sass selects the sass snippet table (css fallback) and drops the
	// trailing semicolons.
	Sass bool

	// ColorCase is "auto" (keep as typed), "upper", or "lower".
	ColorCase string

	// ColorShorten collapses #aabbcc to #abc when the pairs match.
	ColorShorten bool
}

var explicitPrefixRe = regexp.MustCompile(`\A-([wmso]+)-`)

var prefixLetters = map[byte]string{
	'w': "webkit",
	'm': "moz",
	's': "ms",
	'o': "o",
}

// Expand renders a CSS abbreviation: one line per +-separated
// subexpression, with vendor-prefixed copies stacked above their base line.
func Expand(input string, tables *data.Tables, opts Options) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}

	var lines []string
	for _, token := range tokenize(input) {
		out, err := expandOne(token, tables, opts)
		if err != nil {
			return "", err
		}
		lines = append(lines, out)
	}
	return strings.Join(lines, "\n"), nil
}

// tokenize splits on + and re-joins when the right side opens with a
// numeric or color argument (or is empty): those pluses belong to the
// previous token, either as part of a key like bd+ or before a negative
// number.
func tokenize(input string) []string {
	parts := strings.Split(input, "+")
	var out []string
	for i := 0; i < len(parts); i++ {
		current := parts[i]
		for i+1 < len(parts) && continuesToken(parts[i+1]) {
			current += "+" + parts[i+1]
			i++
		}
		out = append(out, current)
	}
	return out
}

func continuesToken(next string) bool {
	if next == "" {
		return true
	}
	switch c := next[0]; {
	case c == ' ' || c == '#' || c == '$':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' && len(next) > 1 && next[1] >= '0' && next[1] <= '9':
		return true
	}
	return false
}

// expandOne renders a single subexpression.
func expandOne(token string, tables *data.Tables, opts Options) (string, error) {
	important := strings.HasSuffix(token, "!")
	token = strings.TrimSuffix(token, "!")

	var prefixes []string
	auto := false
	if m := explicitPrefixRe.FindStringSubmatch(token); m != nil {
		for i := 0; i < len(m[1]); i++ {
			prefixes = append(prefixes, prefixLetters[m[1][i]])
		}
		token = token[len(m[0]):]
	} else if strings.HasPrefix(token, "-") {
		auto = true
		token = token[1:]
	}

	key, tail := splitKeyArgs(token)
	args := parseArgs(tail, tables, opts)
	line, property := renderLine(key, args, tables, opts)

	if important {
		line = strings.TrimSuffix(line, ";") + " !important;"
	}

	if auto {
		prefixes = tables.Prefixes(property)
	}

	lines := make([]string, 0, len(prefixes)+1)
	for _, p := range prefixes {
		lines = append(lines, "-"+p+"-"+line)
	}
	lines = append(lines, line)

	if opts.Sass {
		for i := range lines {
			lines[i] = strings.TrimSuffix(lines[i], ";")
		}
	}
	return strings.Join(lines, "\n"), nil
}

// splitKeyArgs cuts the token at the first character that can open an
// argument: space, #, digit, $, or a minus followed by a digit.
func splitKeyArgs(token string) (key, tail string) {
	for i := 0; i < len(token); i++ {
		switch c := token[i]; {
		case c == ' ' || c == '#' || c == '$':
			return token[:i], token[i:]
		case c >= '0' && c <= '9':
			return token[:i], token[i:]
		case c == '-' && i+1 < len(token) && token[i+1] >= '0' && token[i+1] <= '9':
			return token[:i], token[i:]
		}
	}
	return token, ""
}

// renderLine renders key and args through the snippet table, falling back
// to "key: args;". It also reports the property name used for vendor
// prefix lookup.
func renderLine(key string, args []arg, tables *data.Tables, opts Options) (line, property string) {
	raw, ok := "", false
	if opts.Sass {
		raw, ok = tables.SassSnippets[key]
	}
	if !ok {
		raw, ok = tables.CSSSnippets[key]
	}
	if !ok {
		rendered := make([]string, len(args))
		for i, a := range args {
			rendered[i] = a.render(false)
		}
		return key + ": " + strings.Join(rendered, " ") + ";", key
	}

	tpl := compileCSSSnippet(raw)
	property = tpl.property
	if property == "" {
		property = key
	}
	return tpl.apply(args, tables.Unitless(tpl.property)), property
}
