/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package abbrev

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"bennypowers.dev/emmet/data"
	"bennypowers.dev/emmet/scan"
)

// maxAliasDepth bounds alias-within-alias expansion so a cyclic overlay
// cannot recurse forever.
const maxAliasDepth = 10

var (
	// filterRe splits an abbreviation from its trailing filter chain. The
	// tail must be a |-separated run of lowercase names, which keeps the
	// split out of {..} text and quoted attribute values. A tail containing
	// } or " simply fails the character class; that heuristic is inherited
	// and its weakness (a filter-like tail inside trailing text) is
	// documented, not fixed.
	filterRe = regexp.MustCompile(`(?s)\A(.*?)\|([a-z][a-z0-9]*(?:\|[a-z][a-z0-9]*)*)\z`)

	tagNameRe = scan.Anchored(`([A-Za-z!][A-Za-z0-9:!$@-]*)(/?)`)
	idRe      = scan.Anchored(`#([A-Za-z0-9$@_-]+)`)
	classRe   = scan.Anchored(`\.([A-Za-z0-9$@_-]+)`)
	multRe    = scan.Anchored(`\*([0-9]+)`)
	loremRe   = regexp.MustCompile(`\A(?:lorem|ipsum)([0-9]*)\z`)
)

// defaultLoremWords is the word count for a bare lorem/ipsum placeholder.
const defaultLoremWords = 30

// ParseError is a syntax error in an abbreviation. Position is a byte
// offset into the input, or -1 when the failing production is unknown.
type ParseError struct {
	Message  string
	Position int
}

func (e *ParseError) Error() string {
	return e.Message
}

// Parser parses abbreviations against a table set.
type Parser struct {
	tables *data.Tables
	jsx    bool
}

// NewParser returns a parser over the given tables. jsx enables {expr}
// attribute values.
func NewParser(tables *data.Tables, jsx bool) *Parser {
	return &Parser{tables: tables, jsx: jsx}
}

// Parse parses a full abbreviation. It returns the expression tree and the
// trailing filter chain, nil when the input names none.
func (p *Parser) Parse(input string) (Expr, []string, error) {
	body := input
	var filters []string
	if m := filterRe.FindStringSubmatch(input); m != nil {
		body = m[1]
		filters = strings.Split(m[2], "|")
	}

	expr, rest, err := p.subexpr(body, 0)
	if err != nil {
		return nil, nil, &ParseError{Message: err.Error(), Position: -1}
	}
	if rest != "" {
		return nil, nil, &ParseError{
			Message:  fmt.Sprintf("unexpected %q", rest),
			Position: len(body) - len(rest),
		}
	}
	return expr, filters, nil
}

// subexpr parses a sibling chain: sibling ('+' subexpr)?
func (p *Parser) subexpr(input string, depth int) (Expr, string, error) {
	left, rest, err := p.sibling(input, depth)
	if err != nil {
		return nil, input, err
	}

	if !strings.HasPrefix(rest, "+") {
		return left, rest, nil
	}

	right, rest2, err := p.subexpr(rest[1:], depth)
	if err == nil {
		return &Sibling{Left: left, Right: right}, rest2, nil
	}

	// A trailing + re-expands a "name+" alias: ul+ is ul>li.
	if t, ok := left.(*Tag); ok {
		name := t.Name.String() + "+"
		if value, found := p.tables.HTMLAliases[name]; found {
			expanded, aerr := p.expandAlias(value, t, depth)
			if aerr != nil {
				return nil, input, aerr
			}
			return expanded, rest[1:], nil
		}
	}
	return nil, input, err
}

// sibling parses one unit: a group, tag, or text, with optional *N
// multiplication and optional >child.
func (p *Parser) sibling(input string, depth int) (Expr, string, error) {
	base, rest, err := scan.Or(input,
		func(s string) (Expr, string, error) { return p.pexpr(s, depth) },
		func(s string) (Expr, string, error) { return p.tag(s, depth) },
		p.text,
	)
	if err != nil {
		return nil, input, err
	}

	count := 0
	if strings.HasPrefix(rest, "*") {
		m, r, merr := scan.Match(multRe, rest, "*n where n is a number")
		if merr != nil {
			return nil, input, merr
		}
		count, _ = strconv.Atoi(m[1])
		rest = r
	}

	childable := true
	switch base.(type) {
	case *Text, *Lorem:
		childable = false
	}

	if childable && strings.HasPrefix(rest, ">") {
		child, r, cerr := p.subexpr(rest[1:], depth)
		if cerr != nil {
			return nil, input, cerr
		}
		if count > 0 {
			// Each parent clone pairs with the child instantiated for
			// its own index, so numbering in the child tracks the
			// parent's multiplication.
			items := make([]Expr, count)
			for i := 0; i < count; i++ {
				items[i] = &ParentChild{
					Parent: Instantiate(base, i, count),
					Child:  Instantiate(child, i, count),
				}
			}
			return &List{Items: items}, r, nil
		}
		return &ParentChild{Parent: base, Child: child}, r, nil
	}

	if count > 0 {
		items := make([]Expr, count)
		for i := 0; i < count; i++ {
			items[i] = Instantiate(base, i, count)
		}
		return &List{Items: items}, rest, nil
	}
	return base, rest, nil
}

// pexpr parses a parenthesised group.
func (p *Parser) pexpr(input string, depth int) (Expr, string, error) {
	if !strings.HasPrefix(input, "(") {
		return nil, input, errors.New("expected (")
	}
	inner, rest, err := p.subexpr(input[1:], depth)
	if err != nil {
		return nil, input, err
	}
	if !strings.HasPrefix(rest, ")") {
		return nil, input, errors.New("expected )")
	}
	return inner, rest[1:], nil
}

// tag parses a single element: name, #id, .classes, [attrs], {text}, in any
// order after the name. A missing name with a leading # or . is an implicit
// div. Aliases and lorem placeholders are resolved here.
func (p *Parser) tag(input string, depth int) (Expr, string, error) {
	var name string
	hasBody := true
	rest := input

	if m, r, err := scan.Match(tagNameRe, input, "tagname"); err == nil {
		name = m[1]
		hasBody = m[2] != "/"
		rest = r
	} else if strings.HasPrefix(input, "#") || strings.HasPrefix(input, ".") {
		name = "div"
	} else {
		return nil, input, errors.New("expected tagname")
	}

	t := &Tag{Name: SplitNumbering(name), HasBody: hasBody}

	for {
		if m, r, err := scan.Match(idRe, rest, "id"); err == nil {
			t.ID = SplitNumbering(m[1])
			rest = r
			continue
		}
		if m, r, err := scan.Match(classRe, rest, "class"); err == nil {
			t.Classes = append(t.Classes, SplitNumbering(m[1]))
			rest = r
			continue
		}
		if strings.HasPrefix(rest, "[") {
			props, r, err := p.attrs(rest[1:])
			if err != nil {
				return nil, input, err
			}
			t.Props = append(t.Props, props...)
			rest = r
			continue
		}
		if strings.HasPrefix(rest, "{") {
			content, r, err := innerText(rest[1:])
			if err != nil {
				return nil, input, err
			}
			t.Text = SplitNumbering(content)
			rest = r
			continue
		}
		break
	}

	if m := loremRe.FindStringSubmatch(name); m != nil {
		words := defaultLoremWords
		if m[1] != "" {
			words, _ = strconv.Atoi(m[1])
		}
		if t.ID == nil && len(t.Classes) == 0 && len(t.Props) == 0 {
			return &Lorem{Words: words}, rest, nil
		}
		wrapper := &Tag{Name: SplitNumbering("div"), HasBody: true,
			ID: t.ID, Classes: t.Classes, Props: t.Props}
		return &ParentChild{Parent: wrapper, Child: &Lorem{Words: words}}, rest, nil
	}

	if value, ok := p.tables.HTMLAliases[name]; ok {
		expanded, err := p.expandAlias(value, t, depth)
		if err != nil {
			return nil, input, err
		}
		return expanded, rest, nil
	}

	return t, rest, nil
}

// attrs parses the inside of a [..] block. input starts after the opening
// bracket.
func (p *Parser) attrs(input string) ([]Prop, string, error) {
	inside, rest, err := p.bracketContent(input)
	if err != nil {
		return nil, input, err
	}

	var props []Prop
	s := inside
	for {
		s = strings.TrimLeft(s, " ")
		if s == "" {
			break
		}

		end := strings.IndexAny(s, " =")
		var name string
		if end < 0 {
			name, s = s, ""
		} else {
			name, s = s[:end], s[end:]
		}
		if name == "" {
			return nil, input, errors.New("attribute name")
		}

		var value string
		if strings.HasPrefix(s, "=") {
			s = s[1:]
			switch {
			case strings.HasPrefix(s, `"`):
				quote := strings.Index(s[1:], `"`)
				if quote < 0 {
					return nil, input, errors.New("closing quote")
				}
				value, s = s[1:1+quote], s[quote+2:]
			case p.jsx && strings.HasPrefix(s, "{"):
				body, r, berr := balancedBraces(s)
				if berr != nil {
					return nil, input, berr
				}
				value, s = body, r
			default:
				stop := strings.IndexAny(s, " ,+>{})")
				if stop < 0 {
					value, s = s, ""
				} else {
					value, s = s[:stop], s[stop:]
					// separators other than space belong to no one
					if s != "" && s[0] != ' ' {
						s = s[1:]
					}
				}
			}
		}

		props = append(props, Prop{Key: name, Value: SplitNumbering(value)})
	}

	return props, rest, nil
}

// bracketContent finds the closing bracket, honouring quoted values and, in
// JSX mode, braced expressions.
func (p *Parser) bracketContent(s string) (inside, rest string, err error) {
	inQuote := false
	braceDepth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuote = !inQuote
		case '{':
			if p.jsx && !inQuote {
				braceDepth++
			}
		case '}':
			if p.jsx && !inQuote && braceDepth > 0 {
				braceDepth--
			}
		case ']':
			if !inQuote && braceDepth == 0 {
				return s[:i], s[i+1:], nil
			}
		}
	}
	return "", s, errors.New("expected ]")
}

// balancedBraces consumes a {..} run including the braces.
func balancedBraces(s string) (body, rest string, err error) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], s[i+1:], nil
			}
		}
	}
	return "", s, errors.New("closing brace")
}

// text parses a bare {..} text block.
func (p *Parser) text(input string) (Expr, string, error) {
	if !strings.HasPrefix(input, "{") {
		return nil, input, errors.New("expected {")
	}
	content, rest, err := innerText(input[1:])
	if err != nil {
		return nil, input, err
	}
	return &Text{Content: SplitNumbering(content)}, rest, nil
}

// innerText consumes balanced-brace text. input starts after the opening
// brace; the raw content is returned with escapes intact so numbering
// splitting can resolve them.
func innerText(input string) (content, rest string, err error) {
	depth := 1
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[:i], input[i+1:], nil
			}
		}
	}
	return "", input, errors.New("expected inner text")
}
