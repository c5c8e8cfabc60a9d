/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package emmet expands Emmet abbreviations to markup and stylesheet text.
// One call, no I/O: Expand is a pure function of the input, the options,
// and the lorem seed.
package emmet

import (
	"errors"

	"bennypowers.dev/emmet/abbrev"
	"bennypowers.dev/emmet/cssabbrev"
	"bennypowers.dev/emmet/markup"
)

// Mode selects the expansion dialect.
type Mode int

const (
	// ModeHTML expands element abbreviations.
	ModeHTML Mode = iota

	// ModeCSS expands property abbreviations.
	ModeCSS

	// ModeSass expands property abbreviations against the sass snippet
	// table and drops trailing semicolons.
	ModeSass
)

// String returns the mode's flag spelling.
func (m Mode) String() string {
	switch m {
	case ModeCSS:
		return "css"
	case ModeSass:
		return "sass"
	default:
		return "html"
	}
}

// ParseMode converts a flag spelling to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "html", "":
		return ModeHTML, nil
	case "css":
		return ModeCSS, nil
	case "sass":
		return ModeSass, nil
	}
	return 0, &Error{Kind: KindInvalidInput, Message: "unknown mode " + s, Position: -1}
}

// Expand expands one abbreviation. A nil opts expands with defaults.
func Expand(input string, mode Mode, opts *Options) (string, error) {
	opts = opts.normalized()

	switch mode {
	case ModeCSS, ModeSass:
		return expandCSS(input, mode, opts)
	default:
		return expandHTML(input, opts)
	}
}

func expandHTML(input string, opts *Options) (string, error) {
	parser := abbrev.NewParser(opts.Tables, opts.JSX)
	expr, filters, err := parser.Parse(input)
	if err != nil {
		position := -1
		var perr *abbrev.ParseError
		if errors.As(err, &perr) {
			position = perr.Position
		}
		return "", &Error{Kind: KindParse, Message: err.Error(), Position: position}
	}

	if filters == nil {
		filters = opts.filtersForExtension()
	}

	out, err := markup.Transform(expr, filters, opts.Tables, markup.Options{
		IndentWidth:       opts.IndentWidth,
		SelfClosingStyle:  opts.SelfClosingStyle,
		JSX:               opts.JSX,
		JSXBracesForClass: opts.JSXBracesForClass,
		LeafPlaceholder:   opts.LeafPlaceholder,
		LoremSeed:         opts.LoremSeed,
	})
	if err != nil {
		return "", &Error{Kind: KindInvalidInput, Message: err.Error(), Position: -1}
	}
	return out, nil
}

func expandCSS(input string, mode Mode, opts *Options) (string, error) {
	out, err := cssabbrev.Expand(input, opts.Tables, cssabbrev.Options{
		Sass:         mode == ModeSass,
		ColorCase:    opts.ColorCase.preference(),
		ColorShorten: opts.ColorShorten,
	})
	if err != nil {
		return "", &Error{Kind: KindParse, Message: err.Error(), Position: -1}
	}
	return out, nil
}
