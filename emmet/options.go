/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emmet

import "bennypowers.dev/emmet/data"

// ColorCase controls hex color casing in CSS output.
type ColorCase int

const (
	// ColorAuto defers to the color.case preference; "auto" there keeps
	// the case as typed.
	ColorAuto ColorCase = iota

	// ColorUpper forces upper case.
	ColorUpper

	// ColorLower forces lower case.
	ColorLower
)

func (c ColorCase) preference() string {
	switch c {
	case ColorUpper:
		return "upper"
	case ColorLower:
		return "lower"
	default:
		return ""
	}
}

// Options configure expansion. The zero value is not ready to use; start
// from DefaultOptions and override fields.
type Options struct {
	// IndentWidth is spaces per indent level.
	IndentWidth int

	// SelfClosingStyle closes a self-closing tag: " />", "/>", or ">".
	SelfClosingStyle string

	// JSX emits className/htmlFor and accepts {expr} attribute values.
	JSX bool

	// JSXBracesForClass emits className={a.b.c}.
	JSXBracesForClass bool

	// ColorCase controls hex casing in CSS output.
	ColorCase ColorCase

	// ColorShorten collapses #aabbcc to #abc when possible.
	ColorShorten bool

	// Extension picks the default filter chain from DefaultFilters when
	// the abbreviation names none.
	Extension string

	// DefaultFilters maps a file extension to a filter chain.
	DefaultFilters map[string][]string

	// FallbackFilter is the chain used when nothing else applies.
	FallbackFilter []string

	// LoremSeed seeds lorem generation; a fixed seed gives fixed output.
	LoremSeed uint64

	// LeafPlaceholder supplies body text for empty leaf tags, typically
	// an editor cursor marker. Nil leaves them empty.
	LeafPlaceholder func() string

	// Tables are the expansion tables. Nil uses the embedded defaults.
	Tables *data.Tables
}

// DefaultOptions returns the documented defaults: two-space indent,
// " />" self-closing style, color shortening on, html fallback filter.
func DefaultOptions() *Options {
	return &Options{
		IndentWidth:      2,
		SelfClosingStyle: " />",
		ColorShorten:     true,
		FallbackFilter:   []string{"html"},
	}
}

// normalized returns a copy with zero fields filled in.
func (o *Options) normalized() *Options {
	if o == nil {
		o = DefaultOptions()
	}
	out := *o
	if out.IndentWidth <= 0 {
		out.IndentWidth = 2
	}
	if out.SelfClosingStyle == "" {
		out.SelfClosingStyle = " />"
	}
	if len(out.FallbackFilter) == 0 {
		out.FallbackFilter = []string{"html"}
	}
	if out.Tables == nil {
		out.Tables = data.Default()
	}
	return &out
}

func (o *Options) filtersForExtension() []string {
	if o.Extension != "" {
		if chain, ok := o.DefaultFilters[o.Extension]; ok {
			return chain
		}
	}
	return o.FallbackFilter
}
