/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emmet_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/emmet/emmet"
)

func TestExpand_HTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "id with multiplied children",
			input: "ul#name>li.item*2",
			expected: "<ul id=\"name\">\n" +
				"  <li class=\"item\"></li>\n" +
				"  <li class=\"item\"></li>\n" +
				"</ul>",
		},
		{
			name:     "attribute and inline text",
			input:    "a[href=#]{click}",
			expected: `<a href="#">click</a>`,
		},
		{
			name:  "grouping with siblings",
			input: "div>(header>h1{Hi})+footer{©}",
			expected: "<div>\n" +
				"  <header>\n" +
				"    <h1>Hi</h1>\n" +
				"  </header>\n" +
				"  <footer>©</footer>\n" +
				"</div>",
		},
		{
			name:  "numbering in multiplied text",
			input: "p*3>{item $$}",
			expected: "<p>item 01</p>\n" +
				"<p>item 02</p>\n" +
				"<p>item 03</p>",
		},
		{
			name:     "implicit div",
			input:    ".wrapper",
			expected: `<div class="wrapper"></div>`,
		},
		{
			name:     "self closing default attr",
			input:    "img",
			expected: `<img src="" alt="" />`,
		},
		{
			name:     "no-body marker",
			input:    "p/",
			expected: "<p />",
		},
		{
			name:     "sibling chain",
			input:    "em+strong",
			expected: "<em></em>\n<strong></strong>",
		},
		{
			name:  "nested sibling binds right of child",
			input: "div>em+strong",
			expected: "<div>\n" +
				"  <em></em>\n" +
				"  <strong></strong>\n" +
				"</div>",
		},
		{
			name:  "trailing plus alias",
			input: "ul+",
			expected: "<ul>\n" +
				"  <li></li>\n" +
				"</ul>",
		},
		{
			name:     "alias merges shorthand onto first tag",
			input:    "bq.quote",
			expected: "<blockquote class=\"quote\"></blockquote>",
		},
		{
			name:  "multiplied parent numbers each clone and repeats the child",
			input: "ul>li.item$*3>a",
			expected: "<ul>\n" +
				"  <li class=\"item1\"><a href=\"\"></a></li>\n" +
				"  <li class=\"item2\"><a href=\"\"></a></li>\n" +
				"  <li class=\"item3\"><a href=\"\"></a></li>\n" +
				"</ul>",
		},
		{
			name:  "descending numbering",
			input: "p*3>{a$@-}",
			expected: "<p>a3</p>\n" +
				"<p>a2</p>\n" +
				"<p>a1</p>",
		},
		{
			name:  "numbering base",
			input: "p*2>{a$@3}",
			expected: "<p>a3</p>\n" +
				"<p>a4</p>",
		},
		{
			name:     "escaped dollar",
			input:    `p{\$var}`,
			expected: "<p>$var</p>",
		},
		{
			name:     "attribute deduplication keeps last value",
			input:    "p[a=1 a=2]",
			expected: `<p a="2"></p>`,
		},
		{
			name:     "class deduplication keeps first occurrence",
			input:    "p.a.b.a",
			expected: `<p class="a b"></p>`,
		},
		{
			name:     "escape filter",
			input:    "p{5 > 4 & 3 < 4}|e",
			expected: "&lt;p&gt;5 &gt; 4 &amp; 3 &lt; 4&lt;/p&gt;",
		},
		{
			name:     "last primary filter wins",
			input:    "p{hi}|haml|html",
			expected: "<p>hi</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := emmet.Expand(tt.input, emmet.ModeHTML, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExpand_Doctype(t *testing.T) {
	got, err := emmet.Expand("!", emmet.ModeHTML, nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "<!doctype html>\n<html lang=\"en\">"))
	assert.True(t, strings.HasSuffix(got, "</html>"))
	assert.Contains(t, got, "<meta charset=\"UTF-8\">")
}

func TestExpand_CSS(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "integer takes px",
			input:    "m10",
			expected: "margin: 10px;",
		},
		{
			name:     "float takes em",
			input:    "m1.5",
			expected: "margin: 1.5em;",
		},
		{
			name:     "unit aliases",
			input:    "m10p+p2e",
			expected: "margin: 10%;\npadding: 2em;",
		},
		{
			name:     "dash joins values as px",
			input:    "m10-20",
			expected: "margin: 10px 20px;",
		},
		{
			name:     "negative values",
			input:    "m-10--20",
			expected: "margin: -10px -20px;",
		},
		{
			name: "auto vendor prefixes",
			input: "-bdrs5",
			expected: "-webkit-border-radius: 5px;\n" +
				"-moz-border-radius: 5px;\n" +
				"border-radius: 5px;",
		},
		{
			name:     "color shortening with consumed alpha",
			input:    "c#f.5",
			expected: "color: #fff;",
		},
		{
			name:     "color expands two characters",
			input:    "c#ab",
			expected: "color: #ababab;",
		},
		{
			name:     "rgb suffix",
			input:    "c#0rgb",
			expected: "color: rgb(0,0,0);",
		},
		{
			name:     "rgba with alpha",
			input:    "c#f.5rgb",
			expected: "color: rgba(255,255,255,0.5);",
		},
		{
			name:     "important flag",
			input:    "p10!",
			expected: "padding: 10px !important;",
		},
		{
			name:     "unitless property",
			input:    "z100",
			expected: "z-index: 100;",
		},
		{
			name:     "snippet with defaults",
			input:    "bd+",
			expected: "border: 1px solid #000;",
		},
		{
			name:     "excess args join into last slot",
			input:    "bd1-s#0",
			expected: "border: 1px solid #000;",
		},
		{
			name:     "unknown key falls back",
			input:    "foo10",
			expected: "foo: 10px;",
		},
		{
			name: "explicit vendor subset",
			input: "-wm-trf",
			expected: "-webkit-transform: ;\n" +
				"-moz-transform: ;\n" +
				"transform: ;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := emmet.Expand(tt.input, emmet.ModeCSS, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExpand_Sass(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "semicolons stripped",
			input:    "m10",
			expected: "margin: 10px",
		},
		{
			name:     "sass snippet",
			input:    "@i compass",
			expected: `@import "compass"`,
		},
		{
			name:     "css fallback from sass mode",
			input:    "dn",
			expected: "display: none",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := emmet.Expand(tt.input, emmet.ModeSass, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExpand_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unbalanced text", input: "p{oops"},
		{name: "malformed multiplier", input: "p*x"},
		{name: "unclosed group", input: "(p"},
		{name: "unclosed attrs", input: "p[a=1"},
		{name: "trailing garbage", input: "p)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := emmet.Expand(tt.input, emmet.ModeHTML, nil)
			require.Error(t, err)

			var expErr *emmet.Error
			require.ErrorAs(t, err, &expErr)
			assert.Equal(t, emmet.KindParse, expErr.Kind)
		})
	}
}

func TestExpand_Determinism(t *testing.T) {
	opts := emmet.DefaultOptions()
	opts.LoremSeed = 42

	first, err := emmet.Expand("p*2>lorem10", emmet.ModeHTML, opts)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := emmet.Expand("p*2>lorem10", emmet.ModeHTML, opts)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestExpand_AliasFixedPoint(t *testing.T) {
	first, err := emmet.Expand("!", emmet.ModeHTML, nil)
	require.NoError(t, err)

	second, err := emmet.Expand("!", emmet.ModeHTML, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second, "cached alias must expand identically")
}

func TestExpand_SelfClosingNeverCloses(t *testing.T) {
	for _, input := range []string{"br", "hr", "img", "input", "meta", "p/"} {
		out, err := emmet.Expand(input, emmet.ModeHTML, nil)
		require.NoError(t, err)
		assert.NotContains(t, out, "</")
	}
}

func TestExpand_JSX(t *testing.T) {
	opts := emmet.DefaultOptions()
	opts.JSX = true

	t.Run("className and htmlFor", func(t *testing.T) {
		got, err := emmet.Expand("label.big[for=name]", emmet.ModeHTML, opts)
		require.NoError(t, err)
		assert.Equal(t, `<label className="big" htmlFor="name"></label>`, got)
	})

	t.Run("braced attribute value stays unquoted", func(t *testing.T) {
		got, err := emmet.Expand("p[onClick={handle}]", emmet.ModeHTML, opts)
		require.NoError(t, err)
		assert.Equal(t, `<p onClick={handle}></p>`, got)
	})

	t.Run("braces for class", func(t *testing.T) {
		braced := *opts
		braced.JSXBracesForClass = true
		got, err := emmet.Expand("p.styles.intro", emmet.ModeHTML, &braced)
		require.NoError(t, err)
		assert.Equal(t, `<p className={styles.intro}></p>`, got)
	})
}

func TestExpand_SelfClosingStyles(t *testing.T) {
	tests := []struct {
		style    string
		expected string
	}{
		{style: " />", expected: "<br />"},
		{style: "/>", expected: "<br/>"},
		{style: ">", expected: "<br>"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			opts := emmet.DefaultOptions()
			opts.SelfClosingStyle = tt.style
			got, err := emmet.Expand("br", emmet.ModeHTML, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExpand_DefaultFilterByExtension(t *testing.T) {
	opts := emmet.DefaultOptions()
	opts.Extension = "haml"
	opts.DefaultFilters = map[string][]string{"haml": {"haml"}}

	got, err := emmet.Expand("p{hi}", emmet.ModeHTML, opts)
	require.NoError(t, err)
	assert.Equal(t, "%p\n  hi", got)
}
