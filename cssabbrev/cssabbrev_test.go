/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cssabbrev

import (
	"reflect"
	"testing"

	"bennypowers.dev/emmet/data"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "plain split",
			input:    "m10+p5",
			expected: []string{"m10", "p5"},
		},
		{
			name:     "color argument rejoins",
			input:    "bd+#f",
			expected: []string{"bd+#f"},
		},
		{
			name:     "trailing plus belongs to key",
			input:    "bd+",
			expected: []string{"bd+"},
		},
		{
			name:     "negative number rejoins",
			input:    "m-5+-10",
			expected: []string{"m-5+-10"},
		},
		{
			name:     "mixed",
			input:    "p10+m-5+-10+c#f",
			expected: []string{"p10", "m-5+-10", "c#f"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tokenize(tt.input); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSplitKeyArgs(t *testing.T) {
	tests := []struct {
		input string
		key   string
		tail  string
	}{
		{input: "m10", key: "m", tail: "10"},
		{input: "bdrs5", key: "bdrs", tail: "5"},
		{input: "c#f", key: "c", tail: "#f"},
		{input: "m-10", key: "m", tail: "-10"},
		{input: "bd+#f", key: "bd+", tail: "#f"},
		{input: "dn", key: "dn", tail: ""},
		{input: "@i compass", key: "@i", tail: " compass"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, tail := splitKeyArgs(tt.input)
			if key != tt.key || tail != tt.tail {
				t.Errorf("splitKeyArgs(%q) = (%q, %q), want (%q, %q)",
					tt.input, key, tail, tt.key, tt.tail)
			}
		})
	}
}

func TestParseArgs(t *testing.T) {
	tables := data.Default()
	opts := Options{ColorShorten: true}

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "integer", input: "10", expected: []string{"10px"}},
		{name: "float", input: ".5", expected: []string{".5em"}},
		{name: "unit alias", input: "10p", expected: []string{"10%"}},
		{name: "dash is px", input: "10-20", expected: []string{"10px", "20px"}},
		{name: "color", input: "#f", expected: []string{"#fff"}},
		{name: "keyword alias", input: "s", expected: []string{"solid"}},
		{name: "keyword unique prefix", input: "inh", expected: []string{"inherit"}},
		{name: "opaque word", input: "banana", expected: []string{"banana"}},
		{name: "combination", input: "1-s#0", expected: []string{"1px", "solid", "#000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := parseArgs(tt.input, tables, opts)
			got := make([]string, len(args))
			for i, a := range args {
				got[i] = a.render(false)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("parseArgs(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "f", expected: "ffffff"},
		{input: "ab", expected: "ababab"},
		{input: "abc", expected: "aabbcc"},
		{input: "abcd", expected: "abcd00"},
		{input: "abcde", expected: "abcde0"},
		{input: "a1b2c3", expected: "a1b2c3"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := normalizeHex(tt.input); got != tt.expected {
				t.Errorf("normalizeHex(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRenderColor(t *testing.T) {
	tables := data.Default()

	tests := []struct {
		name     string
		hex      string
		alpha    string
		rgb      bool
		opts     Options
		expected string
	}{
		{
			name: "shortened", hex: "f",
			opts: Options{ColorShorten: true}, expected: "#fff",
		},
		{
			name: "not shortened when off", hex: "f",
			opts: Options{}, expected: "#ffffff",
		},
		{
			name: "unshortenable", hex: "a1b2c3",
			opts: Options{ColorShorten: true}, expected: "#a1b2c3",
		},
		{
			name: "upper case", hex: "f",
			opts: Options{ColorCase: "upper", ColorShorten: true}, expected: "#FFF",
		},
		{
			name: "lower case forces", hex: "F",
			opts: Options{ColorCase: "lower", ColorShorten: true}, expected: "#fff",
		},
		{
			name: "auto keeps typed case", hex: "F",
			opts: Options{ColorCase: "auto", ColorShorten: true}, expected: "#FFF",
		},
		{
			name: "rgb decimal", hex: "f", rgb: true,
			opts: Options{}, expected: "rgb(255,255,255)",
		},
		{
			name: "rgba with alpha", hex: "0", alpha: ".25", rgb: true,
			opts: Options{}, expected: "rgba(0,0,0,0.25)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderColor(tt.hex, tt.alpha, tt.rgb, tables, tt.opts)
			if got != tt.expected {
				t.Errorf("renderColor = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCompileCSSSnippet(t *testing.T) {
	t.Run("space inserted after property", func(t *testing.T) {
		tpl := compileCSSSnippet("margin:|;")
		if tpl.property != "margin" {
			t.Errorf("property = %q", tpl.property)
		}
		if got := tpl.apply(nil, false); got != "margin: ;" {
			t.Errorf("empty apply = %q", got)
		}
	})

	t.Run("defaults fill missing args", func(t *testing.T) {
		tpl := compileCSSSnippet("border:${1:1px} ${2:solid} ${3:#000};")
		if got := tpl.apply(nil, false); got != "border: 1px solid #000;" {
			t.Errorf("apply = %q", got)
		}
	})

	t.Run("compilation is memoised", func(t *testing.T) {
		a := compileCSSSnippet("padding:|;")
		b := compileCSSSnippet("padding:|;")
		if a != b {
			t.Error("same source compiled twice")
		}
	})

	t.Run("excess args fold into last slot", func(t *testing.T) {
		tpl := compileCSSSnippet("margin:|;")
		args := []arg{
			{number: true, value: "1", unit: "px"},
			{number: true, value: "2", unit: "px"},
			{number: true, value: "3", unit: "px"},
		}
		if got := tpl.apply(args, false); got != "margin: 1px 2px 3px;" {
			t.Errorf("apply = %q", got)
		}
	})

	t.Run("unitless drops units", func(t *testing.T) {
		tpl := compileCSSSnippet("z-index:|;")
		args := []arg{{number: true, value: "5", unit: "px"}}
		if got := tpl.apply(args, true); got != "z-index: 5;" {
			t.Errorf("apply = %q", got)
		}
	})
}

func TestExpand_VendorPrefixes(t *testing.T) {
	tables := data.Default()

	t.Run("auto uses property list", func(t *testing.T) {
		got, err := Expand("-bdrs5", tables, Options{ColorShorten: true})
		if err != nil {
			t.Fatal(err)
		}
		want := "-webkit-border-radius: 5px;\n-moz-border-radius: 5px;\nborder-radius: 5px;"
		if got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("auto defaults to all four", func(t *testing.T) {
		got, err := Expand("-mystery5", tables, Options{})
		if err != nil {
			t.Fatal(err)
		}
		want := "-webkit-mystery: 5px;\n-moz-mystery: 5px;\n-ms-mystery: 5px;\n-o-mystery: 5px;\nmystery: 5px;"
		if got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("explicit subset in letter order", func(t *testing.T) {
		got, err := Expand("-so-us", tables, Options{})
		if err != nil {
			t.Fatal(err)
		}
		want := "-ms-user-select: ;\n-o-user-select: ;\nuser-select: ;"
		if got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})
}
