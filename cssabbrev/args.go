/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cssabbrev

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/emmet/data"
)

// arg is one parsed argument: a number with a unit, or an opaque string
// (color or keyword).
type arg struct {
	number bool
	value  string
	unit   string
}

// render returns the argument text. Numbers drop their unit on unitless
// properties.
func (a arg) render(unitless bool) string {
	if a.number && !unitless {
		return a.value + a.unit
	}
	return a.value
}

var (
	numberRe = regexp.MustCompile(`\A(-?[0-9.]*[0-9][0-9.]*)`)
	colorRe  = regexp.MustCompile(`\A#([0-9a-fA-F]{1,6})(\.[0-9]+)?(rgb)?`)
	wordRe   = regexp.MustCompile(`\A[^ +#]+`)
)

// parseArgs parses the argument tail of a subexpression. Spaces and pluses
// separate arguments; each argument is a number, a color, or a bare word.
func parseArgs(tail string, tables *data.Tables, opts Options) []arg {
	var args []arg
	s := tail
	for {
		s = strings.TrimLeft(s, " +")
		if s == "" {
			return args
		}

		if m := numberRe.FindString(s); m != "" {
			s = s[len(m):]
			unit := ""
			if s != "" {
				if u, ok := tables.CSS.UnitAliases[string(s[0])]; ok {
					unit = u
					s = s[1:]
				}
			}
			if unit == "" {
				if strings.Contains(m, ".") {
					unit = tables.CSS.FloatUnit
				} else {
					unit = tables.CSS.IntUnit
				}
			}
			args = append(args, arg{number: true, value: m, unit: unit})
			continue
		}

		if m := colorRe.FindStringSubmatch(s); m != nil {
			s = s[len(m[0]):]
			args = append(args, arg{value: renderColor(m[1], m[2], m[3] != "", tables, opts)})
			continue
		}

		m := wordRe.FindString(s)
		s = s[len(m):]
		args = append(args, arg{value: resolveKeyword(m, tables)})
	}
}

// resolveKeyword maps a bare word through the keyword alias table, then
// tries a unique prefix of the known keywords, and otherwise passes the
// word through untouched.
func resolveKeyword(word string, tables *data.Tables) string {
	if full, ok := tables.CSS.KeywordAliases[word]; ok {
		return full
	}
	match := ""
	for _, kw := range tables.CSS.Keywords {
		if strings.HasPrefix(kw, word) {
			if match != "" {
				return word
			}
			match = kw
		}
	}
	if match != "" {
		return match
	}
	return word
}

// renderColor normalises a 1-6 character hex run to six characters, then
// renders it as #hex (optionally shortened, case per preference) or as an
// rgb()/rgba() decimal triple.
func renderColor(hex, alpha string, rgb bool, tables *data.Tables, opts Options) string {
	six := normalizeHex(hex)

	if rgb {
		r, g, b := hexComponents(six)
		if alpha != "" {
			return fmt.Sprintf("rgba(%d,%d,%d,0%s)", r, g, b, alpha)
		}
		return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
	}

	out := six
	if opts.ColorShorten && tables.CSS.Color.ShortenIfPossible &&
		out[0] == out[1] && out[2] == out[3] && out[4] == out[5] {
		out = string([]byte{out[0], out[2], out[4]})
	}

	switch caseOf(opts, tables) {
	case "upper":
		out = strings.ToUpper(out)
	case "lower":
		out = strings.ToLower(out)
	}
	return "#" + out
}

func caseOf(opts Options, tables *data.Tables) string {
	if opts.ColorCase != "" {
		return opts.ColorCase
	}
	return tables.CSS.Color.Case
}

// normalizeHex expands a 1-6 character run to exactly six: one character
// repeats, two triple, three double per character, four and five pad with
// zeros.
func normalizeHex(hex string) string {
	switch len(hex) {
	case 1:
		return strings.Repeat(hex, 6)
	case 2:
		return strings.Repeat(hex, 3)
	case 3:
		return string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
		return hex
	default:
		return hex + strings.Repeat("0", 6-len(hex))
	}
}

// hexComponents converts six hex characters to decimal channels.
func hexComponents(six string) (r, g, b int) {
	c, err := csscolorparser.Parse("#" + six)
	if err != nil {
		return 0, 0, 0
	}
	return int(math.Round(c.R * 255)),
		int(math.Round(c.G * 255)),
		int(math.Round(c.B * 255))
}
