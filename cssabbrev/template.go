/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cssabbrev

import (
	"regexp"
	"strings"
	"sync"
)

// cssPiece is one fragment of a compiled snippet: literal text, or a
// placeholder taking argument idx with a fallback default.
type cssPiece struct {
	lit string
	ph  bool
	idx int
	def string
}

// cssTemplate is a compiled snippet. property is the text before the first
// colon, used for the unitless and vendor-prefix lookups.
type cssTemplate struct {
	property string
	pieces   []cssPiece
	idxMax   int
}

var (
	propertyRe       = regexp.MustCompile(`\A([a-z-]+):(.+)\z`)
	cssPlaceholderRe = regexp.MustCompile(`\||\$\{([0-9]*)(?::([^}]*))?\}`)

	// cssTemplateCache memoises compiled snippets by source string.
	// Write-once per key; never invalidated.
	cssTemplateCache sync.Map // string -> *cssTemplate
)

// compileCSSSnippet parses a snippet into literal pieces and placeholders.
// A bare | takes the next argument in order; ${N} takes argument N and
// moves the order there; ${N:default} adds a fallback. The compact
// "property:body" form from the data files gains a space after the colon.
func compileCSSSnippet(raw string) *cssTemplate {
	if cached, ok := cssTemplateCache.Load(raw); ok {
		return cached.(*cssTemplate)
	}

	s := raw
	tpl := &cssTemplate{idxMax: -1}
	if m := propertyRe.FindStringSubmatch(s); m != nil {
		tpl.property = m[1]
		s = m[1] + ": " + m[2]
	}

	next := 0
	last := 0
	for _, loc := range cssPlaceholderRe.FindAllStringSubmatchIndex(s, -1) {
		if loc[0] > last {
			tpl.pieces = append(tpl.pieces, cssPiece{lit: s[last:loc[0]]})
		}

		idx := next
		def := ""
		if loc[2] >= 0 && loc[3] > loc[2] {
			n := 0
			for _, c := range s[loc[2]:loc[3]] {
				n = n*10 + int(c-'0')
			}
			idx = n - 1
		}
		if loc[4] >= 0 {
			def = s[loc[4]:loc[5]]
		}
		next = idx + 1
		if idx > tpl.idxMax {
			tpl.idxMax = idx
		}

		tpl.pieces = append(tpl.pieces, cssPiece{ph: true, idx: idx, def: def})
		last = loc[1]
	}
	if last < len(s) {
		tpl.pieces = append(tpl.pieces, cssPiece{lit: s[last:]})
	}

	cssTemplateCache.Store(raw, tpl)
	return tpl
}

// apply renders the template against parsed arguments. Arguments beyond
// the highest referenced index are folded, space-joined, into the last
// referenced slot.
func (t *cssTemplate) apply(args []arg, unitless bool) string {
	vals := make([]string, len(args))
	for i, a := range args {
		vals[i] = a.render(unitless)
	}
	if t.idxMax >= 0 && len(vals) > t.idxMax+1 {
		vals[t.idxMax] = strings.Join(vals[t.idxMax:], " ")
		vals = vals[:t.idxMax+1]
	}

	var b strings.Builder
	for _, piece := range t.pieces {
		if !piece.ph {
			b.WriteString(piece.lit)
			continue
		}
		value := piece.def
		if piece.idx >= 0 && piece.idx < len(vals) && vals[piece.idx] != "" {
			value = vals[piece.idx]
		}
		b.WriteString(value)
	}
	return b.String()
}
