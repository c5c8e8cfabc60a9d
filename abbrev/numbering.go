/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package abbrev

import (
	"fmt"
	"strconv"
	"strings"
)

// Part is a fragment of a literal: either a Lit string or a Num directive.
type Part interface {
	part()
}

// Lit is plain text.
type Lit string

// Num is a $-run numbering directive. A run of k dollars renders the clone
// number zero-padded to k digits. @B sets the base, @- reverses direction,
// @-B does both.
type Num struct {
	Digits    int
	Ascending bool
	Base      int
}

func (Lit) part() {}
func (Num) part() {}

// Parts is a literal split into static chunks and numbering directives.
// A nil Parts means the field is absent.
type Parts []Part

// SplitNumbering splits s into literal chunks and numbering directives.
// Backslash escapes the next character, so \$ is a literal dollar; escapes
// are resolved here.
func SplitNumbering(s string) Parts {
	var out Parts
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			out = append(out, Lit(lit.String()))
			lit.Reset()
		}
	}

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			lit.WriteByte(s[i+1])
			i += 2
		case c == '$':
			digits := 0
			for i < len(s) && s[i] == '$' {
				digits++
				i++
			}
			num := Num{Digits: digits, Ascending: true, Base: 1}
			if i < len(s) && s[i] == '@' {
				j := i + 1
				if j < len(s) && s[j] == '-' {
					num.Ascending = false
					j++
				}
				k := j
				for k < len(s) && s[k] >= '0' && s[k] <= '9' {
					k++
				}
				if k > j {
					num.Base, _ = strconv.Atoi(s[j:k])
				}
				i = k
			}
			flush()
			out = append(out, num)
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()

	if out == nil {
		out = Parts{Lit("")}
	}
	return out
}

// Instantiate substitutes clone i of n into every directive, returning a
// fully literal Parts. A nil receiver stays nil.
func (p Parts) Instantiate(i, n int) Parts {
	if p == nil {
		return nil
	}
	changed := false
	for _, part := range p {
		if _, ok := part.(Num); ok {
			changed = true
			break
		}
	}
	if !changed {
		return p
	}
	return Parts{Lit(p.Resolve(i, n))}
}

// Resolve renders the parts for clone i of n.
func (p Parts) Resolve(i, n int) string {
	var b strings.Builder
	for _, part := range p {
		switch v := part.(type) {
		case Lit:
			b.WriteString(string(v))
		case Num:
			value := v.Base + i
			if !v.Ascending {
				value = n + v.Base - 1 - i
			}
			fmt.Fprintf(&b, "%0*d", v.Digits, value)
		}
	}
	return b.String()
}

// String renders the parts outside any multiplication: a single clone with
// index 0.
func (p Parts) String() string {
	return p.Resolve(0, 1)
}
