/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scan provides anchored-regex matching primitives for the
// abbreviation parsers. Every parse step either matches at the head of the
// remaining input or fails; the remainder after the final capture is
// returned for the next step.
package scan

import (
	"fmt"
	"regexp"
	"strings"
)

// Anchored compiles pattern anchored to the start of input. Call it once at
// package init; parsers rely on the anchor for cursor semantics.
func Anchored(pattern string) *regexp.Regexp {
	if !strings.HasPrefix(pattern, `\A`) {
		pattern = `\A` + pattern
	}
	return regexp.MustCompile(pattern)
}

// Match applies an anchored regexp to input. On success it returns the
// submatches (index 0 is the whole match) and the remaining input after the
// match. On failure it returns an error naming what was expected.
func Match(re *regexp.Regexp, input, expected string) ([]string, string, error) {
	loc := re.FindStringSubmatchIndex(input)
	if loc == nil || loc[0] != 0 {
		return nil, input, fmt.Errorf("expected %s", expected)
	}
	m := make([]string, 0, re.NumSubexp()+1)
	for i := 0; i <= re.NumSubexp(); i++ {
		if loc[2*i] < 0 {
			m = append(m, "")
			continue
		}
		m = append(m, input[loc[2*i]:loc[2*i+1]])
	}
	return m, input[loc[1]:], nil
}

// Or tries each parser in turn on the same input, returning the first
// success. The error of the final alternative propagates.
func Or[T any](input string, parsers ...func(string) (T, string, error)) (T, string, error) {
	var zero T
	var err error
	for _, p := range parsers {
		var v T
		var rest string
		v, rest, err = p(input)
		if err == nil {
			return v, rest, nil
		}
	}
	return zero, input, err
}
