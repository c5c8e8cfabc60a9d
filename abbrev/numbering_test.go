/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package abbrev

import "testing"

func TestSplitNumbering(t *testing.T) {
	tests := []struct {
		name  string
		input string
		parts Parts
	}{
		{
			name:  "no directives",
			input: "item",
			parts: Parts{Lit("item")},
		},
		{
			name:  "single dollar",
			input: "item$",
			parts: Parts{Lit("item"), Num{Digits: 1, Ascending: true, Base: 1}},
		},
		{
			name:  "padded run",
			input: "a$$$b",
			parts: Parts{Lit("a"), Num{Digits: 3, Ascending: true, Base: 1}, Lit("b")},
		},
		{
			name:  "descending",
			input: "a$@-",
			parts: Parts{Lit("a"), Num{Digits: 1, Ascending: false, Base: 1}},
		},
		{
			name:  "base",
			input: "a$@5",
			parts: Parts{Lit("a"), Num{Digits: 1, Ascending: true, Base: 5}},
		},
		{
			name:  "descending with base",
			input: "a$@-5",
			parts: Parts{Lit("a"), Num{Digits: 1, Ascending: false, Base: 5}},
		},
		{
			name:  "escaped dollar",
			input: `a\$b`,
			parts: Parts{Lit("a$b")},
		},
		{
			name:  "two directives",
			input: "$-$$",
			parts: Parts{
				Num{Digits: 1, Ascending: true, Base: 1},
				Lit("-"),
				Num{Digits: 2, Ascending: true, Base: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitNumbering(tt.input)
			if len(got) != len(tt.parts) {
				t.Fatalf("SplitNumbering(%q) = %#v, want %#v", tt.input, got, tt.parts)
			}
			for i := range got {
				if got[i] != tt.parts[i] {
					t.Errorf("part %d = %#v, want %#v", i, got[i], tt.parts[i])
				}
			}
		})
	}
}

func TestPartsResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		i, n     int
		expected string
	}{
		{name: "ascending from one", input: "a$", i: 0, n: 3, expected: "a1"},
		{name: "ascending third clone", input: "a$", i: 2, n: 3, expected: "a3"},
		{name: "zero padded", input: "a$$$", i: 0, n: 3, expected: "a001"},
		{name: "descending first clone", input: "a$@-", i: 0, n: 3, expected: "a3"},
		{name: "descending last clone", input: "a$@-", i: 2, n: 3, expected: "a1"},
		{name: "base shifts start", input: "a$@10", i: 1, n: 3, expected: "a11"},
		{name: "descending with base", input: "a$@-4", i: 0, n: 3, expected: "a6"},
		{name: "outside multiplication", input: "a$", i: 0, n: 1, expected: "a1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitNumbering(tt.input).Resolve(tt.i, tt.n); got != tt.expected {
				t.Errorf("Resolve(%d, %d) = %q, want %q", tt.i, tt.n, got, tt.expected)
			}
		})
	}
}

func TestInstantiateDistinctClones(t *testing.T) {
	parts := SplitNumbering("x$")
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		s := parts.Instantiate(i, 5).String()
		if seen[s] {
			t.Errorf("clone %d repeated value %q", i, s)
		}
		seen[s] = true
	}
}
