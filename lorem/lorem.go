/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lorem generates filler paragraphs for lorem/ipsum placeholders.
// All randomness comes from the caller's generator, so a pinned seed gives
// reproducible output.
package lorem

import (
	"math/rand"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sentence length bounds, in words.
const (
	minSentence = 5
	maxSentence = 24
)

var titler = cases.Title(language.Und)

// vocabulary is the word pool. A few entries keep their clause commas; a
// comma is stripped when the word lands at the end of a sentence.
var vocabulary = []string{
	"lorem", "ipsum", "dolor", "sit", "amet,", "consectetur", "adipiscing",
	"elit", "ut", "aliquam,", "purus", "magna", "aliqua", "bibendum", "arcu",
	"vitae", "elementum", "curabitur", "nunc", "sed", "velit", "dignissim",
	"sodales", "quis", "commodo", "odio", "aenean", "pharetra", "massa",
	"ultricies", "mi", "quam", "lacinia", "at", "tellus", "integer",
	"feugiat", "scelerisque", "varius", "morbi", "enim", "nulla", "facilisi",
	"etiam", "tempor,", "orci", "eu", "lobortis", "ornare", "ante", "in",
	"nibh", "mauris", "cursus", "mattis", "molestie", "iaculis", "urna",
	"neque", "viverra", "justo", "nec", "ultrices", "dui", "sapien", "eget",
	"proin", "gravida", "rutrum", "tincidunt", "faucibus", "interdum",
	"posuere", "pellentesque", "habitant", "tristique", "senectus", "et",
	"netus", "malesuada", "fames", "ac", "turpis", "egestas", "pulvinar",
	"donec", "fringilla", "est", "ullamcorper", "eget", "nulla", "aliquet",
	"porttitor", "lacus,", "luctus", "accumsan", "tortor", "risus,", "augue",
	"suscipit", "vestibulum", "consequat", "hendrerit", "semper", "auctor",
	"montes,", "nascetur", "ridiculus", "mus", "euismod", "cras", "fermentum",
	"erat", "non", "diam", "phasellus", "vulputate", "sagittis", "vel",
	"venenatis", "condimentum", "convallis", "nisl", "nisi", "leo", "duis",
	"suspendisse", "potenti", "volutpat", "blandit", "libero", "congue",
	"tempus", "eros", "felis", "imperdiet", "maecenas", "dictum", "fusce",
	"placerat", "nullam", "sollicitudin", "ligula", "praesent", "mollis",
	"metus", "id", "lectus", "facilisis", "dapibus",
}

// Paragraph generates n words of filler text broken into sentences. The
// opening offset, sentence lengths, and terminal punctuation all draw from
// rng.
func Paragraph(rng *rand.Rand, n int) string {
	if n <= 0 {
		return ""
	}

	start := rng.Intn(len(vocabulary))
	words := make([]string, n)
	for i := range words {
		words[i] = vocabulary[(start+i)%len(vocabulary)]
	}

	var sentences []string
	for len(words) > 0 {
		length := len(words)
		if length > 2*minSentence {
			hi := maxSentence
			if rest := length - minSentence; rest < hi {
				hi = rest
			}
			length = minSentence + rng.Intn(hi-minSentence+1)
		}
		sentences = append(sentences, sentence(rng, words[:length]))
		words = words[length:]
	}

	return strings.Join(sentences, " ")
}

// sentence joins words, capitalising the first, stripping a trailing comma
// from the last, and ending with "." half the time and "?" or "!" a quarter
// each.
func sentence(rng *rand.Rand, words []string) string {
	out := make([]string, len(words))
	copy(out, words)
	out[0] = titler.String(out[0])
	out[len(out)-1] = strings.TrimSuffix(out[len(out)-1], ",")

	var stop string
	switch r := rng.Intn(4); {
	case r > 1:
		stop = "."
	case r > 0:
		stop = "?"
	default:
		stop = "!"
	}
	return strings.Join(out, " ") + stop
}
