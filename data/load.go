/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package data

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tidwall/jsonc"
)

//go:embed snippets.json
var snippetsJSON []byte

//go:embed preferences.json
var preferencesJSON []byte

// snippetsDoc mirrors the snippets.json document shape.
type snippetsDoc struct {
	HTML struct {
		Snippets map[string]string `json:"snippets"`
		Aliases  map[string]string `json:"aliases"`
	} `json:"html"`
	CSS struct {
		Snippets map[string]string `json:"snippets"`
	} `json:"css"`
	Sass struct {
		Snippets map[string]string `json:"snippets"`
	} `json:"sass"`
}

// preferencesDoc mirrors the preferences.json document shape.
type preferencesDoc struct {
	HTML struct {
		Tags map[string]TagSettings `json:"tags"`
	} `json:"html"`
	CSS CSSPreferences `json:"css"`
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the tables built from the embedded documents. The result
// is shared; callers must not mutate it.
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := Load(snippetsJSON, preferencesJSON)
		if err != nil {
			panic(fmt.Sprintf("data: embedded tables: %v", err))
		}
		defaultTables = t
	})
	return defaultTables
}

// Load builds Tables from snippets and preferences documents. Both are run
// through jsonc first so comments and trailing commas are tolerated.
func Load(snippets, preferences []byte) (*Tables, error) {
	var sd snippetsDoc
	if err := json.Unmarshal(jsonc.ToJSON(snippets), &sd); err != nil {
		return nil, fmt.Errorf("parse snippets: %w", err)
	}

	var pd preferencesDoc
	if err := json.Unmarshal(jsonc.ToJSON(preferences), &pd); err != nil {
		return nil, fmt.Errorf("parse preferences: %w", err)
	}

	t := &Tables{
		HTMLSnippets: sd.HTML.Snippets,
		HTMLAliases:  sd.HTML.Aliases,
		Tags:         pd.HTML.Tags,
		CSSSnippets:  sd.CSS.Snippets,
		SassSnippets: sd.Sass.Snippets,
		CSS:          pd.CSS,
	}
	if t.HTMLSnippets == nil {
		t.HTMLSnippets = map[string]string{}
	}
	if t.HTMLAliases == nil {
		t.HTMLAliases = map[string]string{}
	}
	if t.Tags == nil {
		t.Tags = map[string]TagSettings{}
	}
	if t.CSSSnippets == nil {
		t.CSSSnippets = map[string]string{}
	}
	if t.SassSnippets == nil {
		t.SassSnippets = map[string]string{}
	}
	return t, nil
}

// LoadPreferences parses a preferences document alone, returning tables
// carrying only the tag settings and CSS preferences.
func LoadPreferences(preferences []byte) (*Tables, error) {
	var pd preferencesDoc
	if err := json.Unmarshal(jsonc.ToJSON(preferences), &pd); err != nil {
		return nil, fmt.Errorf("parse preferences: %w", err)
	}
	t := &Tables{Tags: pd.HTML.Tags, CSS: pd.CSS}
	if t.Tags == nil {
		t.Tags = map[string]TagSettings{}
	}
	return t, nil
}

// Clone returns a copy of t suitable for overlaying: the snippet, alias, and
// tag maps are fresh, so MergeSnippets on the copy leaves t untouched. The
// CSS preferences' maps and slices and each tag's DefaultAttr list are
// shared with t.
func (t *Tables) Clone() *Tables {
	out := &Tables{
		HTMLSnippets: cloneMap(t.HTMLSnippets),
		HTMLAliases:  cloneMap(t.HTMLAliases),
		Tags:         make(map[string]TagSettings, len(t.Tags)),
		CSSSnippets:  cloneMap(t.CSSSnippets),
		SassSnippets: cloneMap(t.SassSnippets),
		CSS:          t.CSS,
	}
	for k, v := range t.Tags {
		out.Tags[k] = v
	}
	return out
}

// MergeSnippets overlays a snippets document onto t. Later documents win
// key-by-key; sections absent from the overlay are left alone.
func (t *Tables) MergeSnippets(doc []byte) error {
	var sd snippetsDoc
	if err := json.Unmarshal(jsonc.ToJSON(doc), &sd); err != nil {
		return fmt.Errorf("parse snippet overlay: %w", err)
	}
	mergeMap(t.HTMLSnippets, sd.HTML.Snippets)
	mergeMap(t.HTMLAliases, sd.HTML.Aliases)
	mergeMap(t.CSSSnippets, sd.CSS.Snippets)
	mergeMap(t.SassSnippets, sd.Sass.Snippets)
	return nil
}

func cloneMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func mergeMap(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
