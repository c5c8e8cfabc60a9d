/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package data holds the static tables that drive expansion: HTML snippets
// and aliases, per-tag settings, CSS/Sass snippets, and the CSS value
// preferences. The embedded snippets.json and preferences.json documents are
// the source of truth; user overlays are merged on top at load time.
package data

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Attr is a single default attribute for a tag.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered attribute list. JSON objects lose key order under
// map decoding, and default-attribute order is significant (img emits src
// before alt), so Attrs decodes through the token stream.
type Attrs []Attr

// UnmarshalJSON decodes a JSON object into an ordered attribute list.
func (a *Attrs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("defaultAttr must be an object")
	}

	out := Attrs{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("defaultAttr key must be a string")
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("defaultAttr %q: %w", key, err)
		}
		out = append(out, Attr{Key: key, Value: value})
	}

	*a = out
	return nil
}

// Get returns the value for key and whether it is present.
func (a Attrs) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// TagSettings describes how a tag renders. The zero value is the default
// for tags absent from the table: inline, not self-closing, no default
// attributes.
type TagSettings struct {
	Block       bool  `json:"block"`
	SelfClosing bool  `json:"selfClosing"`
	DefaultAttr Attrs `json:"defaultAttr"`
}

// ColorPreferences controls hex color rendering.
type ColorPreferences struct {
	// Case is "auto" (keep as typed), "upper", or "lower".
	Case string `json:"case"`

	// ShortenIfPossible collapses #aabbcc to #abc when pairs match.
	ShortenIfPossible bool `json:"shortenIfPossible"`
}

// CSSPreferences holds the css section of preferences.json.
type CSSPreferences struct {
	Color ColorPreferences `json:"color"`

	// FloatUnit is the default unit for numbers containing a dot.
	FloatUnit string `json:"floatUnit"`

	// IntUnit is the default unit for whole numbers.
	IntUnit string `json:"intUnit"`

	// KeywordAliases maps shorthand letters to CSS keywords (s -> solid).
	KeywordAliases map[string]string `json:"keywordAliases"`

	// Keywords are full keywords resolvable by unique prefix.
	Keywords []string `json:"keywords"`

	// UnitAliases maps single-character unit shorthands (- -> px, e -> em).
	UnitAliases map[string]string `json:"unitAliases"`

	// UnitlessProperties lists properties whose numbers carry no unit.
	UnitlessProperties []string `json:"unitlessProperties"`

	// VendorPrefixesProperties maps a property to its prefix list; a
	// property absent from the map defaults to all four prefixes.
	VendorPrefixesProperties map[string][]string `json:"vendorPrefixesProperties"`
}

// Tables is the full set of expansion tables. A Tables value is read-only
// after Load; snippet compilation caches live with the consuming packages,
// not here.
type Tables struct {
	HTMLSnippets map[string]string
	HTMLAliases  map[string]string
	Tags         map[string]TagSettings
	CSSSnippets  map[string]string
	SassSnippets map[string]string
	CSS          CSSPreferences
}

// Settings returns the tag settings for name, or the zero settings when the
// tag is not in the table.
func (t *Tables) Settings(name string) TagSettings {
	return t.Tags[name]
}

// Unitless reports whether property takes dimensionless numbers.
func (t *Tables) Unitless(property string) bool {
	for _, p := range t.CSS.UnitlessProperties {
		if p == property {
			return true
		}
	}
	return false
}

// Prefixes returns the vendor prefix list for property. Properties absent
// from the table get all four prefixes.
func (t *Tables) Prefixes(property string) []string {
	if p, ok := t.CSS.VendorPrefixesProperties[property]; ok {
		return p
	}
	return []string{"webkit", "moz", "ms", "o"}
}
