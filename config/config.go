/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the emmet CLI.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/emmet/emmet"
)

// Config represents the emmet configuration file.
type Config struct {
	// IndentWidth is spaces per indent level.
	IndentWidth int `yaml:"indentWidth" json:"indentWidth"`

	// SelfClosingStyle closes self-closing tags: " />", "/>", or ">".
	SelfClosingStyle string `yaml:"selfClosingStyle" json:"selfClosingStyle"`

	// JSX emits className/htmlFor and accepts {expr} attribute values.
	JSX bool `yaml:"jsx" json:"jsx"`

	// JSXBracesForClass emits className={a.b.c}.
	JSXBracesForClass bool `yaml:"jsxBracesForClass" json:"jsxBracesForClass"`

	// ColorCase is "auto", "upper", or "lower".
	ColorCase string `yaml:"colorCase" json:"colorCase"`

	// ColorShorten collapses #aabbcc to #abc. Defaults to true.
	ColorShorten *bool `yaml:"colorShorten" json:"colorShorten"`

	// DefaultFilters maps a file extension to a filter chain.
	DefaultFilters map[string][]string `yaml:"defaultFilters" json:"defaultFilters"`

	// FallbackFilter is the chain used when nothing else applies.
	FallbackFilter []string `yaml:"fallbackFilter" json:"fallbackFilter"`

	// Snippets lists overlay documents merged over the embedded snippet
	// tables. Paths support doublestar globs.
	Snippets []OverlaySpec `yaml:"snippets" json:"snippets"`

	// Preferences is a preferences.json replacement document.
	Preferences string `yaml:"preferences" json:"preferences"`

	// root is the directory the config was loaded from; relative overlay
	// paths resolve against it.
	root string
}

// OverlaySpec is a snippet overlay entry. It can be specified as a simple
// string path or as an object.
type OverlaySpec struct {
	// Path is the overlay file path (supports globs).
	Path string `yaml:"path" json:"path"`

	// Optional marks overlays that may be absent without error.
	Optional bool `yaml:"optional" json:"optional"`
}

// UnmarshalYAML handles both string and object forms for OverlaySpec.
func (o *OverlaySpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		o.Path = node.Value
		return nil
	}

	type rawOverlaySpec OverlaySpec
	return node.Decode((*rawOverlaySpec)(o))
}

// UnmarshalJSON handles both string and object forms for OverlaySpec.
func (o *OverlaySpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		o.Path = s
		return nil
	}

	type rawOverlaySpec OverlaySpec
	return json.Unmarshal(data, (*rawOverlaySpec)(o))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// Options maps the file config onto engine options. Fields the file leaves
// at zero keep the engine defaults.
func (c *Config) Options() (*emmet.Options, error) {
	opts := emmet.DefaultOptions()

	if c.IndentWidth > 0 {
		opts.IndentWidth = c.IndentWidth
	}
	if c.SelfClosingStyle != "" {
		opts.SelfClosingStyle = c.SelfClosingStyle
	}
	opts.JSX = c.JSX
	opts.JSXBracesForClass = c.JSXBracesForClass

	switch c.ColorCase {
	case "upper":
		opts.ColorCase = emmet.ColorUpper
	case "lower":
		opts.ColorCase = emmet.ColorLower
	}
	if c.ColorShorten != nil {
		opts.ColorShorten = *c.ColorShorten
	}

	if c.DefaultFilters != nil {
		opts.DefaultFilters = c.DefaultFilters
	}
	if len(c.FallbackFilter) > 0 {
		opts.FallbackFilter = c.FallbackFilter
	}

	tables, err := c.Tables()
	if err != nil {
		return nil, err
	}
	opts.Tables = tables

	return opts, nil
}
