/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package snippets provides the snippets command for emmet.
package snippets

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/emmet/config"
	"bennypowers.dev/emmet/data"
)

// Cmd is the snippets cobra command. It lists the snippet and alias keys
// the current tables know, including any configured overlays.
var Cmd = &cobra.Command{
	Use:   "snippets [prefix]",
	Short: "List known snippets and aliases",
	Long: `List snippet and alias keys for a dialect, with their expansions.

An optional prefix argument narrows the listing.

Examples:
  # All HTML aliases and snippets
  emmet snippets

  # CSS snippets starting with bd
  emmet snippets -m css bd`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

func run(cmd *cobra.Command, args []string) error {
	mode, _ := cmd.Root().PersistentFlags().GetString("mode")
	format, _ := cmd.Flags().GetString("format")

	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	tables, err := config.LoadOrDefault(cwd).Tables()
	if err != nil {
		return err
	}

	entries := collect(tables, mode, prefix)
	if format == "json" {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s\t%s\n", k, entries[k])
	}
	return nil
}

// collect merges the dialect's snippet and alias tables, filtered by prefix.
func collect(tables *data.Tables, mode, prefix string) map[string]string {
	entries := map[string]string{}
	add := func(m map[string]string) {
		for k, v := range m {
			if strings.HasPrefix(k, prefix) {
				entries[k] = v
			}
		}
	}

	switch mode {
	case "css":
		add(tables.CSSSnippets)
	case "sass":
		add(tables.CSSSnippets)
		add(tables.SassSnippets)
	default:
		add(tables.HTMLSnippets)
		add(tables.HTMLAliases)
	}
	return entries
}
