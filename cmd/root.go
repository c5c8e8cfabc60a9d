/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for emmet.
package cmd

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/emmet/cmd/expand"
	"bennypowers.dev/emmet/cmd/snippets"
	"bennypowers.dev/emmet/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "emmet",
	Short: "Expand Emmet abbreviations to HTML and CSS",
	Long:  `emmet expands shorthand abbreviations like ul#nav>li.item*3 into full HTML or CSS fragments.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("mode", "m", "html", "Expansion dialect (html, css, sass)")

	rootCmd.AddCommand(expand.Cmd)
	rootCmd.AddCommand(snippets.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
