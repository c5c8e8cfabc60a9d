/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package expand provides the expand command for emmet.
package expand

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/emmet/config"
	"bennypowers.dev/emmet/emmet"
	"bennypowers.dev/emmet/markup"
)

// Cmd is the expand cobra command.
var Cmd = &cobra.Command{
	Use:   "expand [abbreviations...]",
	Short: "Expand abbreviations",
	Long: `Expand Emmet abbreviations to markup or stylesheet text.

Each argument expands independently. Pass - to read abbreviations from
stdin, one per line.

Examples:
  # Expand an HTML abbreviation
  emmet expand 'ul#nav>li.item*3'

  # Expand CSS shorthand
  emmet expand -m css 'm10-20+p5'

  # Expand Sass shorthand with vendor prefixes
  emmet expand -m sass -- '-bdrs5'

  # Use the HAML tag maker
  emmet expand --filter haml 'div#page>p.intro'

  # Read from stdin
  echo 'a[href=#]{click}' | emmet expand -`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Int("indent", 0, "Indent width in spaces")
	Cmd.Flags().String("self-closing", "", `Self-closing style (" />", "/>", ">")`)
	Cmd.Flags().Bool("jsx", false, "Emit JSX attribute names")
	Cmd.Flags().StringP("filter", "f", "", "Filter chain, e.g. haml or html|e")
	Cmd.Flags().StringP("extension", "x", "", "File extension for default filter lookup")
	Cmd.Flags().Uint64("seed", 0, "Seed for lorem generation")

	viper.SetEnvPrefix("EMMET")
	_ = viper.BindPFlag("indent", Cmd.Flags().Lookup("indent"))
	_ = viper.BindPFlag("jsx", Cmd.Flags().Lookup("jsx"))
	_ = viper.BindEnv("indent")
	_ = viper.BindEnv("jsx")
}

func run(cmd *cobra.Command, args []string) error {
	modeFlag, _ := cmd.Root().PersistentFlags().GetString("mode")
	mode, err := emmet.ParseMode(modeFlag)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg := config.LoadOrDefault(cwd)
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	// Flags win over config; viper carries EMMET_* env fallbacks.
	if indent := viper.GetInt("indent"); indent > 0 {
		opts.IndentWidth = indent
	}
	if viper.GetBool("jsx") {
		opts.JSX = true
	}
	if style, _ := cmd.Flags().GetString("self-closing"); style != "" {
		opts.SelfClosingStyle = style
	}
	if ext, _ := cmd.Flags().GetString("extension"); ext != "" {
		opts.Extension = ext
	}
	if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
		opts.LoremSeed = seed
	}

	if chain, _ := cmd.Flags().GetString("filter"); chain != "" {
		filters := strings.Split(chain, "|")
		for _, f := range filters {
			switch f {
			case markup.FilterHTML, markup.FilterComment, markup.FilterHAML,
				markup.FilterHiccup, markup.FilterEscape:
			default:
				return &emmet.Error{
					Kind:     emmet.KindUnknownFilter,
					Message:  f,
					Position: -1,
				}
			}
		}
		opts.FallbackFilter = filters
	}

	inputs, err := gatherInputs(args)
	if err != nil {
		return err
	}

	for _, input := range inputs {
		out, err := emmet.Expand(input, mode, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		fmt.Println(out)
	}
	return nil
}

// gatherInputs collects abbreviations from args, reading stdin lines for a
// bare -.
func gatherInputs(args []string) ([]string, error) {
	var inputs []string
	for _, a := range args {
		if a != "-" {
			inputs = append(inputs, a)
			continue
		}

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				inputs = append(inputs, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	}
	return inputs, nil
}
