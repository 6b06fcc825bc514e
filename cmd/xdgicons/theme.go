package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codelif/xdgicons/v2"
)

// errThemeMissing is returned by exists so the process exits non-zero.
var errThemeMissing = errors.New("theme not found")

func newExistsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exists THEME",
		Short: "Report whether a theme is installed under the search paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.lookup.ThemeExists(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ErrorStyle.Render("missing:"), args[0])
				return fmt.Errorf("%w: %s", errThemeMissing, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", LabelStyle.Render("found:"), args[0])
			return nil
		},
	}
}

func newChainCmd(a *app) *cobra.Command {
	var dirs bool

	cmd := &cobra.Command{
		Use:   "chain [THEME]",
		Short: "Show the index files and inheritance tree of a theme",
		Long: `Show every index file found for a theme, in search path order, and the
themes it inherits from. Defaults to the configured theme.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := a.lookup.Theme()
			if len(args) == 1 {
				theme = args[0]
			}

			chain, err := a.lookup.Chain(theme)
			if err != nil {
				return err
			}

			printChain(cmd.OutOrStdout(), chain, dirs, 0, map[string]bool{})
			return nil
		},
	}

	cmd.Flags().BoolVar(&dirs, "dirs", false, "list the icon directories of each index")

	return cmd
}

func printChain(w io.Writer, chain *xdgicons.ThemeChain, dirs bool, depth int, seen map[string]bool) {
	indent := strings.Repeat("  ", depth)
	if seen[chain.Name()] {
		fmt.Fprintf(w, "%s%s %s\n", indent, TitleStyle.Render(chain.Name()), MutedStyle.Render("(already shown)"))
		return
	}
	seen[chain.Name()] = true

	if chain.Empty() {
		fmt.Fprintf(w, "%s%s %s\n", indent, TitleStyle.Render(chain.Name()), ErrorStyle.Render("(not installed)"))
		return
	}

	fmt.Fprintf(w, "%s%s\n", indent, TitleStyle.Render(chain.Name()))
	for _, index := range chain.Indexes() {
		fmt.Fprintf(w, "%s  %s %s\n", indent, LabelStyle.Render("index:"), PathStyle.Render(index.ContentDir))
		if dirs {
			for _, dir := range index.Dirs {
				fmt.Fprintf(w, "%s    %s\n", indent, MutedStyle.Render(describeDir(dir)))
			}
		}
	}

	for _, parent := range chain.Parents() {
		printChain(w, parent, dirs, depth+1, seen)
	}
}

func newWarmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "warm [THEME...]",
		Short: "Load themes and everything they inherit into the cache",
		Long: `Load the given themes, or the configured theme and fallback theme, and
every theme they inherit from. Reports how many chains were loaded.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			themes := args
			if len(themes) == 0 {
				themes = []string{a.lookup.Theme(), a.lookup.FallbackTheme()}
			}

			if err := a.lookup.Warm(cmd.Context(), themes...); err != nil {
				return err
			}

			for _, theme := range themes {
				state := LabelStyle.Render("loaded:")
				if !a.lookup.ThemeExists(theme) {
					state = ErrorStyle.Render("missing:")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", state, theme)
			}
			return nil
		},
	}
}
