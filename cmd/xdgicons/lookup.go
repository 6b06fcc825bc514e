package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/codelif/xdgicons/v2"
)

func newLookupCmd(a *app) *cobra.Command {
	var (
		all     bool
		timings bool
	)

	cmd := &cobra.Command{
		Use:   "lookup NAME...",
		Short: "Print the file that best fits an icon name",
		Long: `Print the file that best fits the first icon name that can be found.
With several names, they are tried in order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			start := time.Now()
			icon, err := lookupFirst(a.lookup, args)
			if err != nil {
				return err
			}
			firstLookup := time.Since(start)

			file := icon.FileForSizeScaled(a.cfg.Size, a.cfg.Scale)

			if all {
				fmt.Fprintf(out, "%s %s\n", LabelStyle.Render("theme:"), icon.Theme())
				for _, f := range icon.Files() {
					marker := " "
					if f.Path == file.Path {
						marker = "*"
					}
					fmt.Fprintf(out, "%s %s %s\n", marker, PathStyle.Render(f.Path), MutedStyle.Render(describeDir(f.Dir)))
				}
			} else {
				fmt.Fprintln(out, file.Path)
			}

			if timings {
				start = time.Now()
				if _, err := lookupFirst(a.lookup, args); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "first lookup: %s, second lookup: %s\n", firstLookup, time.Since(start))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every file found for the icon, marking the selected one")
	cmd.Flags().BoolVar(&timings, "timings", false, "repeat the lookup and report how long both took")

	return cmd
}

func lookupFirst(il *xdgicons.IconLookup, names []string) (*xdgicons.Icon, error) {
	var err error
	for _, name := range names {
		var icon *xdgicons.Icon
		if icon, err = il.Lookup(name); err == nil {
			return icon, nil
		}
	}
	return nil, err
}

func describeDir(dir *xdgicons.DirInfo) string {
	desc := fmt.Sprintf("%s size=%d scale=%d type=%s", dir.Path, dir.Size, dir.Scale, dir.Type)
	switch dir.Type {
	case xdgicons.Scalable:
		desc += fmt.Sprintf(" min=%d max=%d", dir.MinSize, dir.MaxSize)
	case xdgicons.Threshold:
		desc += fmt.Sprintf(" threshold=%d", dir.Threshold)
	}
	if dir.Context != "" {
		desc += " context=" + dir.Context
	}
	return desc
}
