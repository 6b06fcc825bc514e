package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codelif/xdgicons/v2/renderer"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		output   string
		colorHex string
	)

	cmd := &cobra.Command{
		Use:   "render NAME",
		Short: "Render an icon to a PNG file",
		Long: `Render an icon at the configured size and scale and save it as PNG.
Icons that cannot be found or decoded are written as a placeholder and the
command fails. Symbolic icons are recoloured with --color.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var symbolic color.Color
			if colorHex != "" {
				c, err := parseHexColor(colorHex)
				if err != nil {
					return err
				}
				symbolic = c
			}

			if output == "" {
				output = args[0] + ".png"
			}

			ir := renderer.NewIconRenderer(a.lookup)
			img, file, renderErr := ir.RenderWithFallback(args[0], a.cfg.Size, a.cfg.Scale, symbolic)
			if err := renderer.SavePNG(img, output); err != nil {
				return err
			}
			if renderErr != nil {
				a.logger.Warn("wrote placeholder", "icon", args[0], "output", output)
				return renderErr
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", PathStyle.Render(file.Path), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default NAME.png)")
	cmd.Flags().StringVar(&colorHex, "color", "", "foreground colour for symbolic icons, as #rrggbb")

	return cmd
}

func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
