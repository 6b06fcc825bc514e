package renderer

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// renderSVG renders an SVG file to a size x size image
func renderSVG(svgPath string, size int) (image.Image, error) {
	svgFile, err := os.Open(svgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SVG file: %w", err)
	}
	defer svgFile.Close()

	return rasterizeSVG(svgFile, size)
}

// RenderSymbolicSVG renders a symbolic SVG with its default colours
// replaced by foregroundColor.
func RenderSymbolicSVG(svgPath string, size int, foregroundColor color.Color) (image.Image, error) {
	svgContent, err := os.ReadFile(svgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read SVG file: %w", err)
	}

	modifiedSVG := replaceSymbolicColors(string(svgContent), foregroundColor)
	return rasterizeSVG(strings.NewReader(modifiedSVG), size)
}

func rasterizeSVG(r io.Reader, size int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)

	icon.Draw(raster, 1.0)

	return img, nil
}

// colours used by symbolic icons for their foreground
var symbolicColors = []string{
	"#bebebe",
	"#2e3436",
	"#000000",
	"#ffffff",
	"currentColor",
}

// replaceSymbolicColors replaces symbolic icon colors with the desired foreground color
func replaceSymbolicColors(svgContent string, foregroundColor color.Color) string {
	r, g, b, _ := foregroundColor.RGBA()
	hexColor := fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))

	pairs := make([]string, 0, 2*len(symbolicColors))
	for _, c := range symbolicColors {
		pairs = append(pairs, c, hexColor)
	}
	return strings.NewReplacer(pairs...).Replace(svgContent)
}
