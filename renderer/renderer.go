// Package renderer rasterises icons found by xdgicons.
package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/codelif/xdgicons/v2"
	"golang.org/x/image/draw"
)

// IconRenderer handles rendering icons to images
type IconRenderer struct {
	iconLookup *xdgicons.IconLookup
}

// NewIconRenderer creates a new icon renderer
func NewIconRenderer(iconLookup *xdgicons.IconLookup) *IconRenderer {
	return &IconRenderer{
		iconLookup: iconLookup,
	}
}

// Render finds iconName and renders the file that best fits size and
// scale. The image is size*scale pixels square.
func (ir *IconRenderer) Render(iconName string, size, scale uint16) (image.Image, xdgicons.IconFile, error) {
	file, err := ir.iconLookup.FindIcon(iconName, size, scale)
	if err != nil {
		return nil, xdgicons.IconFile{}, fmt.Errorf("icon not found: %w", err)
	}

	img, err := RenderFile(file, pixels(size, scale))
	return img, file, err
}

// RenderWithFallback renders an icon, recolouring -symbolic SVGs when
// symbolicColor is set. If the icon cannot be found or decoded, a
// missing-icon placeholder is returned together with the error.
func (ir *IconRenderer) RenderWithFallback(iconName string, size, scale uint16, symbolicColor color.Color) (image.Image, xdgicons.IconFile, error) {
	px := pixels(size, scale)
	placeholderColor := symbolicColor
	if placeholderColor == nil {
		placeholderColor = color.Gray{Y: 0x80}
	}

	file, err := ir.iconLookup.FindIcon(iconName, size, scale)
	if err != nil {
		return Missing(px, placeholderColor), xdgicons.IconFile{}, fmt.Errorf("icon not found: %w", err)
	}

	var img image.Image
	if symbolicColor != nil && strings.HasSuffix(iconName, "-symbolic") && file.Type == xdgicons.SVG {
		img, err = RenderSymbolicSVG(file.Path, px, symbolicColor)
	} else {
		img, err = RenderFile(file, px)
	}
	if err != nil {
		return MissingBroken(px, placeholderColor), file, err
	}

	return img, file, nil
}

// ErrUnsupportedFormat is returned for files that cannot be decoded.
var ErrUnsupportedFormat = errors.New("unsupported icon format")

// RenderFile renders an icon file at size x size pixels.
func RenderFile(file xdgicons.IconFile, size int) (image.Image, error) {
	switch file.Type {
	case xdgicons.SVG:
		return renderSVG(file.Path, size)
	case xdgicons.PNG:
		return loadAndResizePNG(file.Path, size)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, file.Type)
}

// loadAndResizePNG loads a PNG file and resizes it when needed
func loadAndResizePNG(pngPath string, targetSize int) (image.Image, error) {
	file, err := os.Open(pngPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PNG file: %w", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode PNG: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == targetSize && bounds.Dy() == targetSize {
		return img, nil
	}

	return resizeImage(img, targetSize), nil
}

func resizeImage(src image.Image, targetSize int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func pixels(size, scale uint16) int {
	if scale == 0 {
		scale = 1
	}
	return int(size) * int(scale)
}
