package renderer

import (
	"image"
	"image/color"
)

// Missing creates a size×size placeholder for an icon that could not be
// found: a faint border with an X across the middle.
func Missing(size int, foregroundColor color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fg, border := placeholderColors(foregroundColor, 0.6)

	strokeRect(img, img.Bounds(), max(1, size/32), 0, border)

	crossWidth := max(2, size/16)
	center := size / 2
	arm := size / 3
	for i := -arm; i <= arm; i++ {
		for j := -crossWidth / 2; j <= crossWidth/2; j++ {
			img.Set(center+i+j, center+i, fg)
			img.Set(center-i+j, center+i, fg)
		}
	}

	return img
}

// MissingBroken creates a placeholder for an icon that was found but
// could not be decoded: a dashed border around a cracked frame.
func MissingBroken(size int, foregroundColor color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fg, border := placeholderColors(foregroundColor, 0.5)

	strokeRect(img, img.Bounds(), max(1, size/32), max(3, size/16), border)

	inner := size / 3
	frame := image.Rect(0, 0, inner, inner).Add(image.Pt((size-inner)/2, (size-inner)/2))
	lineWidth := max(1, size/64)
	strokeRect(img, frame, lineWidth, 0, fg)

	for i := range inner {
		for j := range lineWidth {
			img.Set(frame.Min.X+i+j, frame.Min.Y+i, fg)
		}
	}

	return img
}

// placeholderColors returns the opaque foreground and a translucent
// border variant of c.
func placeholderColors(c color.Color, borderAlpha float64) (fg, border color.RGBA) {
	r, g, b, a := c.RGBA()
	fg = color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	border = fg
	border.A = uint8(float64(fg.A) * borderAlpha)
	return fg, border
}

// strokeRect draws the outline of rect, width pixels thick. A non-zero
// dash draws alternating dash-long segments.
func strokeRect(img *image.RGBA, rect image.Rectangle, width, dash int, c color.RGBA) {
	on := func(offset int) bool {
		return dash == 0 || (offset/dash)%2 == 0
	}

	for i := range width {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if on(x - rect.Min.X) {
				img.Set(x, rect.Min.Y+i, c)
				img.Set(x, rect.Max.Y-1-i, c)
			}
		}
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			if on(y - rect.Min.Y) {
				img.Set(rect.Min.X+i, y, c)
				img.Set(rect.Max.X-1-i, y, c)
			}
		}
	}
}
