package banner

import (
	"context"
	"image/color"

	imagepkg "github.com/youruser/wishbanner/internal/image"
)

// PhotoSource resolves the subject and presenter photos. Both loads run
// concurrently and never fail.
type PhotoSource interface {
	LoadPair(ctx context.Context, subject, presenter string) (imagepkg.Photo, imagepkg.Photo)
}

// Renderer draws one template. Render paints the background and decorations,
// waits for the photos, and then draws everything else without blocking.
// The request has already been validated.
type Renderer interface {
	Render(ctx context.Context, c *imagepkg.Canvas, req Request, photos PhotoSource)
}

// Palette shared by the templates.
var (
	saffron     = color.NRGBA{R: 0xE8, G: 0x77, B: 0x2E, A: 0xff}
	gold        = color.NRGBA{R: 0xF5, G: 0xA6, B: 0x23, A: 0xff}
	navy        = color.NRGBA{R: 0x1a, G: 0x27, B: 0x44, A: 0xff}
	white       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	burntOrange = color.NRGBA{R: 0xC5, G: 0x5A, B: 0x1B, A: 0xff}
	green       = color.NRGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xff}
	pink        = color.NRGBA{R: 0xE9, G: 0x1E, B: 0x63, A: 0xff}
)

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func gray(v uint8) color.NRGBA {
	return rgb(v, v, v)
}

func dims(c *imagepkg.Canvas) (w, h float64) {
	return float64(c.Width()), float64(c.Height())
}

// line strokes a straight rule.
func line(c *imagepkg.Canvas, col color.Color, width, x1, y1, x2, y2 float64) {
	c.SetColor(col)
	c.SetLineWidth(width)
	c.DrawLine(x1, y1, x2, y2)
	c.Stroke()
}

func fillRect(c *imagepkg.Canvas, col color.Color, x, y, w, h float64) {
	c.SetColor(col)
	c.DrawRectangle(x, y, w, h)
	c.Fill()
}
