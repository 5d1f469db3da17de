package imagepkg

import (
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"
)

// DrawCircularImage draws p clipped to a disk of radius r at (cx, cy). When
// ring > 0 a disk of radius r+ring is filled first so the photo sits on a
// solid halo. The photo is stretched to the disk's bounding square.
func DrawCircularImage(c *Canvas, p Photo, cx, cy, r, ring float64, ringColor color.Color) {
	if ring > 0 {
		c.SetColor(ringColor)
		c.DrawCircle(cx, cy, r+ring)
		c.Fill()
	}
	size := int(math.Round(2 * r))
	scaled := imaging.Resize(p.Image, size, size, imaging.Lanczos)

	c.Push()
	c.DrawCircle(cx, cy, r)
	c.Clip()
	c.DrawImage(scaled, int(math.Round(cx-r)), int(math.Round(cy-r)))
	// gg's Pop keeps the current mask
	c.ResetClip()
	c.Pop()

	c.drawn = append(c.drawn, Drawn{Kind: DrawnPhoto, X: cx, Y: cy, Placeholder: p.Placeholder})
}

// DrawRectImage draws p stretched to w x h at (x, y), over a border-sized
// backing rectangle when border > 0.
func DrawRectImage(c *Canvas, p Photo, x, y, w, h, border float64, borderColor color.Color) {
	if border > 0 {
		c.SetColor(borderColor)
		c.DrawRectangle(x-border, y-border, w+border*2, h+border*2)
		c.Fill()
	}
	scaled := imaging.Resize(p.Image, int(math.Round(w)), int(math.Round(h)), imaging.Lanczos)
	c.DrawImage(scaled, int(math.Round(x)), int(math.Round(y)))

	c.drawn = append(c.drawn, Drawn{Kind: DrawnPhoto, X: x + w/2, Y: y + h/2, Placeholder: p.Placeholder})
}

// WrapText lays text out greedily: words are appended to the current line
// while the line (with its trailing space) measures at most maxWidth, and on
// overflow the line is drawn at the current baseline and the baseline moves
// down by lineHeight. The first word never triggers a break, so a word wider
// than maxWidth ends up alone on its line. Alignment is whatever the canvas
// currently has. It returns the lines drawn.
func WrapText(c *Canvas, text string, x, y, maxWidth, lineHeight float64) []string {
	words := strings.Split(text, " ")
	var lines []string
	line := ""
	baseline := y
	for i, word := range words {
		candidate := line + word + " "
		if c.MeasureText(candidate) > maxWidth && i > 0 {
			out := strings.TrimSpace(line)
			c.FillText(out, x, baseline)
			lines = append(lines, out)
			line = word + " "
			baseline += lineHeight
		} else {
			line = candidate
		}
	}
	out := strings.TrimSpace(line)
	c.FillText(out, x, baseline)
	return append(lines, out)
}
