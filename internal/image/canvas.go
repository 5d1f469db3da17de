package imagepkg

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type DrawnKind int

const (
	DrawnText DrawnKind = iota
	DrawnPhoto
)

// Drawn records one text run or photo placed on a Canvas.
type Drawn struct {
	Kind        DrawnKind
	Text        string
	X, Y        float64
	Placeholder bool
}

type faceKey struct {
	bold bool
	size float64
}

// Canvas is a gg drawing context with the bits of state banner layout
// relies on: a current text alignment, font selection by weight and size,
// and a log of what was drawn.
type Canvas struct {
	*gg.Context
	fonts *Fonts
	faces map[faceKey]font.Face
	align Align
	drawn []Drawn
}

func NewCanvas(width, height int, fonts *Fonts) *Canvas {
	if fonts == nil {
		fonts = defaultFonts
	}
	return &Canvas{
		Context: gg.NewContext(width, height),
		fonts:   fonts,
		faces:   map[faceKey]font.Face{},
	}
}

func (c *Canvas) SetTextAlign(a Align) { c.align = a }

func (c *Canvas) TextAlign() Align { return c.align }

// SetFont selects the face used by FillText and MeasureText.
func (c *Canvas) SetFont(bold bool, size float64) {
	k := faceKey{bold: bold, size: size}
	face, ok := c.faces[k]
	if !ok {
		face = c.fonts.Face(bold, size)
		c.faces[k] = face
	}
	c.SetFontFace(face)
}

// MeasureText returns the advance width of s in the current face.
func (c *Canvas) MeasureText(s string) float64 {
	w, _ := c.MeasureString(s)
	return w
}

// FillText draws s with its baseline at y, anchored at x according to the
// current alignment.
func (c *Canvas) FillText(s string, x, y float64) {
	var ax float64
	switch c.align {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1
	}
	c.DrawStringAnchored(s, x, y, ax, 0)
	c.drawn = append(c.drawn, Drawn{Kind: DrawnText, Text: s, X: x, Y: y})
}

// Drawn returns everything drawn through FillText and the photo helpers,
// in order.
func (c *Canvas) Drawn() []Drawn {
	out := make([]Drawn, len(c.drawn))
	copy(out, c.drawn)
	return out
}

// RGBA returns the backing raster.
func (c *Canvas) RGBA() *image.RGBA {
	return c.Image().(*image.RGBA)
}
