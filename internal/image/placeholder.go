package imagepkg

import (
	"bytes"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const (
	PlaceholderSize    = 100
	PlaceholderCaption = "No Photo"
)

var placeholderFill = color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}

// oksvg does not render <text>, so the caption is drawn separately.
const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100" viewBox="0 0 100 100">` +
	`<rect fill="#ddd" width="100" height="100"/>` +
	`</svg>`

// Placeholder returns the "No Photo" square used whenever a photo cannot be
// resolved. It is built from inline markup and never touches the network.
func Placeholder() image.Image {
	img, err := rasterizeSVG([]byte(placeholderSVG), PlaceholderSize, PlaceholderSize)
	if err != nil {
		return imaging.New(PlaceholderSize, PlaceholderSize, placeholderFill)
	}
	dc := gg.NewContextForRGBA(img)
	dc.SetFontFace(defaultFonts.Face(false, 14))
	dc.SetHexColor("#666666")
	// text-anchor middle, dy .3em
	dc.DrawStringAnchored(PlaceholderCaption, PlaceholderSize/2, PlaceholderSize/2+0.3*14, 0.5, 0)
	return img
}

func rasterizeSVG(data []byte, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}
