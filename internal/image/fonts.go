package imagepkg

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the parsed regular and bold typefaces. A parsed truetype.Font
// is read-only and may be shared; faces built from it may not.
type Fonts struct {
	Regular *truetype.Font
	Bold    *truetype.Font
}

var defaultFonts *Fonts

func init() {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Errorf("parse regular font: %w", err))
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		panic(fmt.Errorf("parse bold font: %w", err))
	}
	defaultFonts = &Fonts{Regular: regular, Bold: bold}
}

// DefaultFonts returns the embedded Go fonts.
func DefaultFonts() *Fonts {
	return defaultFonts
}

// LoadFonts parses TTF files from disk. An empty path keeps the embedded
// default for that weight.
func LoadFonts(regularPath, boldPath string) (*Fonts, error) {
	out := &Fonts{Regular: defaultFonts.Regular, Bold: defaultFonts.Bold}
	if regularPath != "" {
		f, err := parseFontFile(regularPath)
		if err != nil {
			return nil, err
		}
		out.Regular = f
	}
	if boldPath != "" {
		f, err := parseFontFile(boldPath)
		if err != nil {
			return nil, err
		}
		out.Bold = f
	}
	return out, nil
}

func parseFontFile(path string) (*truetype.Font, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	f, err := truetype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return f, nil
}

// Face builds a new face at size points (72 DPI, so points equal pixels).
func (f *Fonts) Face(bold bool, size float64) font.Face {
	tt := f.Regular
	if bold {
		tt = f.Bold
	}
	return truetype.NewFace(tt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
}
