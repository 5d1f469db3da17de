package banner

import (
	"context"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/fogleman/gg"

	imagepkg "github.com/youruser/wishbanner/internal/image"
)

const confettiCount = 25

var confettiPalette = []color.Color{saffron, gold, navy, green, pink}

// festive: warm radial glow, confetti along the top and bottom edges, a
// ribbon holding the title, and both photos side by side.
type festive struct {
	newRand func() *rand.Rand
}

// timeSeeded is the production confetti source.
func timeSeeded() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func (f festive) Render(ctx context.Context, c *imagepkg.Canvas, req Request, photos PhotoSource) {
	w, h := dims(c)
	msgs := birthdayMessages[req.Language]

	grad := gg.NewRadialGradient(w/2, h/2, 0, w/2, h/2, w)
	grad.AddColorStop(0, rgb(0xFF, 0xF8, 0xE1))
	grad.AddColorStop(0.5, rgb(0xFF, 0xE0, 0xB2))
	grad.AddColorStop(1, rgb(0xFF, 0xCC, 0x80))
	c.SetFillStyle(grad)
	c.DrawRectangle(0, 0, w, h)
	c.Fill()

	f.confetti(c, w, h)

	subject, presenter := photos.LoadPair(ctx, req.SubjectPhoto, req.PresenterPhoto)

	cx := w / 2
	c.SetColor(saffron)
	polygon(c, cx-160, 50, cx+160, 50, cx+140, 90, cx-140, 90)
	c.SetColor(burntOrange)
	polygon(c, cx-160, 50, cx-180, 70, cx-160, 90)
	polygon(c, cx+160, 50, cx+180, 70, cx+160, 90)

	c.SetColor(white)
	c.SetFont(true, 26)
	c.SetTextAlign(imagepkg.AlignCenter)
	c.FillText(msgs.Title, cx, 78)

	const (
		photoY          = 130.0
		subjectRadius   = 60.0
		presenterRadius = 40.0
	)
	imagepkg.DrawCircularImage(c, subject, cx-90, photoY+subjectRadius, subjectRadius, 4, gold)
	imagepkg.DrawCircularImage(c, presenter, cx+90, photoY+subjectRadius+20, presenterRadius, 3, saffron)

	const textY = 280.0
	c.SetColor(navy)
	c.SetFont(true, 28)
	c.FillText(req.SubjectDisplayName(), cx, textY)

	c.SetFont(false, 14)
	c.SetColor(gray(0x55))
	imagepkg.WrapText(c, msgs.Message, cx, textY+30, w-60, 18)

	c.SetColor(gray(0x77))
	c.SetFont(false, 11)
	c.FillText(msgs.From+" "+req.PresenterDisplayName(), cx, h-25)
	c.SetFont(false, 10)
	c.FillText(req.PresenterTitle, cx, h-10)
}

// confetti scatters small rotated strips in the top and bottom 60px bands,
// away from the text.
func (f festive) confetti(c *imagepkg.Canvas, w, h float64) {
	rnd := f.newRand
	if rnd == nil {
		rnd = timeSeeded
	}
	r := rnd()
	for i := 0; i < confettiCount; i++ {
		c.SetColor(confettiPalette[r.Intn(len(confettiPalette))])
		x := r.Float64() * w
		y := r.Float64() * 60
		if r.Float64() <= 0.5 {
			y += h - 60
		}
		c.Push()
		c.Translate(x, y)
		c.Rotate(r.Float64() * math.Pi)
		c.DrawRectangle(-6, -2, 12, 4)
		c.Fill()
		c.Pop()
	}
}

func polygon(c *imagepkg.Canvas, pts ...float64) {
	c.MoveTo(pts[0], pts[1])
	for i := 2; i+1 < len(pts); i += 2 {
		c.LineTo(pts[i], pts[i+1])
	}
	c.ClosePath()
	c.Fill()
}
