package banner

import (
	"context"

	"github.com/fogleman/gg"

	imagepkg "github.com/youruser/wishbanner/internal/image"
)

// modernGradient: saffron-gold diagonal gradient, subject photo on the left,
// text to its right, presenter tucked into the bottom-right corner.
type modernGradient struct{}

func (modernGradient) Render(ctx context.Context, c *imagepkg.Canvas, req Request, photos PhotoSource) {
	w, h := dims(c)
	msgs := birthdayMessages[req.Language]

	grad := gg.NewLinearGradient(0, 0, w, h)
	grad.AddColorStop(0, saffron)
	grad.AddColorStop(0.5, gold)
	grad.AddColorStop(1, saffron)
	c.SetFillStyle(grad)
	c.DrawRectangle(0, 0, w, h)
	c.Fill()

	c.SetRGBA(1, 1, 1, 0.1)
	c.DrawCircle(-30, -30, 120)
	c.Fill()
	c.DrawCircle(w+30, h+30, 100)
	c.Fill()

	subject, presenter := photos.LoadPair(ctx, req.SubjectPhoto, req.PresenterPhoto)

	imagepkg.DrawCircularImage(c, subject, 110, h/2, 80, 4, white)

	const textX = 220.0
	textWidth := w - textX - 20

	c.SetColor(white)
	c.SetFont(true, 42)
	c.SetTextAlign(imagepkg.AlignLeft)
	c.FillText(msgs.Title, textX, 70)

	c.SetFont(true, 32)
	c.SetColor(navy)
	c.FillText(req.SubjectDisplayName(), textX, 115)

	line(c, white, 2, textX, 130, textX+150, 130)

	c.SetColor(white)
	c.SetFont(false, 18)
	imagepkg.WrapText(c, msgs.Message, textX, 165, textWidth, 24)

	px, py := w-60, h-55
	imagepkg.DrawCircularImage(c, presenter, px, py, 35, 2, white)

	c.SetColor(white)
	c.SetTextAlign(imagepkg.AlignRight)
	c.SetFont(false, 12)
	c.FillText(msgs.From, px-50, h-75)
	c.SetFont(true, 14)
	c.FillText(req.PresenterDisplayName(), px-50, h-55)
	c.SetFont(false, 11)
	c.SetRGBA(1, 1, 1, 0.9)
	c.FillText(req.PresenterTitle, px-50, h-38)
}
