package banner

import (
	"context"

	imagepkg "github.com/youruser/wishbanner/internal/image"
)

// minimalPremium: white card with a navy and gold double border, everything
// centred, presenter signature along the bottom.
type minimalPremium struct{}

func (minimalPremium) Render(ctx context.Context, c *imagepkg.Canvas, req Request, photos PhotoSource) {
	w, h := dims(c)
	msgs := birthdayMessages[req.Language]

	fillRect(c, white, 0, 0, w, h)

	c.SetColor(navy)
	c.SetLineWidth(6)
	c.DrawRectangle(10, 10, w-20, h-20)
	c.Stroke()

	c.SetColor(gold)
	c.SetLineWidth(2)
	c.DrawRectangle(20, 20, w-40, h-40)
	c.Stroke()

	subject, presenter := photos.LoadPair(ctx, req.SubjectPhoto, req.PresenterPhoto)

	c.SetColor(navy)
	c.SetFont(true, 34)
	c.SetTextAlign(imagepkg.AlignCenter)
	c.FillText(msgs.Title, w/2, 65)

	line(c, gold, 2, w/2-100, 80, w/2+100, 80)

	imagepkg.DrawCircularImage(c, subject, w/2, 155, 55, 3, gold)

	c.SetFont(true, 26)
	c.SetColor(saffron)
	c.FillText(req.SubjectDisplayName(), w/2, 240)

	c.SetColor(gray(0x66))
	c.SetFont(false, 15)
	imagepkg.WrapText(c, msgs.Message, w/2, 275, w-100, 20)

	bottomY := h - 55
	imagepkg.DrawCircularImage(c, presenter, 70, bottomY, 25, 2, navy)

	c.SetColor(navy)
	c.SetTextAlign(imagepkg.AlignLeft)
	c.SetFont(true, 13)
	c.FillText(req.PresenterDisplayName(), 105, bottomY-5)
	c.SetFont(false, 11)
	c.SetColor(gray(0x88))
	c.FillText(req.PresenterTitle, 105, bottomY+12)

	c.SetTextAlign(imagepkg.AlignRight)
	c.SetColor(gray(0x99))
	c.SetFont(false, 11)
	c.FillText(msgs.From, w-40, bottomY+3)
}
