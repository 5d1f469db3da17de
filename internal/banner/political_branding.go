package banner

import (
	"context"

	imagepkg "github.com/youruser/wishbanner/internal/image"
)

// politicalBranding: navy field under a saffron header, presenter and
// subject portraits either side of the centred name and message, gold
// footer carrying the attribution.
type politicalBranding struct{}

func (politicalBranding) Render(ctx context.Context, c *imagepkg.Canvas, req Request, photos PhotoSource) {
	w, h := dims(c)
	msgs := birthdayMessages[req.Language]

	fillRect(c, navy, 0, 0, w, h)
	fillRect(c, saffron, 0, 0, w, 70)
	fillRect(c, gold, 0, 68, w, 3)

	subject, presenter := photos.LoadPair(ctx, req.SubjectPhoto, req.PresenterPhoto)

	c.SetColor(white)
	c.SetFont(true, 30)
	c.SetTextAlign(imagepkg.AlignCenter)
	c.FillText(msgs.Title, w/2, 48)

	const (
		photoY = 100.0
		photoW = 100.0
		photoH = 120.0
	)

	imagepkg.DrawRectImage(c, presenter, 30, photoY, photoW, photoH, 3, gold)

	c.SetColor(white)
	c.SetFont(true, 12)
	c.FillText(req.PresenterDisplayName(), 30+photoW/2, photoY+photoH+20)
	c.SetFont(false, 10)
	c.SetColor(gold)
	c.FillText(req.PresenterTitle, 30+photoW/2, photoY+photoH+35)

	imagepkg.DrawRectImage(c, subject, w-30-photoW, photoY, photoW, photoH, 3, saffron)

	cx := w / 2
	c.SetColor(white)
	c.SetFont(true, 28)
	c.FillText(req.SubjectDisplayName(), cx, 150)

	line(c, gold, 2, cx-80, 165, cx+80, 165)

	c.SetFont(false, 16)
	c.SetColor(gold)
	imagepkg.WrapText(c, msgs.Message, cx, 195, 200, 22)

	fillRect(c, gold, 0, h-25, w, 25)

	c.SetColor(navy)
	c.SetFont(true, 12)
	c.FillText(msgs.From, w/2, h-8)
}
