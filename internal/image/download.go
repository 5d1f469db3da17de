package imagepkg

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net/url"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/youruser/wishbanner/internal/util"
)

var errNoPhoto = errors.New("no photo reference")

// ErrImageTooLarge is returned for images whose declared size exceeds
// MaxPixels or MaxSide, before any pixel buffer is allocated.
var ErrImageTooLarge = errors.New("image dimensions too large")

const (
	// MaxSide bounds either dimension of a decoded photo.
	MaxSide = 8192
	// MaxPixels bounds the decoded area, roughly 100 MB as NRGBA.
	MaxPixels = 25_000_000
)

// DownloadImage downloads an image from URL and decodes it.
func DownloadImage(ctx context.Context, rawURL string, maxBytes int64) (image.Image, error) {
	body, err := util.GetBytes(ctx, rawURL, maxBytes)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(body)
}

// DecodeBytes decodes any format registered with the image package,
// applying EXIF orientation. The header is checked against MaxSide and
// MaxPixels first.
func DecodeBytes(b []byte) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	if cfg.Width > MaxSide || cfg.Height > MaxSide || cfg.Width*cfg.Height > MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}
	img, err := imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, errors.New("decoded image is empty")
	}
	return img, nil
}

// DecodeDataURI decodes a data: URI carrying an image, base64 or
// percent-encoded.
func DecodeDataURI(ref string) (image.Image, error) {
	payload, err := dataURIPayload(ref)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(payload)
}

func dataURIPayload(ref string) ([]byte, error) {
	if !strings.HasPrefix(ref, "data:") {
		return nil, errors.New("not a data URI")
	}
	header, data, ok := strings.Cut(ref[len("data:"):], ",")
	if !ok {
		return nil, errors.New("data URI has no payload")
	}
	if strings.HasSuffix(header, ";base64") {
		b, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			// some encoders drop the padding
			if b, err2 := base64.RawStdEncoding.DecodeString(strings.TrimRight(data, "=")); err2 == nil {
				return b, nil
			}
			return nil, fmt.Errorf("data URI: %w", err)
		}
		return b, nil
	}
	s, err := url.PathUnescape(data)
	if err != nil {
		return nil, fmt.Errorf("data URI: %w", err)
	}
	return []byte(s), nil
}
