package banner

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/disintegration/imaging"

	"github.com/youruser/wishbanner/internal/util"
)

const dataURIPrefix = "data:image/png;base64,"

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// DataURI encodes img as a PNG data URI suitable for embedding or for
// handing to the messaging service as an attachment.
func DataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return "", fmt.Errorf("encode banner: %w", err)
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// WriteDownload sends img as a PNG attachment. filename is used verbatim as
// the suggested name; callers sanitise it.
func WriteDownload(w http.ResponseWriter, img image.Image, filename string) error {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return fmt.Errorf("encode banner: %w", err)
	}
	h := w.Header()
	h.Set("Content-Type", "image/png")
	h.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(buf.Bytes())
	return err
}

// SaveFile writes img as PNG to path, creating parent directories. The file
// is PNG whatever its extension.
func SaveFile(img image.Image, path string) error {
	if err := util.EnsureParentDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode banner: %w", err)
	}
	return f.Close()
}

// DecodeDataURI reverses DataURI.
func DecodeDataURI(uri string) (image.Image, error) {
	if len(uri) < len(dataURIPrefix) || uri[:len(dataURIPrefix)] != dataURIPrefix {
		return nil, fmt.Errorf("not a PNG data URI")
	}
	b, err := base64.StdEncoding.DecodeString(uri[len(dataURIPrefix):])
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}
