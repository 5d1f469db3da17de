package imagepkg

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, imaging.New(w, h, c)))
	return buf.Bytes()
}

func TestPlaceholder(t *testing.T) {
	img := Placeholder()
	require.Equal(t, image.Rect(0, 0, PlaceholderSize, PlaceholderSize), img.Bounds())

	r, g, b, a := img.At(2, 2).RGBA()
	assert.Equal(t, uint32(0xdd), r>>8)
	assert.Equal(t, uint32(0xdd), g>>8)
	assert.Equal(t, uint32(0xdd), b>>8)
	assert.Equal(t, uint32(0xff), a>>8)

	// the caption darkens some pixels around the middle row
	dark := false
	for x := 10; x < 90; x++ {
		for y := 40; y < 60; y++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r>>8 < 0xc0 {
				dark = true
			}
		}
	}
	assert.True(t, dark, "caption should be visible")

	again := Placeholder()
	assert.Equal(t, img.(*image.RGBA).Pix, again.(*image.RGBA).Pix)
}

func TestLoaderLoad(t *testing.T) {
	red := solidPNG(t, 8, 6, color.NRGBA{R: 255, A: 255})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/red.png":
			w.Header().Set("Content-Type", "image/png")
			w.Write(red)
		case "/garbage":
			w.Write([]byte("not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	file := filepath.Join(t.TempDir(), "red.png")
	require.NoError(t, imaging.Save(imaging.New(5, 5, color.NRGBA{R: 255, A: 255}), file))

	l := &Loader{AllowFiles: true, Logger: zaptest.NewLogger(t)}
	ctx := context.Background()

	tests := []struct {
		name        string
		ref         string
		placeholder bool
		size        image.Point
	}{
		{"empty", "", true, image.Pt(PlaceholderSize, PlaceholderSize)},
		{"blank", "   ", true, image.Pt(PlaceholderSize, PlaceholderSize)},
		{"data uri", "data:image/png;base64," + base64.StdEncoding.EncodeToString(red), false, image.Pt(8, 6)},
		{"bad data uri", "data:image/png;base64,!!!!", true, image.Pt(PlaceholderSize, PlaceholderSize)},
		{"data uri without comma", "data:image/png;base64", true, image.Pt(PlaceholderSize, PlaceholderSize)},
		{"http", srv.URL + "/red.png", false, image.Pt(8, 6)},
		{"http 404", srv.URL + "/missing.png", true, image.Pt(PlaceholderSize, PlaceholderSize)},
		{"http garbage", srv.URL + "/garbage", true, image.Pt(PlaceholderSize, PlaceholderSize)},
		{"unreachable", "http://127.0.0.1:1/photo.png", true, image.Pt(PlaceholderSize, PlaceholderSize)},
		{"file", file, false, image.Pt(5, 5)},
		{"missing file", filepath.Join(t.TempDir(), "nope.jpg"), true, image.Pt(PlaceholderSize, PlaceholderSize)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := l.Load(ctx, tt.ref)
			require.NotNil(t, p.Image)
			assert.Equal(t, tt.placeholder, p.Placeholder)
			assert.Equal(t, tt.size, p.Image.Bounds().Size())
		})
	}
}

func TestLoaderLoadPair(t *testing.T) {
	red := solidPNG(t, 4, 4, color.NRGBA{R: 255, A: 255})
	l := &Loader{}
	a, b := l.LoadPair(context.Background(), "data:image/png;base64,"+base64.StdEncoding.EncodeToString(red), "")
	assert.False(t, a.Placeholder)
	assert.True(t, b.Placeholder)
}

func TestLoaderLoadPairConcurrent(t *testing.T) {
	red := solidPNG(t, 4, 4, color.NRGBA{R: 255, A: 255})

	// each response is held until both requests are in flight
	var arrived sync.WaitGroup
	arrived.Add(2)
	both := make(chan struct{})
	go func() {
		arrived.Wait()
		close(both)
	}()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		arrived.Done()
		select {
		case <-both:
			w.Header().Set("Content-Type", "image/png")
			w.Write(red)
		case <-time.After(3 * time.Second):
			http.Error(w, "requests were not concurrent", http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	l := &Loader{Logger: zaptest.NewLogger(t)}
	a, b := l.LoadPair(context.Background(), srv.URL+"/a.png", srv.URL+"/b.png")
	assert.False(t, a.Placeholder)
	assert.False(t, b.Placeholder)
	assert.Equal(t, image.Pt(4, 4), a.Image.Bounds().Size())
	assert.Equal(t, image.Pt(4, 4), b.Image.Bounds().Size())
}

func TestLoaderLocalFiles(t *testing.T) {
	root := t.TempDir()
	inside := filepath.Join(root, "photos", "in.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(inside), 0o755))
	require.NoError(t, imaging.Save(imaging.New(3, 3, color.NRGBA{B: 255, A: 255}), inside))
	outside := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, imaging.Save(imaging.New(3, 3, color.NRGBA{G: 255, A: 255}), outside))

	ctx := context.Background()

	t.Run("disabled by default", func(t *testing.T) {
		l := &Loader{}
		assert.True(t, l.Load(ctx, inside).Placeholder)
		assert.True(t, l.Load(ctx, outside).Placeholder)
	})

	t.Run("confined to root", func(t *testing.T) {
		l := &Loader{AllowFiles: true, FileRoot: root}
		p := l.Load(ctx, inside)
		assert.False(t, p.Placeholder)
		assert.Equal(t, image.Pt(3, 3), p.Image.Bounds().Size())

		assert.True(t, l.Load(ctx, outside).Placeholder)
		assert.True(t, l.Load(ctx, filepath.Join(root, "photos", "..", "..", "out.png")).Placeholder)
	})

	t.Run("symlink out of root", func(t *testing.T) {
		link := filepath.Join(root, "link.png")
		if err := os.Symlink(outside, link); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}
		l := &Loader{AllowFiles: true, FileRoot: root}
		assert.True(t, l.Load(ctx, link).Placeholder)
	})

	t.Run("size limit", func(t *testing.T) {
		l := &Loader{AllowFiles: true, FileRoot: root, MaxBytes: 16}
		assert.True(t, l.Load(ctx, inside).Placeholder)
	})
}

// pngHeader is a well-formed PNG signature and IHDR declaring w x h RGBA
// pixels, with no image data.
func pngHeader(w, h uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	chunk := func(typ string, data []byte) {
		var n [4]byte
		binary.BigEndian.PutUint32(n[:], uint32(len(data)))
		buf.Write(n[:])
		body := append([]byte(typ), data...)
		buf.Write(body)
		binary.BigEndian.PutUint32(n[:], crc32.ChecksumIEEE(body))
		buf.Write(n[:])
	}
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], w)
	binary.BigEndian.PutUint32(ihdr[4:], h)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // truecolour with alpha
	chunk("IHDR", ihdr)
	chunk("IEND", nil)
	return buf.Bytes()
}

func TestDecodeBytesRejectsHugeDimensions(t *testing.T) {
	for _, dims := range [][2]uint32{{12000, 12000}, {40000, 40000}, {MaxSide + 1, 10}, {6000, 6000}} {
		_, err := DecodeBytes(pngHeader(dims[0], dims[1]))
		assert.ErrorIs(t, err, ErrImageTooLarge, "%dx%d", dims[0], dims[1])
	}

	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngHeader(12000, 12000))
	p := (&Loader{}).Load(context.Background(), uri)
	assert.True(t, p.Placeholder)

	// in bounds decodes normally
	img, err := DecodeBytes(solidPNG(t, 64, 32, color.White))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(64, 32), img.Bounds().Size())
}

func TestDataURIPayloadPercentEncoded(t *testing.T) {
	b, err := dataURIPayload("data:text/plain,hello%20world")
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(b))
}
