package banner

import (
	"context"
	"errors"
	"image"
	"math/rand"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	imagepkg "github.com/youruser/wishbanner/internal/image"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	return NewEngine(append([]Option{WithLogger(zaptest.NewLogger(t))}, opts...)...)
}

func sampleRequest(tmpl TemplateID, lang Language) Request {
	return Request{
		Template:       tmpl,
		Language:       lang,
		SubjectName:    "Amit Sharma",
		PresenterName:  "Shri Rajesh Kumar",
		PresenterTitle: "Member of Legislative Assembly",
	}
}

func distinctColors(img *image.RGBA) int {
	seen := map[[4]uint8]struct{}{}
	for i := 0; i+3 < len(img.Pix); i += 4 * 97 {
		seen[[4]uint8{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}] = struct{}{}
	}
	return len(seen)
}

func TestGenerateEveryTemplateAndLanguage(t *testing.T) {
	e := newTestEngine(t)
	for _, tmpl := range TemplateIDs {
		for _, lang := range Languages {
			t.Run(string(tmpl)+"/"+string(lang), func(t *testing.T) {
				img, err := e.Generate(context.Background(), sampleRequest(tmpl, lang))
				require.NoError(t, err)
				assert.Equal(t, image.Rect(0, 0, Width, Height), img.Bounds())
				assert.Greater(t, distinctColors(img), 3, "surface should not be blank")
			})
		}
	}
}

func TestGenerateUnreachablePhoto(t *testing.T) {
	e := newTestEngine(t)
	req := sampleRequest(ModernGradient, English)
	req.SubjectPhoto = "http://127.0.0.1:1/missing.jpg"
	req.PresenterPhoto = "data:image/png;base64,definitely-not-png"

	img, err := e.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, Width, img.Bounds().Dx())
	assert.Equal(t, Height, img.Bounds().Dy())
}

func TestGenerateDeterministic(t *testing.T) {
	e := newTestEngine(t)
	for _, tmpl := range []TemplateID{ModernGradient, PoliticalBranding, MinimalPremium} {
		t.Run(string(tmpl), func(t *testing.T) {
			req := sampleRequest(tmpl, Hindi)
			a, err := e.Generate(context.Background(), req)
			require.NoError(t, err)
			b, err := e.Generate(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, a.Pix, b.Pix)
		})
	}
}

func TestGenerateFestiveSeeded(t *testing.T) {
	seeded := func() *rand.Rand { return rand.New(rand.NewSource(42)) }
	e := newTestEngine(t, WithRandSource(seeded))

	req := sampleRequest(Festive, Marathi)
	a, err := e.Generate(context.Background(), req)
	require.NoError(t, err)
	b, err := e.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, a.Pix, b.Pix)

	other := newTestEngine(t, WithRandSource(func() *rand.Rand { return rand.New(rand.NewSource(7)) }))
	c, err := other.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, a.Pix, c.Pix, "confetti follows the random source")
}

func TestGenerateRejectsContractViolations(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Generate(context.Background(), sampleRequest("neon", English))
	assert.True(t, errors.Is(err, ErrUnknownTemplate))

	_, err = e.Generate(context.Background(), sampleRequest(Festive, "fr"))
	assert.True(t, errors.Is(err, ErrUnsupportedLanguage))

	_, err = e.Generate(context.Background(), sampleRequest("", ""))
	assert.True(t, errors.Is(err, ErrUnknownTemplate))
}

type panicky struct{}

func (panicky) Render(context.Context, *imagepkg.Canvas, Request, PhotoSource) {
	panic("font primitives unavailable")
}

func TestGenerateRecoversRenderFailure(t *testing.T) {
	e := newTestEngine(t)
	e.renderers[ModernGradient] = panicky{}

	img, err := e.Generate(context.Background(), sampleRequest(ModernGradient, English))
	assert.Nil(t, img)
	assert.True(t, errors.Is(err, ErrRender))
	assert.Contains(t, err.Error(), "font primitives unavailable")
}

type recordingSource struct {
	mu   sync.Mutex
	refs [][2]string
}

func (r *recordingSource) LoadPair(_ context.Context, a, b string) (imagepkg.Photo, imagepkg.Photo) {
	r.mu.Lock()
	r.refs = append(r.refs, [2]string{a, b})
	r.mu.Unlock()
	return imagepkg.Photo{Image: imagepkg.Placeholder(), Placeholder: true},
		imagepkg.Photo{Image: imagepkg.Placeholder(), Placeholder: true}
}

func TestGeneratePassesPhotoRefs(t *testing.T) {
	src := &recordingSource{}
	e := newTestEngine(t, WithPhotoSource(src))

	req := sampleRequest(PoliticalBranding, English)
	req.SubjectPhoto = "subject.jpg"
	req.PresenterPhoto = "presenter.jpg"
	_, err := e.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"subject.jpg", "presenter.jpg"}}, src.refs)
}

func TestGenerateConcurrent(t *testing.T) {
	e := newTestEngine(t)
	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tmpl := TemplateIDs[i%len(TemplateIDs)]
			_, errs[i] = e.Generate(context.Background(), sampleRequest(tmpl, Languages[i%len(Languages)]))
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestDataURIRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	img, err := e.Generate(context.Background(), sampleRequest(Festive, English))
	require.NoError(t, err)

	uri, err := DataURI(img)
	require.NoError(t, err)
	assert.Regexp(t, `^data:image/png;base64,`, uri)

	decoded, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, Width, Height), decoded.Bounds())

	_, err = DecodeDataURI("data:image/jpeg;base64,AAAA")
	assert.Error(t, err)
}

func TestWriteDownload(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	rec := httptest.NewRecorder()
	require.NoError(t, WriteDownload(rec, img, "birthday-Amit-Sharma.png"))

	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="birthday-Amit-Sharma.png"`, rec.Header().Get("Content-Disposition"))
	decoded, err := imagepkg.DecodeBytes(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, Width, decoded.Bounds().Dx())
}

func TestSaveFile(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	path := filepath.Join(t.TempDir(), "out", "banner")
	require.NoError(t, SaveFile(img, path))

	saved, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(Width, Height), saved.Bounds().Size())
}

func TestTemplates(t *testing.T) {
	assert.Equal(t, TemplateIDs, NewEngine().Templates())
}
