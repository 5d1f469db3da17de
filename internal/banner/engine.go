package banner

import (
	"context"
	"fmt"
	"image"
	"math/rand"
	"time"

	"go.uber.org/zap"

	imagepkg "github.com/youruser/wishbanner/internal/image"
	"github.com/youruser/wishbanner/internal/metrics"
)

// Output size of every banner.
const (
	Width  = 600
	Height = 400
)

// Engine maps template ids to renderers and produces finished banners. It
// keeps no per-render state, so one Engine serves concurrent calls.
type Engine struct {
	photos    PhotoSource
	fonts     *imagepkg.Fonts
	logger    *zap.Logger
	newRand   func() *rand.Rand
	renderers map[TemplateID]Renderer
}

type Option func(*Engine)

// WithPhotoSource replaces the default photo loader.
func WithPhotoSource(p PhotoSource) Option {
	return func(e *Engine) { e.photos = p }
}

func WithFonts(f *imagepkg.Fonts) Option {
	return func(e *Engine) { e.fonts = f }
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRandSource sets the factory for the festive template's confetti
// randomness. It is called once per render.
func WithRandSource(newRand func() *rand.Rand) Option {
	return func(e *Engine) { e.newRand = newRand }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		fonts:   imagepkg.DefaultFonts(),
		logger:  zap.NewNop(),
		newRand: timeSeeded,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.photos == nil {
		e.photos = &imagepkg.Loader{Logger: e.logger}
	}
	e.renderers = map[TemplateID]Renderer{
		ModernGradient:    modernGradient{},
		PoliticalBranding: politicalBranding{},
		MinimalPremium:    minimalPremium{},
		Festive:           festive{newRand: e.newRand},
	}
	return e
}

// Generate renders req into a freshly allocated Width x Height surface. An
// unknown template or language is rejected before anything is drawn. Photo
// failures never surface here; they become placeholders. Any other failure
// returns no image at all.
func (e *Engine) Generate(ctx context.Context, req Request) (*image.RGBA, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	renderer, ok := e.renderers[req.Template]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, req.Template)
	}

	start := time.Now()
	canvas, err := e.render(ctx, renderer, req)
	elapsed := time.Since(start)

	tmpl, lang := string(req.Template), string(req.Language)
	metrics.BannerRenderDuration.WithLabelValues(tmpl).Observe(elapsed.Seconds())
	if err != nil {
		metrics.BannerRendersTotal.WithLabelValues(tmpl, lang, "error").Inc()
		e.logger.Error("banner render failed",
			zap.String("template", tmpl), zap.String("language", lang), zap.Error(err))
		return nil, err
	}
	metrics.BannerRendersTotal.WithLabelValues(tmpl, lang, "ok").Inc()

	placeholders := 0
	for _, d := range canvas.Drawn() {
		if d.Kind == imagepkg.DrawnPhoto && d.Placeholder {
			placeholders++
		}
	}
	if placeholders > 0 {
		metrics.BannerPlaceholdersTotal.WithLabelValues(tmpl).Add(float64(placeholders))
	}
	e.logger.Debug("banner rendered",
		zap.String("template", tmpl),
		zap.String("language", lang),
		zap.Int("placeholders", placeholders),
		zap.Duration("elapsed", elapsed))

	return canvas.RGBA(), nil
}

func (e *Engine) render(ctx context.Context, r Renderer, req Request) (c *imagepkg.Canvas, err error) {
	defer func() {
		if p := recover(); p != nil {
			c, err = nil, fmt.Errorf("%w: %v", ErrRender, p)
		}
	}()
	c = imagepkg.NewCanvas(Width, Height, e.fonts)
	r.Render(ctx, c, req, e.photos)
	return c, nil
}

// Templates lists the ids this engine can render.
func (e *Engine) Templates() []TemplateID {
	out := make([]TemplateID, 0, len(TemplateIDs))
	for _, id := range TemplateIDs {
		if _, ok := e.renderers[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
