package api

import (
	"bytes"
	"errors"
	"image"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/wishbanner/internal/banner"
	"github.com/youruser/wishbanner/internal/contacts"
	"github.com/youruser/wishbanner/internal/i18n"
	imagepkg "github.com/youruser/wishbanner/internal/image"
)

// Server holds what the banner handlers need.
type Server struct {
	Engine          *banner.Engine
	Store           *contacts.Store
	Catalog         *i18n.Catalog
	Logger          *zap.Logger
	DefaultTemplate banner.TemplateID
	DefaultLanguage banner.Language
	// MaxBodyBytes caps JSON request bodies; zero means DefaultMaxBodyBytes.
	MaxBodyBytes    int64
	Now             func() time.Time
}

const DefaultMaxBodyBytes = 24 << 20

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func templatesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": banner.TemplateIDs, "languages": banner.Languages})
}

// bannerHandler renders a banner from a full request body. The response is
// PNG by default, a download with ?download=<filename>, or JSON with
// ?format=datauri.
func (s *Server) bannerHandler(c *gin.Context) {
	var req banner.Request
	if !bindJSON(c, &req) {
		return
	}
	img, ok := s.generate(c, req)
	if !ok {
		return
	}
	s.respond(c, img, c.Query("download"), c.Query("format"))
}

func (s *Server) karyakartasHandler(c *gin.Context) {
	opt := contacts.FilterOptions{FreeWords: c.Query("q")}
	if today, _ := strconv.ParseBool(c.Query("today")); today {
		opt.BirthdayOn = s.now()
	}
	out := contacts.Filter(s.Store.List(), opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "karyakartas": out})
}

// karyakartaBannerHandler renders the banner for one stored contact, signed
// by the stored profile. It answers with the data URI the messaging
// service attaches, unless ?download=1 asks for the file.
func (s *Server) karyakartaBannerHandler(c *gin.Context) {
	k, found := s.Store.Karyakarta(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "karyakarta not found"})
		return
	}
	var body struct {
		Template banner.TemplateID `json:"template"`
		Language banner.Language   `json:"language"`
	}
	if c.Request.ContentLength != 0 && !bindJSON(c, &body) {
		return
	}

	profile := s.Store.Profile()
	req := s.requestFor(k, profile, body.Template, body.Language)
	img, ok := s.generate(c, req)
	if !ok {
		return
	}

	filename := k.BannerFilename()
	if download, _ := strconv.ParseBool(c.Query("download")); download {
		if err := banner.WriteDownload(c.Writer, img, filename); err != nil {
			_ = c.Error(err)
		}
		return
	}
	uri, err := banner.DataURI(img)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.log().Info("birthday banner ready",
		zap.String("karyakarta", k.ID),
		zap.String("template", string(req.Template)),
		zap.String("language", string(req.Language)))
	c.JSON(http.StatusOK, gin.H{
		"karyakarta": k.ID,
		"recipient":  contacts.NormalizeWhatsApp(k.WhatsApp),
		"template":   req.Template,
		"language":   req.Language,
		"filename":   filename,
		"data_uri":   uri,
	})
}

// requestFor fills a banner request from stored records. An empty template
// or language falls back to the profile's language and then the server
// defaults; explicit values are passed through and validated by the engine.
func (s *Server) requestFor(k contacts.Karyakarta, p contacts.Politician, tmpl banner.TemplateID, lang banner.Language) banner.Request {
	if tmpl == "" {
		tmpl = s.DefaultTemplate
	}
	if lang == "" {
		lang = banner.Language(p.DefaultLanguage)
		if !lang.Valid() {
			lang = s.DefaultLanguage
		}
	}
	return banner.Request{
		Template:                tmpl,
		Language:                lang,
		SubjectName:             k.Name,
		SubjectPhoto:            k.Photo,
		PresenterName:           p.Name,
		PresenterTitle:          p.Position,
		PresenterPhoto:          p.Photo,
		TranslatedSubjectName:   s.Catalog.SubjectName(string(lang), k.Name),
		TranslatedPresenterName: s.Catalog.PresenterName(string(lang), p.Name),
	}
}

// generate renders req and writes the error response itself on failure.
func (s *Server) generate(c *gin.Context, req banner.Request) (*image.RGBA, bool) {
	img, err := s.Engine.Generate(c.Request.Context(), req)
	switch {
	case err == nil:
		return img, true
	case errors.Is(err, banner.ErrUnknownTemplate), errors.Is(err, banner.ErrUnsupportedLanguage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate banner"})
	}
	return nil, false
}

// bindJSON decodes the body into v, answering 413 when the body limit was
// hit and 400 for anything else.
func bindJSON(c *gin.Context, v any) bool {
	err := c.ShouldBindJSON(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	return false
}

// downloadName keeps a caller-chosen filename safe inside a quoted
// Content-Disposition value.
func downloadName(name string) string {
	name = strings.Map(func(r rune) rune {
		if r == '"' || r == '\\' || unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	if name = strings.TrimSpace(name); name == "" {
		return defaultDownloadName
	}
	return name
}

const defaultDownloadName = "birthday-banner.png"

func (s *Server) respond(c *gin.Context, img *image.RGBA, download, format string) {
	if download != "" {
		if err := banner.WriteDownload(c.Writer, img, downloadName(download)); err != nil {
			_ = c.Error(err)
		}
		return
	}
	if format == "datauri" {
		uri, err := banner.DataURI(img)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data_uri": uri})
		return
	}
	var buf bytes.Buffer
	if err := banner.EncodePNG(&buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *Server) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// qr endpoint returns a PNG of a QR for "text", or for the WhatsApp chat
// link of "phone"
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if phone := c.Query("phone"); phone != "" {
		text = contacts.WhatsAppLink(phone)
	}
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text or phone is required"})
		return
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 && v <= 2048 {
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
