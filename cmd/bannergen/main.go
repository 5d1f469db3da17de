// Command bannergen renders birthday banners from the command line, either
// for one person given by flags or for everyone in the data directory whose
// birthday is today.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/youruser/wishbanner/internal/banner"
	"github.com/youruser/wishbanner/internal/config"
	"github.com/youruser/wishbanner/internal/contacts"
	"github.com/youruser/wishbanner/internal/i18n"
	imagepkg "github.com/youruser/wishbanner/internal/image"
	"github.com/youruser/wishbanner/internal/logger"
	"github.com/youruser/wishbanner/internal/util"
)

func main() {
	var (
		tmpl           = flag.String("template", "", "template id (default from config)")
		lang           = flag.String("lang", "", "language: en, hi or mr (default from config)")
		subject        = flag.String("subject", "", "birthday person's name")
		subjectLocal   = flag.String("subject-local", "", "localized form of the subject's name")
		subjectPhoto   = flag.String("subject-photo", "", "subject photo: path, URL or data URI")
		presenter      = flag.String("presenter", "", "sender's name")
		presenterLocal = flag.String("presenter-local", "", "localized form of the sender's name")
		title          = flag.String("title", "", "sender's title")
		presenterPhoto = flag.String("presenter-photo", "", "sender photo: path, URL or data URI")
		out            = flag.String("out", "birthday-banner.png", "output file")
		outDir         = flag.String("out-dir", "banners", "output directory for -today")
		dataURI        = flag.Bool("datauri", false, "print a data URI instead of writing a file")
		today          = flag.Bool("today", false, "render banners for today's birthdays from the data directory")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	l, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal(err)
	}
	defer l.Sync()

	fonts, err := imagepkg.LoadFonts(cfg.Fonts.Regular, cfg.Fonts.Bold)
	if err != nil {
		l.Fatal("loading fonts", zap.Error(err))
	}
	engine := banner.NewEngine(
		banner.WithLogger(l),
		banner.WithFonts(fonts),
		banner.WithPhotoSource(&imagepkg.Loader{
			Timeout:    cfg.Loader.Timeout,
			MaxBytes:   cfg.Loader.MaxBytes,
			AllowFiles: true,
			Logger:     l,
		}),
	)

	if *tmpl == "" {
		*tmpl = cfg.Banner.DefaultTemplate
	}
	if *lang == "" {
		*lang = cfg.Banner.DefaultLanguage
	}
	ctx := context.Background()

	if *today {
		n, err := renderToday(ctx, engine, cfg, banner.TemplateID(*tmpl), banner.Language(*lang), *outDir)
		if err != nil {
			l.Fatal("rendering today's banners", zap.Error(err))
		}
		l.Info("rendered today's banners", zap.Int("count", n), zap.String("dir", *outDir))
		return
	}

	req := banner.Request{
		Template:                banner.TemplateID(*tmpl),
		Language:                banner.Language(*lang),
		SubjectName:             *subject,
		SubjectPhoto:            *subjectPhoto,
		PresenterName:           *presenter,
		PresenterTitle:          *title,
		PresenterPhoto:          *presenterPhoto,
		TranslatedSubjectName:   *subjectLocal,
		TranslatedPresenterName: *presenterLocal,
	}
	img, err := engine.Generate(ctx, req)
	if err != nil {
		l.Fatal("failed to generate banner", zap.Error(err))
	}
	if *dataURI {
		uri, err := banner.DataURI(img)
		if err != nil {
			l.Fatal("encoding banner", zap.Error(err))
		}
		fmt.Fprintln(os.Stdout, uri)
		return
	}
	if err := banner.SaveFile(img, *out); err != nil {
		l.Fatal("saving banner", zap.Error(err))
	}
	l.Info("banner saved", zap.String("path", *out))
}

func renderToday(ctx context.Context, e *banner.Engine, cfg *config.Config, tmpl banner.TemplateID, lang banner.Language, dir string) (int, error) {
	ks, err := contacts.LoadKaryakartasFromDataDir(cfg.Data.Dir)
	if err != nil {
		return 0, err
	}
	profile, err := contacts.LoadProfile(cfg.Data.Dir)
	if err != nil {
		return 0, err
	}
	catalog, err := i18n.LoadCatalog(cfg.Data.Translations)
	if err != nil {
		return 0, err
	}
	if err := util.EnsureDir(dir); err != nil {
		return 0, err
	}

	n := 0
	for _, k := range contacts.TodaysBirthdays(ks, time.Now()) {
		img, err := e.Generate(ctx, banner.Request{
			Template:                tmpl,
			Language:                lang,
			SubjectName:             k.Name,
			SubjectPhoto:            k.Photo,
			PresenterName:           profile.Name,
			PresenterTitle:          profile.Position,
			PresenterPhoto:          profile.Photo,
			TranslatedSubjectName:   catalog.SubjectName(string(lang), k.Name),
			TranslatedPresenterName: catalog.PresenterName(string(lang), profile.Name),
		})
		if err != nil {
			return n, fmt.Errorf("banner for %s: %w", k.ID, err)
		}
		if err := banner.SaveFile(img, filepath.Join(dir, k.BannerFilename())); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
