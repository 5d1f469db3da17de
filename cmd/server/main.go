package main

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/wishbanner/internal/api"
	"github.com/youruser/wishbanner/internal/banner"
	"github.com/youruser/wishbanner/internal/config"
	"github.com/youruser/wishbanner/internal/contacts"
	"github.com/youruser/wishbanner/internal/i18n"
	imagepkg "github.com/youruser/wishbanner/internal/image"
	"github.com/youruser/wishbanner/internal/logger"
)

func main() {
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
		// request bodies may only reach local photos under the data dir
		banner.WithPhotoSource(&imagepkg.Loader{
			Timeout:    cfg.Loader.Timeout,
			MaxBytes:   cfg.Loader.MaxBytes,
			AllowFiles: true,
			FileRoot:   cfg.Data.Dir,
			Logger:     l,
		}),
	)

	// Load contacts at startup (best-effort)
	ks, err := contacts.LoadKaryakartasFromDataDir(cfg.Data.Dir)
	if err != nil {
		l.Warn("failed to load karyakartas at startup", zap.Error(err))
	}
	profile, err := contacts.LoadProfile(cfg.Data.Dir)
	if err != nil {
		l.Warn("failed to load profile at startup", zap.Error(err))
	}
	catalog, err := i18n.LoadCatalog(cfg.Data.Translations)
	if err != nil {
		l.Warn("failed to load translations", zap.String("path", filepath.Clean(cfg.Data.Translations)), zap.Error(err))
	}

	s := &api.Server{
		Engine:          engine,
		Store:           contacts.NewStore(ks, profile),
		Catalog:         catalog,
		Logger:          l,
		DefaultTemplate: banner.TemplateID(cfg.Banner.DefaultTemplate),
		DefaultLanguage: banner.Language(cfg.Banner.DefaultLanguage),
		MaxBodyBytes:    cfg.Server.MaxBodyBytes,
	}

	r := gin.New()
	r.Use(gin.Recovery(), api.ZapLogger(l))
	api.RegisterRoutes(r, s)

	l.Info("starting server", zap.String("addr", "http://localhost:"+cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		l.Fatal("server stopped", zap.Error(err))
	}
}
