package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine, s *Server) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	limit := s.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	api := r.Group("/api", BodyLimit(limit))
	{
		api.GET("/health", health)
		api.GET("/templates", templatesHandler)
		api.POST("/banner", s.bannerHandler)
		api.GET("/karyakartas", s.karyakartasHandler)
		api.POST("/karyakartas/:id/banner", s.karyakartaBannerHandler)
		api.GET("/qr", qrHandler)
	}
}
