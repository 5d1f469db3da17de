package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BannerRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "banner_renders_total",
			Help: "Total number of banner render calls",
		},
		[]string{"template", "language", "status"},
	)

	BannerRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "banner_render_duration_seconds",
			Help:    "Duration of banner rendering in seconds, photo loading included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"template"},
	)

	BannerPlaceholdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "banner_placeholder_photos_total",
			Help: "Photos replaced by the placeholder during rendering",
		},
		[]string{"template"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by route and status",
		},
		[]string{"route", "method", "status"},
	)
)
