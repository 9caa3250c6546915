// Package metrics holds the Prometheus collectors of the service. They are
// registered on the default registry and exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// buckets cover fast cache hits up to slow aggregate queries
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "blog_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_cache_requests_total",
			Help: "Cache lookups by cache name and result (hit, miss, error)",
		},
		[]string{"cache", "result"},
	)

	FeedbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_article_feedback_total",
			Help: "Feedback attempts by status and outcome",
		},
		[]string{"status", "outcome"},
	)
)

const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)
