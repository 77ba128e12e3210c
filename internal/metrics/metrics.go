package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	StatusOK       = "ok"
	StatusRejected = "rejected"
	StatusFailed   = "failed"
)

var (
	ScoresSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "culturefest_scores_submitted_total",
			Help: "Score batches submitted by judges",
		},
		[]string{"status"},
	)

	LotteryDraws = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "culturefest_lottery_draws_total",
			Help: "Performance order previews drawn per tier",
		},
		[]string{"tier"},
	)

	LotteryCommits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "culturefest_lottery_commits_total",
			Help: "Performance order commits",
		},
		[]string{"status"},
	)

	Registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "culturefest_registrations_total",
			Help: "Registration create and update attempts",
		},
		[]string{"op", "status"},
	)

	Uploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "culturefest_uploads_total",
			Help: "Media uploads by outcome",
		},
		[]string{"status"},
	)

	Exports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "culturefest_exports_total",
			Help: "Generated export documents",
		},
		[]string{"kind", "format"},
	)

	LiveClients = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "culturefest_live_clients",
			Help: "Connected live update clients per room",
		},
		[]string{"room"},
	)

	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "culturefest_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "code"},
	)
)

// Outcome maps an error to the status label used by the counters above.
func Outcome(err error, rejected func(error) bool) string {
	switch {
	case err == nil:
		return StatusOK
	case rejected != nil && rejected(err):
		return StatusRejected
	default:
		return StatusFailed
	}
}

// Middleware observes request latency keyed by the matched route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestLatency.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
