package middleware

import (
	"strconv"
	"time"

	"grid-scenarios/internal/analysis"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridscenarios_http_requests_total",
		Help: "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridscenarios_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	reportsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridscenarios_reports_computed_total",
		Help: "Performance reports computed.",
	})

	lastPeakDemand = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "gridscenarios_last_peak_demand_mw",
		Help: "Peak and optimized peak demand of the most recent report.",
	}, []string{"kind"})
)

// Metrics records request counts and latency per route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// RecordReport updates the report gauges.
func RecordReport(r analysis.Report) {
	reportsComputed.Inc()
	lastPeakDemand.WithLabelValues("peak").Set(r.Demand.Peak)
	lastPeakDemand.WithLabelValues("optimized").Set(r.Demand.OptimizedPeak)
}

// MetricsHandler serves the prometheus exposition format.
func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
