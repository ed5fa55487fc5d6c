// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "summer_success"

// ── HTTP ──

var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "HTTP requests by method, route and status code.",
}, []string{"method", "route", "status"})

var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})

var RateLimited = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "rate_limited_total",
	Help:      "Requests rejected by the rate limiter.",
})

// ── Tracker ──

var ActivitiesLogged = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "tracker",
	Name:      "activities_logged_total",
	Help:      "Activities created, by type.",
}, []string{"type"})

var BehaviorsLogged = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "tracker",
	Name:      "behaviors_logged_total",
	Help:      "Behaviors logged.",
})

var Celebrations = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "tracker",
	Name:      "celebrations_total",
	Help:      "First observations of a child earning reward time on a day.",
})

var Exports = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "tracker",
	Name:      "exports_total",
	Help:      "Export snapshots generated, by format.",
}, []string{"format"})

// Handler serves the default registry
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
