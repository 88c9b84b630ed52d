// Package metrics exposes Prometheus collectors for the live server and the renderer.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registerOnce sync.Once

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mycv",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	requestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mycv",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	requestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mycv",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "HTTP requests currently being served.",
		},
	)

	renderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mycv",
			Subsystem: "render",
			Name:      "duration_seconds",
			Help:      "Time spent loading and rendering one résumé.",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25},
		},
		[]string{"lang"},
	)

	renderFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mycv",
			Subsystem: "render",
			Name:      "failures_total",
			Help:      "Résumé renders that failed, by language and stage (load or render).",
		},
		[]string{"lang", "stage"},
	)
)

// Register adds the collectors to the default registry. It is safe to call
// more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(requestDuration, requestTotal, requestsInFlight, renderDuration, renderFailures)
	})
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	Register()
	return promhttp.Handler()
}

// Middleware records latency, count and in-flight requests. route labels the
// request with its mux pattern so URL paths do not explode label cardinality.
func Middleware(next http.Handler) http.Handler {
	Register()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestsInFlight.Inc()
		defer requestsInFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		labels := prometheus.Labels{
			"method": r.Method,
			"route":  route,
			"status": strconv.Itoa(rec.status),
		}

		requestDuration.With(labels).Observe(time.Since(start).Seconds())
		requestTotal.With(labels).Inc()
	})
}

// ObserveRender records one successful render for lang.
func ObserveRender(lang string, d time.Duration) {
	renderDuration.WithLabelValues(lang).Observe(d.Seconds())
}

// RenderFailed counts a failure at stage ("load" or "render") for lang.
func RenderFailed(lang, stage string) {
	renderFailures.WithLabelValues(lang, stage).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
