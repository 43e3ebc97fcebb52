package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/convodocs/convodocs-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.DefaultRegisterer

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route/method/code.",
		},
		[]string{"route", "method", "code"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route/method/code.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "code"},
	)

	documentEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_events_total",
			Help: "Document operations by op and result, with the domain error code.",
		},
		[]string{"op", "result", "error"},
	)

	documentDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "document_operation_duration_seconds",
			Help:    "Duration of document operations by op and result.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op", "result"},
	)
)

// Middleware считает запросы по шаблону маршрута chi, а не по сырому пути,
// чтобы id в URL не раздували кардинальность.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := RoutePattern(r)
		if route == "/metrics" {
			return
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		code := strconv.Itoa(status)

		httpRequests.WithLabelValues(route, r.Method, code).Inc()
		httpDuration.WithLabelValues(route, r.Method, code).Observe(time.Since(start).Seconds())
	})
}

// RoutePattern возвращает шаблон маршрута chi; для несовпавших маршрутов - "unmatched".
func RoutePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveDocumentOp(op string, start time.Time, err error) {
	result := "success"
	errLabel := ""
	if err != nil {
		result = "error"
		errLabel = "internal"
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			errLabel = domainErr.Code
		}
	}
	documentEvents.WithLabelValues(op, result, errLabel).Inc()
	documentDuration.WithLabelValues(op, result).Observe(time.Since(start).Seconds())
}

func init() {
	collectors := []prometheus.Collector{
		httpRequests,
		httpDuration,
		documentEvents,
		documentDuration,
	}

	for _, c := range collectors {
		_ = registry.Register(c)
	}
}
