package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "coursehub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
	enrollmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coursehub_enrollment_operations_total",
			Help: "Enrollment operations by kind and outcome",
		},
		[]string{"op", "outcome"},
	)
)

// prometheusMiddleware records request duration labelled by the chi route
// pattern, so path parameters do not explode label cardinality.
func prometheusMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimid.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		httpRequestDuration.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Observe(time.Since(start).Seconds())
	})
}

func recordEnrollment(op string, err error) {
	outcome := "ok"
	if err != nil {
		code, _ := statusFor(err)
		outcome = strconv.Itoa(code)
	}
	enrollmentsTotal.WithLabelValues(op, outcome).Inc()
}
