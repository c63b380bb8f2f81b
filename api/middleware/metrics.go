package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "seqguard_request_duration_seconds",
	Help:    "HTTP request latency by method, path, and status.",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "path", "status"})

// Metrics records a latency histogram sample per request. The raw URL
// path is used as the label: the route surface is small and fixed, so
// cardinality stays bounded.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			requestDuration.WithLabelValues(
				r.Method,
				r.URL.Path,
				strconv.Itoa(ww.Status()),
			).Observe(time.Since(start).Seconds())
		}()

		next.ServeHTTP(ww, r)
	})
}
