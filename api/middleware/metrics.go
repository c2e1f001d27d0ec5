package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stockpulse-app/stockpulse-backend/pkg/metrics"
)

// Metrics records request duration and counts per route pattern. It must
// run inside the chi router so the route context carries the matched
// pattern rather than the raw path.
func Metrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			m.ObserveRequest(r.Method, chi.RouteContext(r.Context()).RoutePattern(), rec.status, time.Since(start))
		})
	}
}
