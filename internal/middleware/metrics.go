package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/wanderplan/backend/internal/metrics"
)

// NewMetricsHandler returns a middleware that records a request counter
// and duration observation per request. The route label is chi's route
// pattern (e.g. "/api/days/{dayID}"), read after the handler has run so
// the pattern is resolved, keeping label cardinality bounded.
func NewMetricsHandler(c *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			c.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
			c.RequestDuration.Observe(time.Since(start).Seconds())
		})
	}
}
