package middleware

import (
	"net/http"
	"time"

	"github.com/iudanet/gophcert/internal/server/metrics"
)

// Metrics records request count and latency.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrap(w)

			next.ServeHTTP(wrapped, r)

			m.HTTPRequest(r.Method, wrapped.statusCode, time.Since(start))
		})
	}
}
