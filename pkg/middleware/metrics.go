package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/performance-hub-api/pkg/metrics"
)

// MetricsMiddleware registra contagem e duração das requisições
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := newStatusRecorder(w)
			startTime := time.Now()

			next.ServeHTTP(recorder, r)

			m.ObserveRequest(r.Method, recorder.statusCode, time.Since(startTime))
		})
	}
}
