package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-api/internal/logger"
)

// withLogging records every request: method and URI at arrival, then status
// code, response size, and total handling time once the pipeline below it
// (auth, validation, persistence) has finished.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		log.Debug().
			Str("uri", uri).
			Str("method", method).
			Msg("request received")

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
