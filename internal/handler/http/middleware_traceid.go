package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request trace ID in both directions: incoming
// values are reused, generated ones are echoed back to the caller.
const traceIDHeader = "X-Trace-ID"

// traceIDs generates time-ordered UUIDs so trace IDs sort chronologically
// in log aggregation.
var traceIDs = utils.NewUUIDGenerator()

// withTraceID tags every request with a trace ID and installs a request-scoped
// logger carrying it into the context, so all later log records of the same
// request share the "trace_id" field.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)

		ctx := l.WithContext(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
