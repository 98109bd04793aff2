package http

import (
	"net/http"

	"github.com/MKhiriev/go-env-keeper/internal/utils"
	"github.com/google/uuid"
)

const traceIDHeader = utils.TraceIDHeader

// withTraceID adopts the client's sync trace ID, or mints one, and echoes it
// back. Every log line written while serving the request carries it.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		log := h.logger.With().Str("trace_id", traceID).Logger()
		ctx := log.WithContext(utils.WithTraceID(r.Context(), traceID))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

