package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/shielded-nft/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags the request logger and context with a trace id, taken
// from X-Trace-ID or generated, and echoes it back in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.WithTraceID(traceID)
		ctx = utils.WithTraceID(l.WithContext(ctx), traceID)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
