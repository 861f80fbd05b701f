package devserver

import (
	"net/http"

	"github.com/MKhiriev/danmu-client/internal/utils"
	"github.com/rs/zerolog"
)

// withTraceID reuses the caller's X-Trace-ID or mints one, puts it on the
// request (so the proxy forwards it), on the response and on the request
// logger.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(utils.TraceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
			r.Header.Set(utils.TraceIDHeader, traceID)
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx := utils.WithTraceID(l.WithContext(r.Context()), traceID)
		r = r.WithContext(ctx)

		w.Header().Set(utils.TraceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
