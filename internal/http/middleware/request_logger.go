package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/historicolocaticio/landing/internal/session"
	"github.com/historicolocaticio/landing/pkg/logging"
)

// RequestLogger emits one structured log line for every HTTP request.
func RequestLogger(logger *logging.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"request_id", chimw.GetReqID(r.Context()),
				"remote_ip", r.RemoteAddr,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if sid, ok := session.IDFromContext(r.Context()); ok {
				attrs = append(attrs, "session_id", sid)
			}
			if status >= http.StatusInternalServerError {
				logger.ErrorContext(r.Context(), "request completed", attrs...)
				return
			}
			logger.InfoContext(r.Context(), "request completed", attrs...)
		})
	}
}
