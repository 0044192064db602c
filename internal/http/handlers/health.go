package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/historicolocaticio/landing/pkg/logging"
)

// Pinger checks a backing dependency. *redis.Client satisfies it through a
// small adapter in bootstrap.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and, when a session backend is configured,
// its reachability.
type HealthHandler struct {
	sessions Pinger
	logger   *logging.Logger
}

// NewHealthHandler creates a health handler. sessions may be nil.
func NewHealthHandler(sessions Pinger, logger *logging.Logger) *HealthHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &HealthHandler{sessions: sessions, logger: logger}
}

// HealthCheck handles GET /health.
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.sessions != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.sessions.Ping(ctx); err != nil {
			h.logger.WarnContext(r.Context(), "session store unreachable", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "sessions": "unreachable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
