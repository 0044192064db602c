package middleware

import (
	"net/http"
	"time"

	"github.com/historicolocaticio/landing/internal/session"
)

// SessionCookie configures the page session cookie.
type SessionCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Session makes sure every request carries a page session ID. A missing or
// malformed cookie is replaced with a fresh ID.
func Session(cfg SessionCookie) func(http.Handler) http.Handler {
	if cfg.Name == "" {
		cfg.Name = "hl_session"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = session.DefaultTTL
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(cfg.Name); err == nil && session.ValidID(c.Value) {
				id = c.Value
			}
			if id == "" {
				id = session.NewID()
			}
			http.SetCookie(w, &http.Cookie{
				Name:     cfg.Name,
				Value:    id,
				Path:     "/",
				MaxAge:   int(cfg.TTL.Seconds()),
				HttpOnly: true,
				Secure:   cfg.Secure,
				SameSite: http.SameSiteLaxMode,
			})
			next.ServeHTTP(w, r.WithContext(session.WithID(r.Context(), id)))
		})
	}
}
