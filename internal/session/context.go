package session

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const idKey ctxKey = "landing.session_id"

// WithID stores the session id in context.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, idKey, id)
}

// IDFromContext extracts the session id if present.
func IDFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(idKey)
	if val == nil {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}

// NewID generates a session identifier.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like an identifier issued by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
