package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	SessionIDKey contextKey = "session_id"
)

// GetSessionIDFromContext returns the view session token set by the session middleware.
func GetSessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	val := ctx.Value(SessionIDKey)
	if val == nil {
		return uuid.Nil, false
	}

	sessionIDStr, ok := val.(string)
	if !ok {
		return uuid.Nil, false
	}

	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return sessionID, true
}

func SetSessionContext(ctx context.Context, sessionID uuid.UUID) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID.String())
}
