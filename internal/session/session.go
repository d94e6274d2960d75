// Package session provides server-side session state keyed by an
// opaque cookie value. The browser never carries user data, only the
// random session ID.
package session

import (
	"context"
	"errors"
)

// ErrNotFound indicates no session exists for the given ID.
var ErrNotFound = errors.New("session not found")

// Session is the per-login state established at login time. IsFarmer
// is trusted as set at login and not re-validated against storage on
// each request.
type Session struct {
	UserID   int64 `json:"user_id"`
	IsFarmer bool  `json:"is_farmer"`
}

// Store persists sessions by ID.
type Store interface {
	// Set stores the session under the given ID.
	Set(ctx context.Context, id string, sess Session) error

	// Get retrieves the session for the given ID.
	// Returns ErrNotFound if the session does not exist or has expired.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes the session for the given ID. Deleting a missing
	// session is not an error.
	Delete(ctx context.Context, id string) error
}

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const sessionContextKey contextKey = "session"

// NewContext returns a copy of ctx carrying the session.
func NewContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// FromContext retrieves the session from the context.
// Returns nil if the request is anonymous.
func FromContext(ctx context.Context) *Session {
	sess, ok := ctx.Value(sessionContextKey).(*Session)
	if !ok {
		return nil
	}
	return sess
}
