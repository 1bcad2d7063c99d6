// Package ctxutil carries request-scoped values (the caller's identity and
// the request ID) through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	identityKey  struct{}
	requestIDKey struct{}
)

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// WithIdentity stores the authenticated caller in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromCtx returns the caller stored by WithIdentity.
// ok is false for anonymous requests and for a nil user ID.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || id.UserID == uuid.Nil {
		return Identity{}, false
	}
	return id, true
}

// WithUserID stores a caller known only by ID.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return WithIdentity(ctx, Identity{UserID: userID})
}

// UserIDFromCtx extracts the caller's user ID.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := IdentityFromCtx(ctx)
	return id.UserID, ok
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx extracts the request ID, or "" if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
