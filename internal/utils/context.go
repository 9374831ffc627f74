// Package utils provides helpers shared by the server and the client:
// context keys for the authenticated vault owner, the request-integrity
// HMAC pool, JSON response writing, the resty client and session token
// (JWT) issuing and parsing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// OwnerIDCtxKey holds the id of the authenticated vault owner. It is set by
// the bearer auth middleware and read by every owner-scoped operation.
var OwnerIDCtxKey = contextKey("ownerID")

// WithOwnerID returns a copy of ctx carrying ownerID.
func WithOwnerID(ctx context.Context, ownerID int64) context.Context {
	return context.WithValue(ctx, OwnerIDCtxKey, ownerID)
}

// GetOwnerIDFromContext returns the owner id stored in ctx. ok is false when
// the value is missing, has an unexpected type or is not positive.
func GetOwnerIDFromContext(ctx context.Context) (int64, bool) {
	ownerID, ok := ctx.Value(OwnerIDCtxKey).(int64)
	if !ok || ownerID <= 0 {
		return 0, false
	}
	return ownerID, true
}
