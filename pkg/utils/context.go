package utils

import (
	"context"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated principal derived from a verified token.
type Identity struct {
	UserID  int64
	IsAdmin bool
}

func SetIdentityContext(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
