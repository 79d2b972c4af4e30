// Package auth turns bearer tokens into caller identities.
package auth

import (
	"context"
	"errors"

	"ticketvault/internal/domain"
)

// ErrInvalidToken is returned for tokens that fail verification or carry no
// email.
var ErrInvalidToken = errors.New("invalid token")

// Verifier checks a bearer token and reports who presented it.
type Verifier interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}

type identityKey struct{}

// NewContext returns a copy of ctx carrying id.
func NewContext(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the identity stored by NewContext, if any.
func FromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(domain.Identity)
	return id, ok
}
