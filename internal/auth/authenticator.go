package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials marks credentials that were presented but rejected.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials are the raw identity hints extracted from a request.
type Credentials struct {
	BearerToken string
	SessionID   string
}

// Authenticator resolves a caller from credentials. ok is false when the
// credentials it understands are absent. Errors other than
// ErrInvalidCredentials are infrastructure failures.
type Authenticator interface {
	Authenticate(ctx context.Context, credentials Credentials) (caller Caller, ok bool, err error)
}
