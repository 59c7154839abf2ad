package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrSessionNotFound is returned by a SessionStore for unknown or expired
// sessions.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore resolves a session id to the customer that owns it.
type SessionStore interface {
	CustomerID(ctx context.Context, sessionID string) (string, error)
}

// SessionAuthenticator resolves callers from a session cookie.
type SessionAuthenticator struct {
	store SessionStore
}

func NewSessionAuthenticator(store SessionStore) (*SessionAuthenticator, error) {
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	return &SessionAuthenticator{store: store}, nil
}

func (a *SessionAuthenticator) Authenticate(ctx context.Context, credentials Credentials) (Caller, bool, error) {
	sessionID := strings.TrimSpace(credentials.SessionID)
	if sessionID == "" {
		return Caller{}, false, nil
	}

	customerID, err := a.store.CustomerID(ctx, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return Caller{}, false, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	if err != nil {
		return Caller{}, false, fmt.Errorf("session lookup: %w", err)
	}
	if strings.TrimSpace(customerID) == "" {
		return Caller{}, false, fmt.Errorf("%w: session has no customer id", ErrInvalidCredentials)
	}

	return Caller{CustomerID: customerID}, true, nil
}
