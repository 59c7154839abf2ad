package auth

import (
	"context"
	"strings"
)

type callerContextKey struct{}

// Caller is the authenticated customer on whose behalf a request runs.
type Caller struct {
	CustomerID string
}

func WithCaller(ctx context.Context, caller Caller) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, callerContextKey{}, caller)
}

// CallerFromContext returns the caller stored in ctx. ok is false when no
// caller is present or its customer id is blank.
func CallerFromContext(ctx context.Context) (Caller, bool) {
	if ctx == nil {
		return Caller{}, false
	}

	caller, ok := ctx.Value(callerContextKey{}).(Caller)
	if !ok || strings.TrimSpace(caller.CustomerID) == "" {
		return Caller{}, false
	}
	return caller, true
}
