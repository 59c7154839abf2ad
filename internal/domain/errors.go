package domain

import (
	"errors"
	"net/http"
	"strings"
)

// Kind classifies a failure so the boundary can pick a status code.
type Kind int

const (
	KindUnexpected Kind = iota
	KindUnauthenticated
	KindAccessDenied
	KindNotFound
	KindUpstreamUnavailable
	KindInvalidUpstreamData
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "UNAUTHENTICATED"
	case KindAccessDenied:
		return "ACCESS_DENIED"
	case KindNotFound:
		return "NOT_FOUND"
	case KindUpstreamUnavailable:
		return "UPSTREAM_UNAVAILABLE"
	case KindInvalidUpstreamData:
		return "INVALID_UPSTREAM_DATA"
	default:
		return "UNEXPECTED"
	}
}

// StatusCode is the HTTP status hint for the kind.
func (k Kind) StatusCode() int {
	switch k {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindAccessDenied:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstreamUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Reason codes are translation keys, never raw messages.
const (
	ReasonNotAuthenticated = "notification.user.not_authenticated"
	ReasonAccessDenied     = "notification.order.error.access_denied"
	ReasonOrderNotFound    = "notification.order.error.not_found"
	ReasonOrderProvider    = "notification.order.error.provider"
	ReasonInvalidOrderData = "notification.order.error.invalid_data"
	ReasonInvalidShipment  = "notification.order.error.invalid_shipment"
	ReasonSessionStore     = "notification.auth.error.session_store"
	ReasonInternal         = "notification.error.internal"
	ReasonRouteNotFound    = "notification.error.route_not_found"
	ReasonBadRequest       = "notification.error.bad_request"
)

// Error is a classified failure carrying a reason code for localization.
type Error struct {
	Kind   Kind
	Reason string
	Cause  error
}

func NewError(kind Kind, reason string, cause error) *Error {
	return &Error{Kind: kind, Reason: reason, Cause: cause}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	parts := make([]string, 0, 3)
	parts = append(parts, strings.ToLower(e.Kind.String()))
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// StatusCode is the HTTP status hint of the error's kind.
func (e *Error) StatusCode() int {
	if e == nil {
		return http.StatusInternalServerError
	}
	return e.Kind.StatusCode()
}

// Is matches on kind, and on reason when the target carries one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

// ErrNotFound matches any not-found failure regardless of its reason.
var ErrNotFound = &Error{Kind: KindNotFound}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var domainErr *Error
	if errors.As(err, &domainErr) && domainErr != nil {
		return domainErr.Kind
	}
	return KindUnexpected
}
