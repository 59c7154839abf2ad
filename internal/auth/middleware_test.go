package auth

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kursadbilgin/notification-info/internal/domain"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubAuthenticator struct {
	authenticateFn func(ctx context.Context, credentials Credentials) (Caller, bool, error)
}

func (s stubAuthenticator) Authenticate(ctx context.Context, credentials Credentials) (Caller, bool, error) {
	return s.authenticateFn(ctx, credentials)
}

func newAuthTestApp(logger *zap.Logger, authenticators ...Authenticator) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if domain.KindOf(err) == domain.KindUpstreamUnavailable {
				return c.SendStatus(fiber.StatusServiceUnavailable)
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	app.Use(Middleware(logger, "SESSID", authenticators...))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		caller, ok := CallerFromContext(c.UserContext())
		if !ok {
			return c.SendString("anonymous")
		}
		return c.SendString(caller.CustomerID)
	})
	return app
}

func doWhoami(t *testing.T, app *fiber.App, header, cookie string) (int, string) {
	t.Helper()

	req := httptest.NewRequest("GET", "/whoami", nil)
	if header != "" {
		req.Header.Set(fiber.HeaderAuthorization, header)
	}
	if cookie != "" {
		req.Header.Set(fiber.HeaderCookie, "SESSID="+cookie)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestMiddlewareResolvesBearerToken(t *testing.T) {
	t.Parallel()

	jwtAuth, err := NewJWTAuthenticator("secret")
	if err != nil {
		t.Fatalf("NewJWTAuthenticator() error = %v", err)
	}
	token, err := jwtAuth.IssueToken("customer-7", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	app := newAuthTestApp(zap.NewNop(), jwtAuth)

	status, body := doWhoami(t, app, "Bearer "+token, "")
	if status != fiber.StatusOK || body != "customer-7" {
		t.Fatalf("response = (%d, %q), want (200, customer-7)", status, body)
	}

	status, body = doWhoami(t, app, "bearer "+token, "")
	if status != fiber.StatusOK || body != "customer-7" {
		t.Fatalf("lowercase scheme response = (%d, %q), want (200, customer-7)", status, body)
	}
}

func TestMiddlewareFallsThroughToSession(t *testing.T) {
	t.Parallel()

	jwtAuth, err := NewJWTAuthenticator("secret")
	if err != nil {
		t.Fatalf("NewJWTAuthenticator() error = %v", err)
	}
	sessionAuth, err := NewSessionAuthenticator(&stubSessionStore{
		customerIDFn: func(_ context.Context, sessionID string) (string, error) {
			if sessionID == "s-1" {
				return "customer-session", nil
			}
			return "", ErrSessionNotFound
		},
	})
	if err != nil {
		t.Fatalf("NewSessionAuthenticator() error = %v", err)
	}

	core, logs := observer.New(zapcore.WarnLevel)
	app := newAuthTestApp(zap.New(core), jwtAuth, sessionAuth)

	status, body := doWhoami(t, app, "Bearer broken-token", "s-1")
	if status != fiber.StatusOK || body != "customer-session" {
		t.Fatalf("response = (%d, %q), want (200, customer-session)", status, body)
	}
	if logs.FilterMessage("rejected credentials").Len() != 1 {
		t.Fatalf("expected one rejected credentials warning, got %d", logs.FilterMessage("rejected credentials").Len())
	}
}

func TestMiddlewareAnonymousRequests(t *testing.T) {
	t.Parallel()

	called := false
	app := newAuthTestApp(zap.NewNop(), stubAuthenticator{
		authenticateFn: func(context.Context, Credentials) (Caller, bool, error) {
			called = true
			return Caller{}, false, nil
		},
	})

	status, body := doWhoami(t, app, "", "")
	if status != fiber.StatusOK || body != "anonymous" {
		t.Fatalf("response = (%d, %q), want (200, anonymous)", status, body)
	}
	if called {
		t.Fatal("authenticator should not run without credentials")
	}

	status, body = doWhoami(t, app, "Basic dXNlcjpwYXNz", "")
	if status != fiber.StatusOK || body != "anonymous" {
		t.Fatalf("basic auth response = (%d, %q), want (200, anonymous)", status, body)
	}
}

func TestMiddlewareBackendFailureIsUpstreamUnavailable(t *testing.T) {
	t.Parallel()

	app := newAuthTestApp(zap.NewNop(), stubAuthenticator{
		authenticateFn: func(context.Context, Credentials) (Caller, bool, error) {
			return Caller{}, false, errors.New("redis: connection refused")
		},
	})

	status, _ := doWhoami(t, app, "", "s-1")
	if status != fiber.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", status)
	}
}

func TestCallerFromContext(t *testing.T) {
	t.Parallel()

	if _, ok := CallerFromContext(context.Background()); ok {
		t.Fatal("empty context should carry no caller")
	}
	if _, ok := CallerFromContext(WithCaller(context.Background(), Caller{CustomerID: "  "})); ok {
		t.Fatal("blank customer id should not count as a caller")
	}

	caller, ok := CallerFromContext(WithCaller(context.Background(), Caller{CustomerID: "c-1"}))
	if !ok || caller.CustomerID != "c-1" {
		t.Fatalf("CallerFromContext() = (%+v, %v), want c-1", caller, ok)
	}
}
