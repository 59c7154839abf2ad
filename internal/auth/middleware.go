package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kursadbilgin/notification-info/internal/domain"
	"github.com/kursadbilgin/notification-info/internal/observability"
	"go.uber.org/zap"
)

const DefaultSessionCookieName = "SESSID"

// Middleware resolves the caller with the first authenticator that accepts
// the request credentials and stores it in the request context. Requests
// without a resolvable caller continue anonymously.
func Middleware(logger *zap.Logger, sessionCookieName string, authenticators ...Authenticator) fiber.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(sessionCookieName) == "" {
		sessionCookieName = DefaultSessionCookieName
	}

	return func(c *fiber.Ctx) error {
		credentials := Credentials{
			BearerToken: bearerToken(c.Get(fiber.HeaderAuthorization)),
			SessionID:   strings.TrimSpace(c.Cookies(sessionCookieName)),
		}
		if credentials.BearerToken == "" && credentials.SessionID == "" {
			return c.Next()
		}

		ctx := c.UserContext()
		log := observability.WithContextLogger(logger, ctx)

		for _, authenticator := range authenticators {
			if authenticator == nil {
				continue
			}

			caller, ok, err := authenticator.Authenticate(ctx, credentials)
			if errors.Is(err, ErrInvalidCredentials) {
				log.Warn("rejected credentials", zap.Error(err))
				continue
			}
			if err != nil {
				log.Error("authentication backend failed", zap.Error(err))
				return domain.NewError(domain.KindUpstreamUnavailable, domain.ReasonSessionStore, err)
			}
			if ok {
				c.SetUserContext(WithCaller(ctx, caller))
				break
			}
		}

		return c.Next()
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
