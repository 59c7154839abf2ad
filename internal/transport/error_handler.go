package transport

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/kursadbilgin/notification-info/internal/domain"
	"github.com/kursadbilgin/notification-info/internal/observability"
	"go.uber.org/zap"
)

// Translator localizes reason codes for the Accept-Language of a request.
type Translator interface {
	Translate(acceptLanguage, key string) string
}

// ErrorHandler renders failures as {"error": <localized message>}. Raw error
// text never reaches the response body for unexpected failures.
func ErrorHandler(logger *zap.Logger, translator Translator) fiber.ErrorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *fiber.Ctx, err error) error {
		log := observability.WithContextLogger(logger, c.UserContext()).With(
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)
		acceptLanguage := c.Get(fiber.HeaderAcceptLanguage)

		var domainErr *domain.Error
		if errors.As(err, &domainErr) {
			code := domainErr.Kind.StatusCode()
			reason := domainErr.Reason
			if reason == "" {
				reason = domain.ReasonInternal
			}

			log.Warn("request failed",
				zap.Int("status", code),
				zap.String("kind", domainErr.Kind.String()),
				zap.String("reason", reason),
				zap.Error(err),
			)
			return c.Status(code).JSON(fiber.Map{
				"error": translate(translator, acceptLanguage, reason),
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			if fiberErr.Code == fiber.StatusNotFound {
				log.Info("route not found", zap.Int("status", fiberErr.Code))
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": translate(translator, acceptLanguage, domain.ReasonRouteNotFound),
				})
			}
			if fiberErr.Code < fiber.StatusInternalServerError {
				log.Warn("request rejected", zap.Int("status", fiberErr.Code), zap.Error(err))
				return c.Status(fiberErr.Code).JSON(fiber.Map{
					"error": translate(translator, acceptLanguage, domain.ReasonBadRequest),
				})
			}
		}

		log.Error("unexpected request error",
			zap.Int("status", fiber.StatusInternalServerError),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": translate(translator, acceptLanguage, domain.ReasonInternal),
		})
	}
}

func translate(translator Translator, acceptLanguage, key string) string {
	if translator == nil {
		return key
	}
	return translator.Translate(acceptLanguage, key)
}
