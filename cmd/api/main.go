package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/kursadbilgin/notification-info/internal/auth"
	"github.com/kursadbilgin/notification-info/internal/config"
	"github.com/kursadbilgin/notification-info/internal/handler"
	"github.com/kursadbilgin/notification-info/internal/i18n"
	infraredis "github.com/kursadbilgin/notification-info/internal/infra/redis"
	"github.com/kursadbilgin/notification-info/internal/observability"
	"github.com/kursadbilgin/notification-info/internal/provider"
	"github.com/kursadbilgin/notification-info/internal/service"
	"github.com/kursadbilgin/notification-info/internal/transport"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("notification-info api stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	translator, err := i18n.NewTranslator(cfg.DefaultLocale)
	if err != nil {
		return fmt.Errorf("translator initialization failed: %w", err)
	}

	metrics := observability.NewMetrics()

	authenticators, rdb, err := buildAuthenticators(ctx, cfg)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	infoService, err := buildNotificationInfoService(cfg, metrics, logger)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		AppName:               "notification-info",
		DisableStartupMessage: true,
		ErrorHandler:          transport.ErrorHandler(logger, translator),
	})
	app.Use(recover.New())
	app.Use(observability.CorrelationMiddleware())
	app.Use(metrics.HTTPMiddleware())

	handler.RegisterHealthRoutes(app, rdb)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	app.Use(auth.Middleware(logger, cfg.SessionCookieName, authenticators...))
	if err := handler.RegisterNotificationRoutes(app, infoService); err != nil {
		return fmt.Errorf("route registration failed: %w", err)
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		addr := fmt.Sprintf(":%d", cfg.APIPort)
		logger.Info("notification-info api started",
			zap.Int("port", cfg.APIPort),
			zap.Bool("sessionAuth", cfg.SessionAuthEnabled()),
		)
		if err := app.Listen(addr); err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down notification-info api")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func buildAuthenticators(ctx context.Context, cfg *config.Config) ([]auth.Authenticator, *goredis.Client, error) {
	jwtAuthenticator, err := auth.NewJWTAuthenticator(cfg.JWTSecret)
	if err != nil {
		return nil, nil, fmt.Errorf("jwt authenticator initialization failed: %w", err)
	}
	authenticators := []auth.Authenticator{jwtAuthenticator}

	if !cfg.SessionAuthEnabled() {
		return authenticators, nil, nil
	}

	rdb, err := infraredis.NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("redis initialization failed: %w", err)
	}
	sessions, err := infraredis.NewSessionStore(rdb)
	if err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("session store initialization failed: %w", err)
	}
	sessionAuthenticator, err := auth.NewSessionAuthenticator(sessions)
	if err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("session authenticator initialization failed: %w", err)
	}

	return append(authenticators, sessionAuthenticator), rdb, nil
}

func buildNotificationInfoService(cfg *config.Config, metrics *observability.Metrics, logger *zap.Logger) (*service.NotificationInfoService, error) {
	orderClient, err := provider.NewHTTPOrderClient(cfg.OrderServiceURL, cfg.UpstreamTimeout())
	if err != nil {
		return nil, fmt.Errorf("order client initialization failed: %w", err)
	}
	notificationClient, err := provider.NewHTTPNotificationClient(cfg.NotificationServiceURL, cfg.UpstreamTimeout())
	if err != nil {
		return nil, fmt.Errorf("notification client initialization failed: %w", err)
	}

	orderLookup, err := service.NewOrderLookup(orderClient, metrics, logger)
	if err != nil {
		return nil, err
	}
	historyLookup, err := service.NewNotificationHistoryLookup(notificationClient, metrics, logger)
	if err != nil {
		return nil, err
	}
	return service.NewNotificationInfoService(orderLookup, historyLookup, metrics, logger)
}
