package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kursadbilgin/notification-info/internal/courier"
	"github.com/kursadbilgin/notification-info/internal/domain"
	"github.com/kursadbilgin/notification-info/internal/observability"
	"go.uber.org/zap"
)

type OrderGetter interface {
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)
}

type HistoryGetter interface {
	GetEmailNotificationHistory(ctx context.Context, trackingNumber, courierCode string) ([]domain.NotificationEvent, error)
}

// NotificationInfoService aggregates the notification history of an order.
type NotificationInfoService struct {
	orders  OrderGetter
	history HistoryGetter
	metrics Metrics
	logger  *zap.Logger
}

func NewNotificationInfoService(
	orders OrderGetter,
	history HistoryGetter,
	metrics Metrics,
	logger *zap.Logger,
) (*NotificationInfoService, error) {
	if orders == nil {
		return nil, fmt.Errorf("order lookup is required")
	}
	if history == nil {
		return nil, fmt.Errorf("history lookup is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &NotificationInfoService{
		orders:  orders,
		history: history,
		metrics: metricsOrNoop(metrics),
		logger:  logger,
	}, nil
}

// GetByOrder returns an empty summary when the order does not exist or
// cannot be interpreted.
func (s *NotificationInfoService) GetByOrder(ctx context.Context, orderID string) (domain.NotificationSummary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := observability.WithContextLogger(s.logger, ctx).With(zap.String("orderId", orderID))

	order, err := s.orders.GetByID(ctx, orderID)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Info("order not found, returning empty notifications")
		return domain.EmptyNotificationSummary(), nil
	}
	if err != nil {
		logger.Error("failed to fetch notification statistics",
			zap.String("kind", domain.KindOf(err).String()),
			zap.Error(err),
		)
		return domain.NotificationSummary{}, err
	}
	if order == nil {
		logger.Info("order unavailable, returning empty notifications")
		return domain.EmptyNotificationSummary(), nil
	}

	courierCode, stage := courier.Resolve(order.CourierCode)
	s.metrics.IncCourierMapping(stage.String())
	if stage == courier.StagePassthrough {
		logger.Warn("courier code has no notification mapping", zap.String("courierCode", order.CourierCode))
	}

	events, err := s.history.GetEmailNotificationHistory(ctx, order.TrackingNumber, courierCode)
	if err != nil {
		logger.Error("failed to fetch notification statistics",
			zap.String("kind", domain.KindOf(err).String()),
			zap.Error(err),
		)
		return domain.NotificationSummary{}, err
	}

	summary := domain.NewNotificationSummary(events)
	logger.Info("notifications fetched",
		zap.Int("count", summary.TotalNotifications),
		zap.Int("templates", len(summary.History)),
	)
	return summary, nil
}
