package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kursadbilgin/notification-info/internal/domain"
	"github.com/kursadbilgin/notification-info/internal/observability"
	"github.com/kursadbilgin/notification-info/internal/provider"
	"go.uber.org/zap"
)

// NotificationHistoryLookup reads the email notification history of a
// shipment.
type NotificationHistoryLookup struct {
	client  provider.NotificationClient
	metrics Metrics
	logger  *zap.Logger
	now     func() time.Time
}

func NewNotificationHistoryLookup(client provider.NotificationClient, metrics Metrics, logger *zap.Logger) (*NotificationHistoryLookup, error) {
	if client == nil {
		return nil, fmt.Errorf("notification client is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &NotificationHistoryLookup{
		client:  client,
		metrics: metricsOrNoop(metrics),
		logger:  logger,
		now:     time.Now,
	}, nil
}

// GetEmailNotificationHistory returns upstream errors unchanged.
func (l *NotificationHistoryLookup) GetEmailNotificationHistory(
	ctx context.Context,
	trackingNumber string,
	courierCode string,
) ([]domain.NotificationEvent, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := observability.WithContextLogger(l.logger, ctx)
	logger.Debug("fetching notification history",
		zap.String("trackingNumber", trackingNumber),
		zap.String("courierCode", courierCode),
	)

	startedAt := l.now()
	records, err := l.client.GetEmailNotificationHistory(ctx, trackingNumber, courierCode)
	elapsed := l.now().Sub(startedAt)
	if err != nil {
		l.metrics.ObserveUpstreamCall(observability.UpstreamNotifications, observability.OutcomeError, elapsed)
		return nil, err
	}
	l.metrics.ObserveUpstreamCall(observability.UpstreamNotifications, observability.OutcomeSuccess, elapsed)

	events := make([]domain.NotificationEvent, 0, len(records))
	for _, record := range records {
		if record.Count < 0 {
			logger.Warn("negative notification count clamped to zero",
				zap.String("trackingNumber", trackingNumber),
				zap.String("templateName", record.TemplateName),
				zap.Int("count", record.Count),
			)
		}
		events = append(events, domain.NotificationEvent{
			TemplateName: record.TemplateName,
			SentAt:       record.NotificationDate,
			OrderStatus:  record.OrderStatus,
			Count:        record.Count,
		})
	}
	return events, nil
}
