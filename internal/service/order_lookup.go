package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kursadbilgin/notification-info/internal/auth"
	"github.com/kursadbilgin/notification-info/internal/domain"
	"github.com/kursadbilgin/notification-info/internal/observability"
	"github.com/kursadbilgin/notification-info/internal/provider"
	"go.uber.org/zap"
)

// OrderLookup resolves an order id into the shipment keys of the order on
// behalf of the caller stored in the request context.
type OrderLookup struct {
	client  provider.OrderClient
	metrics Metrics
	logger  *zap.Logger
	now     func() time.Time
}

func NewOrderLookup(client provider.OrderClient, metrics Metrics, logger *zap.Logger) (*OrderLookup, error) {
	if client == nil {
		return nil, fmt.Errorf("order client is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &OrderLookup{
		client:  client,
		metrics: metricsOrNoop(metrics),
		logger:  logger,
		now:     time.Now,
	}, nil
}

// GetByID returns (nil, nil) when the upstream answers with a payload shape
// it does not recognise.
func (l *OrderLookup) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := observability.WithContextLogger(l.logger, ctx).With(zap.String("orderId", orderID))

	caller, ok := auth.CallerFromContext(ctx)
	if !ok {
		logger.Error("unauthenticated access attempt to order")
		return nil, domain.NewError(domain.KindUnauthenticated, domain.ReasonNotAuthenticated, nil)
	}

	startedAt := l.now()
	response, err := l.client.GetOne(ctx, orderID, caller.CustomerID)
	elapsed := l.now().Sub(startedAt)
	if err != nil {
		l.metrics.ObserveUpstreamCall(observability.UpstreamOrders, observability.OutcomeError, elapsed)
		logger.Error("order provider request failed", zap.Error(err))
		return nil, domain.NewError(domain.KindUpstreamUnavailable, domain.ReasonOrderProvider, err)
	}

	switch resp := response.(type) {
	case *provider.ErrorResponse:
		if resp == nil {
			resp = &provider.ErrorResponse{}
		}
		if resp.StatusCode == http.StatusForbidden {
			l.metrics.ObserveUpstreamCall(observability.UpstreamOrders, observability.OutcomeDenied, elapsed)
			logger.Warn("order provider denied access",
				zap.String("code", resp.Code),
				zap.String("message", resp.Message),
			)
			return nil, domain.NewError(domain.KindAccessDenied, domain.ReasonAccessDenied, nil)
		}

		l.metrics.ObserveUpstreamCall(observability.UpstreamOrders, observability.OutcomeNotFound, elapsed)
		logger.Warn("order not found in provider",
			zap.Int("statusCode", resp.StatusCode),
			zap.String("code", resp.Code),
			zap.String("message", resp.Message),
		)
		return nil, domain.NewError(domain.KindNotFound, domain.ReasonOrderNotFound, nil)

	case *provider.ExternalOrder:
		if resp == nil || strings.TrimSpace(resp.ID) == "" {
			l.metrics.ObserveUpstreamCall(observability.UpstreamOrders, observability.OutcomeInvalidData, elapsed)
			logger.Error("invalid order data: missing id")
			return nil, domain.NewError(domain.KindInvalidUpstreamData, domain.ReasonInvalidOrderData, nil)
		}

		shipment := resp.Shipment
		if shipment == nil || strings.TrimSpace(shipment.ForeignShipmentID) == "" {
			l.metrics.ObserveUpstreamCall(observability.UpstreamOrders, observability.OutcomeInvalidData, elapsed)
			logger.Error("invalid shipment data for order")
			return nil, domain.NewError(domain.KindInvalidUpstreamData, domain.ReasonInvalidShipment, nil)
		}

		courierCode := domain.UnknownCourierCode
		if shipment.Supplier != nil {
			courierCode = *shipment.Supplier
		}

		l.metrics.ObserveUpstreamCall(observability.UpstreamOrders, observability.OutcomeSuccess, elapsed)
		logger.Info("order retrieved",
			zap.String("trackingNumber", shipment.ForeignShipmentID),
			zap.String("courierCode", courierCode),
		)
		return &domain.Order{
			ID:             resp.ID,
			TrackingNumber: shipment.ForeignShipmentID,
			CourierCode:    courierCode,
		}, nil
	}

	l.metrics.ObserveUpstreamCall(observability.UpstreamOrders, observability.OutcomeUnknown, elapsed)
	logger.Warn("unexpected order provider response type",
		zap.String("responseType", fmt.Sprintf("%T", response)),
	)
	return nil, nil
}
