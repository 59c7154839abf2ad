package service

import (
	"context"
	"sync"
	"time"

	"github.com/kursadbilgin/notification-info/internal/auth"
	"github.com/kursadbilgin/notification-info/internal/domain"
	"github.com/kursadbilgin/notification-info/internal/provider"
)

type fakeOrderClient struct {
	getOneFn func(ctx context.Context, orderID, customerID string) (provider.OrderResponse, error)
	calls    int
}

func (f *fakeOrderClient) GetOne(ctx context.Context, orderID, customerID string) (provider.OrderResponse, error) {
	f.calls++
	if f.getOneFn != nil {
		return f.getOneFn(ctx, orderID, customerID)
	}
	return nil, nil
}

type fakeNotificationClient struct {
	historyFn func(ctx context.Context, trackingNumber, courierCode string) ([]provider.NotificationRecord, error)
	calls     int
}

func (f *fakeNotificationClient) GetEmailNotificationHistory(ctx context.Context, trackingNumber, courierCode string) ([]provider.NotificationRecord, error) {
	f.calls++
	if f.historyFn != nil {
		return f.historyFn(ctx, trackingNumber, courierCode)
	}
	return nil, nil
}

type fakeOrderGetter struct {
	getByIDFn func(ctx context.Context, orderID string) (*domain.Order, error)
}

func (f *fakeOrderGetter) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	return f.getByIDFn(ctx, orderID)
}

type fakeHistoryGetter struct {
	historyFn func(ctx context.Context, trackingNumber, courierCode string) ([]domain.NotificationEvent, error)
	calls     int
}

func (f *fakeHistoryGetter) GetEmailNotificationHistory(ctx context.Context, trackingNumber, courierCode string) ([]domain.NotificationEvent, error) {
	f.calls++
	return f.historyFn(ctx, trackingNumber, courierCode)
}

type upstreamCall struct {
	upstream string
	outcome  string
}

type recordingMetrics struct {
	mu       sync.Mutex
	upstream []upstreamCall
	stages   []string
}

func (m *recordingMetrics) ObserveUpstreamCall(upstream string, outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upstream = append(m.upstream, upstreamCall{upstream: upstream, outcome: outcome})
}

func (m *recordingMetrics) IncCourierMapping(stage string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stages = append(m.stages, stage)
}

func callerContext(customerID string) context.Context {
	return auth.WithCaller(context.Background(), auth.Caller{CustomerID: customerID})
}

func stringPtr(value string) *string {
	return &value
}
