package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPNotificationClientGetEmailNotificationHistory(t *testing.T) {
	t.Parallel()

	var gotPath, gotTracking, gotCourier string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTracking = r.URL.Query().Get("trackingNumber")
		gotCourier = r.URL.Query().Get("courierCode")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"notifications":[
			{"templateName":"shipped","notificationDate":"2024-01-02T10:00:00Z","orderStatus":"SHIPPED","count":2},
			{"templateName":"delivered","notificationDate":"2024-01-05T10:00:00Z","orderStatus":"DELIVERED","count":1}
		]}`))
	}))
	defer server.Close()

	client, err := NewHTTPNotificationClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewHTTPNotificationClient() error = %v", err)
	}

	records, err := client.GetEmailNotificationHistory(context.Background(), "TRK 1", "POCZTA_POLSKA")
	if err != nil {
		t.Fatalf("GetEmailNotificationHistory() unexpected error: %v", err)
	}

	if gotPath != "/api/notifications/email/history" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotTracking != "TRK 1" || gotCourier != "POCZTA_POLSKA" {
		t.Fatalf("query = (%q, %q), want (TRK 1, POCZTA_POLSKA)", gotTracking, gotCourier)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].TemplateName != "shipped" || records[0].Count != 2 || records[0].OrderStatus != "SHIPPED" {
		t.Fatalf("records[0] = %+v", records[0])
	}
	if records[1].NotificationDate != "2024-01-05T10:00:00Z" {
		t.Fatalf("records[1] = %+v", records[1])
	}
}

func TestHTTPNotificationClientEmptyHistory(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := NewHTTPNotificationClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewHTTPNotificationClient() error = %v", err)
	}

	records, err := client.GetEmailNotificationHistory(context.Background(), "T", "DHL")
	if err != nil {
		t.Fatalf("GetEmailNotificationHistory() unexpected error: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Fatalf("records = %#v, want empty non-nil slice", records)
	}
}

func TestHTTPNotificationClientFailures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		statusCode int
		body       string
		wantStatus int
	}{
		{name: "server error", statusCode: http.StatusInternalServerError, body: "boom", wantStatus: http.StatusInternalServerError},
		{name: "client error", statusCode: http.StatusBadRequest, body: "bad courier", wantStatus: http.StatusBadRequest},
		{name: "malformed json", statusCode: http.StatusOK, body: "{not json", wantStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client, err := NewHTTPNotificationClient(server.URL, time.Second)
			if err != nil {
				t.Fatalf("NewHTTPNotificationClient() error = %v", err)
			}

			_, err = client.GetEmailNotificationHistory(context.Background(), "T", "DHL")
			var providerErr *ProviderError
			if !errors.As(err, &providerErr) {
				t.Fatalf("expected ProviderError, got %T (%v)", err, err)
			}
			if providerErr.StatusCode != tc.wantStatus {
				t.Fatalf("StatusCode = %d, want %d", providerErr.StatusCode, tc.wantStatus)
			}
		})
	}
}

func TestHTTPNotificationClientCanceledContext(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"notifications":[]}`))
	}))
	defer server.Close()

	client, err := NewHTTPNotificationClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewHTTPNotificationClient() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.GetEmailNotificationHistory(ctx, "T", "DHL")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled in chain", err)
	}
}
