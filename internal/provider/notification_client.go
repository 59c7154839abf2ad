package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const emailHistoryPath = "/api/notifications/email/history"

type emailHistoryResponse struct {
	Notifications []NotificationRecord `json:"notifications"`
}

// HTTPNotificationClient reads email notification history from the
// notification service.
type HTTPNotificationClient struct {
	client *resty.Client
}

func NewHTTPNotificationClient(baseURL string, timeout time.Duration) (*HTTPNotificationClient, error) {
	return NewHTTPNotificationClientWithClient(baseURL, newRestyClient(timeout))
}

func NewHTTPNotificationClientWithClient(baseURL string, client *resty.Client) (*HTTPNotificationClient, error) {
	prepared, err := prepareClient(baseURL, client)
	if err != nil {
		return nil, fmt.Errorf("notification client: %w", err)
	}
	return &HTTPNotificationClient{client: prepared}, nil
}

func (c *HTTPNotificationClient) GetEmailNotificationHistory(ctx context.Context, trackingNumber, courierCode string) ([]NotificationRecord, error) {
	if c == nil || c.client == nil {
		return nil, fmt.Errorf("notification client is not initialized")
	}

	response, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"trackingNumber": trackingNumber,
			"courierCode":    courierCode,
		}).
		Get(emailHistoryPath)
	if err != nil {
		return nil, requestFailed(err)
	}
	if response == nil {
		return nil, &ProviderError{Message: "provider returned empty response"}
	}

	statusCode := response.StatusCode()
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, &ProviderError{
			StatusCode: statusCode,
			Message:    providerErrorMessage(statusCode, strings.TrimSpace(response.String())),
		}
	}

	var payload emailHistoryResponse
	if err := json.Unmarshal(response.Body(), &payload); err != nil {
		return nil, &ProviderError{
			StatusCode: statusCode,
			Message:    "malformed notification history payload",
			Cause:      err,
		}
	}
	if payload.Notifications == nil {
		return []NotificationRecord{}, nil
	}
	return payload.Notifications, nil
}
