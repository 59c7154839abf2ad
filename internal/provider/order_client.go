package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const externalOrderPath = "/api/external-orders/{orderId}"

// HTTPOrderClient reads orders from the order-management service.
type HTTPOrderClient struct {
	client *resty.Client
}

func NewHTTPOrderClient(baseURL string, timeout time.Duration) (*HTTPOrderClient, error) {
	return NewHTTPOrderClientWithClient(baseURL, newRestyClient(timeout))
}

func NewHTTPOrderClientWithClient(baseURL string, client *resty.Client) (*HTTPOrderClient, error) {
	prepared, err := prepareClient(baseURL, client)
	if err != nil {
		return nil, fmt.Errorf("order client: %w", err)
	}
	return &HTTPOrderClient{client: prepared}, nil
}

func (c *HTTPOrderClient) GetOne(ctx context.Context, orderID, customerID string) (OrderResponse, error) {
	if c == nil || c.client == nil {
		return nil, fmt.Errorf("order client is not initialized")
	}

	response, err := c.client.R().
		SetContext(ctx).
		SetPathParam("orderId", orderID).
		SetQueryParam("customerId", customerID).
		Get(externalOrderPath)
	if err != nil {
		return nil, requestFailed(err)
	}
	if response == nil {
		return nil, &ProviderError{Message: "provider returned empty response"}
	}

	statusCode := response.StatusCode()
	body := bytes.TrimSpace(response.Body())

	switch {
	case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
		return decodeExternalOrder(statusCode, body)
	case statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError:
		return decodeErrorResponse(statusCode, body), nil
	default:
		return nil, &ProviderError{
			StatusCode: statusCode,
			Message:    providerErrorMessage(statusCode, string(body)),
		}
	}
}

func decodeExternalOrder(statusCode int, body []byte) (OrderResponse, error) {
	if len(body) == 0 || body[0] != '{' || !json.Valid(body) {
		return &UnknownResponse{StatusCode: statusCode, Body: string(body)}, nil
	}

	var order ExternalOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, &ProviderError{
			StatusCode: statusCode,
			Message:    "malformed order payload",
			Cause:      err,
		}
	}
	return &order, nil
}

func decodeErrorResponse(statusCode int, body []byte) *ErrorResponse {
	errorResponse := &ErrorResponse{StatusCode: statusCode}
	if len(body) > 0 && json.Valid(body) {
		_ = json.Unmarshal(body, errorResponse)
	}
	if strings.TrimSpace(errorResponse.Message) == "" {
		errorResponse.Message = providerErrorMessage(statusCode, string(body))
	}
	return errorResponse
}
