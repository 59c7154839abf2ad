package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultUpstreamTimeout = 10 * time.Second

func newRestyClient(timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = defaultUpstreamTimeout
	}

	client := resty.New()
	client.SetTimeout(timeout)
	client.SetRetryCount(0)
	return client
}

func prepareClient(baseURL string, client *resty.Client) (*resty.Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("base url is required")
	}
	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("resty client is required")
	}

	if client.GetClient().Timeout == 0 {
		client.SetTimeout(defaultUpstreamTimeout)
	}
	client.SetRetryCount(0)
	client.SetBaseURL(trimmed)
	client.SetHeader("Accept", "application/json")

	return client, nil
}

func requestFailed(err error) error {
	if errors.Is(err, context.Canceled) {
		return &ProviderError{Message: "provider request canceled", Cause: err}
	}
	return &ProviderError{Message: "provider request failed", Cause: err}
}
