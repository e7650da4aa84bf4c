package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	userAgentHeader      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	acceptHeader         = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	acceptLanguageHeader = "en-US,en;q=0.9"
)

type HTTPClientHelper struct {
	client *http.Client
}

func InitializeHTTPClientHelper(timeout time.Duration) (*HTTPClientHelper, error) {
	if timeout <= 0 {
		return nil, fmt.Errorf("http timeout must be positive, got %v", timeout)
	}
	return &HTTPClientHelper{client: &http.Client{Timeout: timeout}}, nil
}

// GetHTML issues one GET with browser-like headers and returns the raw body.
func (httpClientHelper *HTTPClientHelper) GetHTML(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error on NewRequest for url='%s': %w", url, err)
	}
	req.Header.Set("User-Agent", userAgentHeader)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLanguageHeader)

	resp, err := httpClientHelper.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error on Get url for url='%s': %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-ok status code received for url='%s', got status-code=%d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error on readall for url='%s': %w", url, err)
	}
	return data, nil
}
