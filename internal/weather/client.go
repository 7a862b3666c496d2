package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/lox/brightcast/internal/cli"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/onecall"

const userAgent = "brightcast/" + cli.Version

// ReportURL composes the One Call request URL: fixed coordinates, metric
// units, minutely and hourly data excluded.
func ReportURL(base string, lat, lon float64, key string) string {
	return fmt.Sprintf("%s?lat=%.4f&lon=%.4f&exclude=minutely,hourly&units=metric&appid=%s", base, lat, lon, key)
}

type Client struct {
	client *http.Client
}

// NewClient returns a client for the forecast endpoint. The underlying
// http.Client carries no timeout: the contract is one blocking GET.
func NewClient() *Client {
	return NewClientWith(&http.Client{})
}

func NewClientWith(h *http.Client) *Client {
	return &Client{client: h}
}

// Fetch issues one GET and decodes the response. No retry.
func (c *Client) Fetch(ctx context.Context, url string) (*Forecast, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch forecast: status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var forecast Forecast
	if err := json.Unmarshal(body, &forecast); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := forecast.validate(); err != nil {
		return nil, err
	}
	return &forecast, nil
}

// FetchReport fetches the forecast and renders the text report.
func (c *Client) FetchReport(ctx context.Context, url string) (string, error) {
	forecast, err := c.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	return RenderReport(forecast), nil
}
