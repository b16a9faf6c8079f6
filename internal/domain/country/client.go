package country

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"
)

// Client fetches catalog data from the external provider. It holds no
// state beyond the HTTP client and never mutates anything upstream.
type Client struct {
	client  *http.Client
	baseURL string
	log     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		baseURL: baseURL,
		log:     log,
	}
}

// All returns the full catalog.
func (c *Client) All(ctx context.Context) ([]Country, error) {
	return c.fetch(ctx, "/all")
}

// ByName searches countries whose name matches the given fragment.
func (c *Client) ByName(ctx context.Context, name string) ([]Country, error) {
	return c.fetch(ctx, "/name/"+url.PathEscape(name))
}

// ByRegion returns the countries of a region.
func (c *Client) ByRegion(ctx context.Context, region string) ([]Country, error) {
	return c.fetch(ctx, "/region/"+url.PathEscape(region))
}

// ByCode looks a country up by its alpha-3 code.
func (c *Client) ByCode(ctx context.Context, code string) (Country, error) {
	countries, err := c.fetch(ctx, "/alpha/"+url.PathEscape(code))
	if err != nil {
		return Country{}, err
	}
	if len(countries) == 0 {
		return Country{}, ErrNotFound
	}
	return countries[0], nil
}

func (c *Client) fetch(ctx context.Context, path string) ([]Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug("catalog request", "url", req.URL.String())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(body, resp.StatusCode),
		}
	}

	var countries []Country
	if err := json.Unmarshal(body, &countries); err != nil {
		// The alpha endpoint may return a single object instead of a list.
		var one Country
		if err2 := json.Unmarshal(body, &one); err2 == nil && one.Code != "" {
			return []Country{one}, nil
		}
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	return countries, nil
}

func upstreamMessage(body []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fmt.Sprintf("catalog returned status %d", status)
}
