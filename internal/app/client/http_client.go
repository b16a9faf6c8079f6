package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"worldexplorer/internal/app/client/config"
	"worldexplorer/internal/domain/country"
)

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func newHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "WorldExplorer-Client/1.0",
	}
}

func (h *httpClient) SetToken(token string) {
	h.token = token
}

// Register creates an account; the server logs the new user straight in,
// so the payload carries a token.
func (h *httpClient) Register(ctx context.Context, name, email, password string) (*User, error) {
	body := map[string]string{"name": name, "email": email, "password": password}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/v1/users/register", body)
	if err != nil {
		return nil, err
	}

	var u User
	if err := h.parseResponse(resp, &u); err != nil {
		return nil, mapAuthError(err, false)
	}
	return &u, nil
}

func (h *httpClient) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/v1/users/login", body)
	if err != nil {
		return nil, err
	}

	var u User
	if err := h.parseResponse(resp, &u); err != nil {
		return nil, mapAuthError(err, true)
	}
	return &u, nil
}

func (h *httpClient) Profile(ctx context.Context) (*User, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/v1/users/profile", nil)
	if err != nil {
		return nil, err
	}

	var u User
	if err := h.parseResponse(resp, &u); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return &u, nil
}

// UpdateFavorites replaces the server-side favorite set and returns the
// stored copy.
func (h *httpClient) UpdateFavorites(ctx context.Context, codes []string) ([]string, error) {
	body := struct {
		Favorites []string `json:"favorites"`
	}{Favorites: codes}

	resp, err := h.doRequest(ctx, http.MethodPut, "/api/v1/users/favorites", body)
	if err != nil {
		return nil, err
	}

	var result struct {
		Favorites []string `json:"favorites"`
	}
	if err := h.parseResponse(resp, &result); err != nil {
		return nil, err
	}
	return result.Favorites, nil
}

func (h *httpClient) Countries(ctx context.Context) ([]country.Country, error) {
	return h.fetchCountries(ctx, "/api/v1/countries")
}

func (h *httpClient) CountriesByName(ctx context.Context, name string) ([]country.Country, error) {
	return h.fetchCountries(ctx, "/api/v1/countries/name/"+url.PathEscape(name))
}

func (h *httpClient) CountriesByRegion(ctx context.Context, region string) ([]country.Country, error) {
	return h.fetchCountries(ctx, "/api/v1/countries/region/"+url.PathEscape(region))
}

func (h *httpClient) CountryByCode(ctx context.Context, code string) (country.Country, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/v1/countries/code/"+url.PathEscape(code), nil)
	if err != nil {
		return country.Country{}, err
	}

	var c country.Country
	if err := h.parseResponse(resp, &c); err != nil {
		return country.Country{}, mapCatalogError(err)
	}
	return c, nil
}

func (h *httpClient) fetchCountries(ctx context.Context, path string) ([]country.Country, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var countries []country.Country
	if err := h.parseResponse(resp, &countries); err != nil {
		return nil, mapCatalogError(err)
	}
	return countries, nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	h.log.Debug("received response", "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		return &APIError{
			Status:  resp.StatusCode,
			Message: extractMessage(body),
		}
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}

	return nil
}

// extractMessage digs the human-readable message out of an error body,
// accepting both a plain {message} and huma's problem document {detail}.
func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Detail
}

// mapAuthError translates an auth endpoint failure into a typed error,
// keeping the server's message.
func mapAuthError(err error, login bool) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.Status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrValidation, apiErr.Message)
	case http.StatusConflict:
		return ErrEmailTaken
	case http.StatusUnauthorized, http.StatusNotFound:
		if login {
			return ErrInvalidCredentials
		}
		return err
	default:
		return err
	}
}

func mapCatalogError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return ErrNotFound
	}
	return err
}
