// Package client wraps the Transparency Data and Influence Explorer APIs.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/SanteonNL/transparencydata/types"
)

// DefaultURL is the hosted API.
const DefaultURL = "http://transparencydata.com/api/1.0/"

// Config is captured when a client is constructed and never changes after.
type Config struct {
	APIKey  string
	BaseURL string
	// Debug makes ResourceClient return the request URL without sending it.
	Debug bool
	// Timeout is applied to the default HTTP client when positive.
	Timeout time.Duration
	// HTTPClient overrides the default client built by NewHTTPClient.
	HTTPClient *http.Client
	// Logger receives transport logs of the default client. Nil disables them.
	Logger retryablehttp.LeveledLogger
}

// NewHTTPClient returns a client backed by retryablehttp that sends every
// request exactly once.
func NewHTTPClient(timeout time.Duration, logger retryablehttp.LeveledLogger) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = noRetry
	retryClient.Logger = logger
	if timeout > 0 {
		retryClient.HTTPClient.Timeout = timeout
	}
	return retryClient.StandardClient()
}

func noRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	return false, ctx.Err()
}

// requester holds what every API call shares: base URL, key and transport.
type requester struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func newRequester(cfg Config) (requester, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return requester{}, types.ErrMissingAPIKey
	}
	base := cfg.BaseURL
	if base == "" {
		base = DefaultURL
	}
	if _, err := url.Parse(base); err != nil {
		return requester{}, fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = NewHTTPClient(cfg.Timeout, cfg.Logger)
	}
	return requester{baseURL: base, apiKey: cfg.APIKey, httpClient: httpClient}, nil
}

// buildURL joins endpoint onto the base URL and appends query plus the API key.
func (r requester) buildURL(endpoint string, query url.Values) (string, error) {
	uri, err := url.JoinPath(r.baseURL, endpoint)
	if err != nil {
		return "", err
	}
	if query == nil {
		query = url.Values{}
	}
	query.Set("apikey", r.apiKey)
	return uri + "?" + query.Encode(), nil
}

// getJSON sends one GET and decodes the JSON body.
func (r requester) getJSON(ctx context.Context, endpoint, uri string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json; charset=utf-8")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &types.RemoteRequestError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.RemoteRequestError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to read response body: %w", err),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &types.RemoteRequestError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       bodyBytes,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	var data any
	if err := json.Unmarshal(bodyBytes, &data); err != nil {
		return nil, &types.InvalidResponseError{Endpoint: endpoint, Body: bodyBytes, Err: err}
	}
	return data, nil
}
