// Package apisports provides the HTTP client for the API-Football v3 API.
//
// API-Football uses header-based auth (x-apisports-key), page-based
// pagination reported through a paging descriptor, and a response envelope
// that carries upstream errors next to a 2xx status.
package apisports

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/albapepper/impostor-data/internal/config"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultMaxPages = 50
	apiKeyHeader    = "x-apisports-key"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options controls how the client reaches the upstream API.
type Options struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxPages       int
	PartialResults bool // absorb page failures and keep what was collected
	HTTPClient     *http.Client
}

// OptionsFromConfig builds client options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		BaseURL:        cfg.APISportsBaseURL,
		APIKey:         cfg.APISportsKey,
		Timeout:        cfg.APISportsTimeout,
		MaxPages:       cfg.APISportsMaxPage,
		PartialResults: cfg.PartialResults,
	}
}

// Client is the HTTP client for API-Football endpoints.
type Client struct {
	httpClient httpDoer
	baseURL    string
	apiKey     string
	maxPages   int
	partial    bool
	logger     *slog.Logger
}

// NewClient creates an API-Football client. A missing API key is a
// configuration error and is reported before any request is built.
func NewClient(opts Options, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, &config.ConfigError{Key: "APISPORTS_KEY"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultAPISportsBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	var doer httpDoer = &http.Client{Timeout: timeout}
	if opts.HTTPClient != nil {
		doer = opts.HTTPClient
	}

	return &Client{
		httpClient: doer,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     opts.APIKey,
		maxPages:   maxPages,
		partial:    opts.PartialResults,
		logger:     logger,
	}, nil
}

// envelope is the common API-Football response wrapper.
type envelope struct {
	Response json.RawMessage `json:"response"`
	Paging   *paging         `json:"paging"`
	Errors   json.RawMessage `json:"errors"`
}

type paging struct {
	Current *int `json:"current"`
	Total   *int `json:"total"`
}

// done reports whether the page just fetched was the last one. A missing
// current falls back to the requested page and a missing total to current.
func (p *paging) done(requested int) bool {
	if p == nil {
		return true
	}
	current := requested
	if p.Current != nil {
		current = *p.Current
	}
	total := current
	if p.Total != nil {
		total = *p.Total
	}
	return current >= total
}

// items decodes the response array. A null or absent response is empty.
func (e *envelope) items() ([]json.RawMessage, error) {
	if len(e.Response) == 0 || string(e.Response) == "null" {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(e.Response, &items); err != nil {
		return nil, fmt.Errorf("decode response array: %w", err)
	}
	return items, nil
}

// protocolError returns a *ProtocolError when the envelope reports upstream
// errors. Both the empty array and the empty object forms mean "no errors".
func (e *envelope) protocolError(path string) error {
	msgs := upstreamMessages(e.Errors)
	if len(msgs) == 0 {
		return nil
	}
	return &ProtocolError{Path: path, Messages: msgs}
}

// get performs one authenticated GET request to an API-Football endpoint.
func (c *Client) get(ctx context.Context, path string, params url.Values) (*envelope, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("upstream error body", "path", path, "status", resp.StatusCode, "body", truncate(body, 200))
		return nil, &HTTPError{Path: path, StatusCode: resp.StatusCode, Body: truncate(body, 200)}
	}

	var result envelope
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &result, nil
}

// truncate returns a truncated string for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
