// Package api fetches TFD metadata documents from Nexon's static open API.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"tfdsearch/internal/logging"
)

// Resource identifies one of the three upstream documents.
type Resource string

const (
	ResourceWeapon Resource = "weapon"
	ResourceStat   Resource = "stat"
	ResourceModule Resource = "module"
)

// Resources lists every document the tool mirrors, in refresh order.
var Resources = []Resource{ResourceWeapon, ResourceStat, ResourceModule}

// ErrNotModified is returned when the server answers 304 to a conditional
// GET; the caller's cached copy is still current.
var ErrNotModified = errors.New("resource not modified")

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Code int
	URL  string
	Body string // first KB of the response body, for diagnostics
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Code)
}

// Document is a fetched resource with its validator.
type Document struct {
	Resource Resource
	Body     []byte
	ETag     string
}

// Config holds client settings.
type Config struct {
	BaseURL   string
	Language  string
	Timeout   time.Duration
	UserAgent string
}

// DefaultConfig returns the production endpoint settings.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "https://open.api.nexon.com/static/tfd/meta",
		Language:  "en",
		Timeout:   30 * time.Second,
		UserAgent: "tfd-search",
	}
}

// Client fetches metadata documents.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a Client. A nil httpClient gets one built from the
// config timeout.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig().BaseURL
	}
	if cfg.Language == "" {
		cfg.Language = DefaultConfig().Language
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		log:        logging.Named("api"),
	}
}

// URL returns the document URL for a resource.
func (c *Client) URL(res Resource) string {
	return fmt.Sprintf("%s/%s/%s.json", c.cfg.BaseURL, c.cfg.Language, res)
}

// Fetch downloads a resource. A non-empty etag makes the request
// conditional; ErrNotModified means the cached copy is current.
func (c *Client) Fetch(ctx context.Context, res Resource, etag string) (*Document, error) {
	url := c.URL(res)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", res, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", res, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		c.log.Debug("not modified", zap.String("resource", string(res)))
		return nil, ErrNotModified
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &StatusError{Code: resp.StatusCode, URL: url, Body: string(snippet)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s body: %w", res, err)
	}

	c.log.Info("fetched resource",
		zap.String("resource", string(res)),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Document{
		Resource: res,
		Body:     body,
		ETag:     resp.Header.Get("ETag"),
	}, nil
}
