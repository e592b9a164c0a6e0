package artic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/artgrid/internal/domain"
)

const (
	// DefaultBaseURL is the public Art Institute of Chicago API
	DefaultBaseURL = "https://api.artic.edu/api/v1"

	// MaxPageSize is the largest limit the listing endpoint accepts
	MaxPageSize = 100

	// MaxResultWindow is how deep the listing endpoint pages: requests
	// with page*limit above it are refused
	MaxResultWindow = 10000

	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "artgrid (terminal client)"
	maxErrorBody     = 4096
)

// Client fetches artwork pages from the public API.
// It implements domain.ArtworkSource.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent sets the identifying agent string sent with every request
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new artwork API client
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPage returns the 1-based page of artworks with the given page size.
// Pages past the end of the collection come back empty with the real total.
func (c *Client) FetchPage(ctx context.Context, page, limit int) (domain.Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxPageSize {
		return domain.Page{}, fmt.Errorf("%w: %d (want 1-%d)", domain.ErrInvalidPageSize, limit, MaxPageSize)
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("fields", strings.Join(listFields, ","))

	body, err := c.doRequest(ctx, "/artworks", query)
	if err != nil {
		return domain.Page{}, err
	}

	resp, err := c.parseResponse(body)
	if err != nil {
		return domain.Page{}, err
	}

	return MapPage(resp, page, limit), nil
}

// doRequest performs a GET request and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("AIC-User-Agent", c.userAgent)

	c.logger.Debug("artic request", "url", reqURL)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	RequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.logger.Error("artic request failed", "error", err)
		RequestsTotal.WithLabelValues(string(ErrorTypeTransport)).Inc()
		return nil, &Error{Type: ErrorTypeTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error("artic request error", "status", resp.StatusCode, "body", string(raw))
		RequestsTotal.WithLabelValues(string(ErrorTypeStatus)).Inc()
		return nil, &Error{
			Type:       ErrorTypeStatus,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		RequestsTotal.WithLabelValues(string(ErrorTypeTransport)).Inc()
		return nil, &Error{Type: ErrorTypeTransport, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	return body, nil
}

// parseResponse decodes a listing body
func (c *Client) parseResponse(body []byte) (*ListResponse, error) {
	var resp ListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		RequestsTotal.WithLabelValues(string(ErrorTypeDecode)).Inc()
		return nil, &Error{Type: ErrorTypeDecode, Err: err}
	}
	RequestsTotal.WithLabelValues("ok").Inc()
	return &resp, nil
}

// errorMessage pulls the human readable part out of an API error body
func errorMessage(raw []byte) string {
	var apiErr ErrorResponse
	if err := json.Unmarshal(raw, &apiErr); err == nil {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		if apiErr.Error != "" {
			return apiErr.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
