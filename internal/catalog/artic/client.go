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

	"github.com/mmcdole/gallery/internal/domain"
)

const defaultUserAgent = "gallery/1.0"

// Fields requested from /artworks; everything else is dropped server-side
var artworkFields = []string{
	"id",
	"title",
	"place_of_origin",
	"artist_display",
	"inscriptions",
	"date_start",
	"date_end",
}

// Client implements domain.PageRepository for the Art Institute of Chicago API
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the identifying user agent sent with every request
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates a new collection API client.
// No client-level timeout is set; callers bound requests through ctx.
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest performs a GET request and returns the body of a 200 response
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

	c.logger.Debug("catalog request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "error", err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, domain.ErrServerOffline
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("catalog request error", "status", resp.StatusCode, "body", string(body))
		return nil, statusError(resp.StatusCode, body)
	}

	return body, nil
}

// statusError builds an ErrUnexpectedStatus error, including the API's
// detail message when the body carries one
func statusError(code int, body []byte) error {
	var apiErr ErrorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Detail != "" {
		return fmt.Errorf("%w: %d: %s", domain.ErrUnexpectedStatus, code, apiErr.Detail)
	}
	return fmt.Errorf("%w: %d", domain.ErrUnexpectedStatus, code)
}

// GetPage returns one page of artworks and the collection total
func (c *Client) GetPage(ctx context.Context, pageNumber, limit int) (domain.Page, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(pageNumber))
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	query.Set("fields", strings.Join(artworkFields, ","))

	body, err := c.doRequest(ctx, "/artworks", query)
	if err != nil {
		return domain.Page{}, err
	}

	var resp ArtworksResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return domain.Page{}, fmt.Errorf("failed to parse response: %w", err)
	}

	page := MapPage(resp, pageNumber)
	c.logger.Debug("catalog page", "page", page.Number, "records", page.Len(), "total", page.Total)
	return page, nil
}
