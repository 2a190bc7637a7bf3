package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/persona-labs/personagen-cli/internal/core/domain"
	"github.com/persona-labs/personagen-cli/internal/logger"
)

// Default configuration values.
const (
	// DefaultBaseURL is the authenticated Reddit data API endpoint.
	DefaultBaseURL = "https://oauth.reddit.com"

	// DefaultTokenURL is the application-only OAuth2 token endpoint.
	DefaultTokenURL = "https://www.reddit.com/api/v1/access_token"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Config holds configuration for the Reddit API client.
type Config struct {
	// ClientID is the Reddit application client id (required).
	ClientID string

	// ClientSecret is the Reddit application client secret (required).
	ClientSecret string

	// UserAgent identifies the tool to the API (required by Reddit policy).
	UserAgent string

	// BaseURL is the data API endpoint (default: https://oauth.reddit.com).
	BaseURL string

	// TokenURL is the OAuth2 token endpoint. Overridable for tests.
	TokenURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Client is an authenticated, rate-limited Reddit API client.
type Client struct {
	http        *http.Client
	baseURL     string
	userAgent   string
	rateLimiter *RateLimiter
}

// userAgentTransport injects the User-Agent header on every request,
// including the OAuth2 token exchange.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(clone)
}

// NewClient creates a new Reddit API client using application-only OAuth2
// (client credentials grant).
func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("%w: reddit client id and secret are required", domain.ErrAuthInvalid)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = domain.DefaultAppSettings().Reddit.UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	ccfg := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	// Route the token exchange through the same UA-setting transport;
	// Reddit rejects token requests with a default user agent.
	base := &http.Client{
		Transport: &userAgentTransport{base: http.DefaultTransport, userAgent: cfg.UserAgent},
		Timeout:   cfg.Timeout,
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

	authed := ccfg.Client(ctx)
	authed.Timeout = cfg.Timeout

	return &Client{
		http:        authed,
		baseURL:     cfg.BaseURL,
		userAgent:   cfg.UserAgent,
		rateLimiter: NewRateLimiter(),
	}, nil
}

// listUserContent fetches one listing page of a user's content.
// section is "submitted" or "comments".
func (c *Client) listUserContent(ctx context.Context, accountID, section string, limit int) (*listing, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/user/%s/%s?%s",
		c.baseURL,
		url.PathEscape(accountID),
		section,
		url.Values{
			"limit":    {fmt.Sprintf("%d", limit)},
			"sort":     {"new"},
			"raw_json": {"1"},
		}.Encode(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	logger.Debug("GET %s", endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	c.rateLimiter.UpdateFromResponse(resp)

	if err := statusError(resp.StatusCode); err != nil {
		return nil, fmt.Errorf("%w: %s returned status %d", err, section, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var page listing
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("%w: decode listing: %w", domain.ErrProviderUnavailable, err)
	}

	return &page, nil
}

// statusError maps an HTTP status to a typed domain error, nil for 200.
func statusError(status int) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusNotFound:
		return domain.ErrAccountNotFound
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return domain.ErrAuthInvalid
	case status == http.StatusTooManyRequests:
		return domain.ErrRateLimited
	default:
		return domain.ErrProviderUnavailable
	}
}
