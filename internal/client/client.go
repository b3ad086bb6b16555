package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"tmoapi/internal/api"
	"tmoapi/internal/config"
	"tmoapi/internal/render"
	"tmoapi/pkg/logging"
)

// DefaultUserAgent identifies tmoapi to the API unless overridden.
const DefaultUserAgent = "tmoapi-go"

// maxErrorBody bounds how much of a failed response is read for the message.
const maxErrorBody = 4096

// Client performs requests against the TMO API for one set of settings.
type Client struct {
	baseURL    string
	token      string
	database   string
	userAgent  string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserAgent sets the User-Agent header. Empty keeps the default.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithBaseURL overrides the environment's API root.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// New creates a Client from resolved settings.
func New(s *config.Settings, opts ...Option) *Client {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	c := &Client{
		baseURL:   s.Environment.BaseURL(),
		token:     s.Token,
		database:  s.Database,
		userAgent: DefaultUserAgent,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Get calls GET <base>/<path> and returns the envelope's Data normalized
// into a render.Value.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (render.Value, error) {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Token", c.token)
	req.Header.Set("Database", c.database)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	logging.Debug("Client", "GET %s (request %s)", endpoint, requestID)
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	logging.Debug("Client", "%s responded %d in %s", requestID, resp.StatusCode, time.Since(started).Round(time.Millisecond))

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, statusError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(err)
	}

	var env api.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, api.NewAPIError(fmt.Sprintf("invalid response from %s: %v", path, err), 0)
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return render.Null, nil
	}

	data, err := render.Decode(env.Data)
	if err != nil {
		return nil, api.NewAPIError(fmt.Sprintf("invalid data in response from %s: %v", path, err), 0)
	}
	if data == nil {
		return render.Null, nil
	}
	return data, nil
}

func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	msg := strings.TrimSpace(string(raw))
	var env api.Envelope
	if json.Unmarshal(raw, &env) == nil && env.ErrorMessage != "" {
		msg = env.ErrorMessage
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return api.NewAuthenticationError(msg, resp.StatusCode)
	}
	return api.NewAPIError(msg, resp.StatusCode)
}

func networkError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return api.NewNetworkError("request timed out", err)
	case errors.Is(err, context.Canceled):
		return api.NewNetworkError("request canceled", err)
	default:
		return api.NewNetworkError("request failed", err)
	}
}
