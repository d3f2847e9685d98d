package dhis2

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Default request timeout. DHIS2 servers can be slow, and async operations
// may take several minutes to submit.
const defaultTimeout = 10 * time.Minute

// Config holds the connection details for a DHIS2 instance.
type Config struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration // per-request timeout, defaults to 10 minutes
}

// Client is a DHIS2 web API client. Request and response bodies are in JSON
// format. Methods are safe for concurrent use; the underlying connection
// pool and credentials are read-only after construction.
type Client struct {
	config Config
	http   *resty.Client
	log    zerolog.Logger
}

// NewClient creates a new DHIS2 API client for the given configuration.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	client := &Client{
		config: config,
		log:    zerolog.Nop(),
	}

	client.http = resty.New().
		SetBaseURL(config.BaseURL).
		SetHeader("Accept", "application/json").
		SetBasicAuth(config.Username, config.Password).
		SetTimeout(config.Timeout).
		SetRetryCount(3).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Retry on 429 (Too Many Requests) and 5xx server errors
			return r.StatusCode() == http.StatusTooManyRequests ||
				(r.StatusCode() >= 500 && r.StatusCode() <= 504)
		})

	return client, nil
}

// WithLogger attaches a logger used for request-level debug logging.
func (c *Client) WithLogger(log zerolog.Logger) *Client {
	c.log = log
	return c
}

// BaseURL returns the base URL of the configuration.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Username returns the username of the configuration.
func (c *Client) Username() string {
	return c.config.Username
}

// apiPath builds an API path relative to the base URL.
func apiPath(parts ...string) string {
	return "api/" + strings.Join(parts, "/")
}

// getJSON performs a GET request against the given API path and decodes the
// response body into out. A nil out discards the body.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	req := c.http.R().SetContext(ctx)
	if params != nil {
		req.SetQueryParamsFromValues(params)
	}

	c.log.Debug().Str("method", http.MethodGet).Str("path", path).Msg("DHIS2 API request")

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if err := errorFromStatus(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// writeJSON performs a POST, PUT or DELETE request with an optional JSON body
// and decodes the response into out. When out implements httpResponse, the
// HTTP status code and headers of the response are recorded on it.
func (c *Client) writeJSON(ctx context.Context, method, path string, params url.Values, body, out interface{}) error {
	req := c.http.R().SetContext(ctx)
	if params != nil {
		req.SetQueryParamsFromValues(params)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("DHIS2 API request")

	var resp *resty.Response
	var err error
	switch method {
	case http.MethodPost:
		resp, err = req.Post(path)
	case http.MethodPut:
		resp, err = req.Put(path)
	case http.MethodDelete:
		resp, err = req.Delete(path)
	default:
		return fmt.Errorf("unsupported method: %s", method)
	}
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if err := errorFromStatus(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if h, ok := out.(httpResponse); ok {
		h.setHTTPResponse(resp.StatusCode(), resp.Header())
	}
	return nil
}

// head performs a HEAD request and returns the response status code.
func (c *Client) head(ctx context.Context, path string) (int, error) {
	resp, err := c.http.R().SetContext(ctx).Head(path)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	return resp.StatusCode(), nil
}

// errorFromStatus maps the error-triggering status codes (401, 403, 404) to
// a *ClientError carrying the code and server message. All other statuses
// are treated as success and left to response decoding.
func errorFromStatus(resp *resty.Response) error {
	code := resp.StatusCode()
	if code != http.StatusUnauthorized && code != http.StatusForbidden && code != http.StatusNotFound {
		return nil
	}

	message := resp.Status()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		message = body.Message
	}

	return &ClientError{StatusCode: code, Message: message}
}
