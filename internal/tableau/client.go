package tableau

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/odpf/salt/log"
	"golang.org/x/time/rate"
)

const (
	DefaultAPIVersion = "3.4"
	// serverinfo is served by every version since 2.4
	discoveryAPIVersion = "2.4"

	defaultPageSize          = 100
	defaultRequestsPerSecond = 10

	authHeader = "X-Tableau-Auth"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements analytics.Service over the Tableau REST API.
type Client struct {
	httpClient HTTPClient
	logger     log.Logger
	limiter    *rate.Limiter

	apiVersion string
	pageSize   int
}

type Option func(*Client)

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithLogger(logger log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithAPIVersion pins the REST API version and skips discovery.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.apiVersion = version
	}
}

func WithRequestsPerSecond(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

func WithPageSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		logger:     log.NewNoop(),
		limiter:    rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), 1),
		pageSize:   defaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	method string
	url    string
	token  string
	body   interface{}
}

// invoke sends the request and decodes a successful response into result when it is not nil.
func (c *Client) invoke(ctx context.Context, r request, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader = http.NoBody
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("failed to encode request for %s: %w", r.url, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, r.url, reader)
	if err != nil {
		return fmt.Errorf("failed to build http request for %s due to %w", r.url, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set(authHeader, r.token)
	}

	c.logger.Debug("sending request", "method", r.method, "url", r.url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s due to %w", r.url, err)
	}
	defer resp.Body.Close()
	c.logger.Debug("received response", "status", resp.StatusCode, "url", r.url)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return parseError(resp)
	}
	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("error decoding response from %s: %w", r.url, err)
	}
	return nil
}

func endpoint(server, version string, segments ...string) string {
	base := strings.TrimRight(server, "/")
	return base + "/api/" + version + "/" + strings.Join(segments, "/")
}
