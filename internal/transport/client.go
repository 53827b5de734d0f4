// Package transport performs the single HTTP round trip behind every llamafi
// operation: build a GET request, wait on the optional rate limiter, send it,
// and read the body in full.
package transport

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/agentstation/llamafi/pkg/constants"
	"github.com/agentstation/llamafi/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Doer is the subset of *http.Client the transport needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Waiter delays a request until it may proceed. *rate.Limiter satisfies it.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Duration   time.Duration
}

// Client sends GET requests.
type Client struct {
	http    Doer
	limiter Waiter
	maxBody int64
}

// Option configures a Client.
type Option func(*Client)

// WithDoer sets the HTTP client used for requests.
func WithDoer(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.http = d
		}
	}
}

// WithLimiter sets a limiter that every request waits on before it is sent.
func WithLimiter(w Waiter) Option {
	return func(c *Client) {
		c.limiter = w
	}
}

// WithMaxBodyBytes sets how many body bytes a response may carry.
// Values below one keep the default.
func WithMaxBodyBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBody = n
		}
	}
}

// NewLimiter builds a token bucket allowing rps requests per second.
// A burst below one is raised to constants.DefaultRateBurst.
func NewLimiter(rps float64, burst int) *rate.Limiter {
	if burst < 1 {
		burst = constants.DefaultRateBurst
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// New creates a new transport client.
func New(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: DefaultHTTPTimeout},
		maxBody: constants.MaxResponseBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs one GET request against url and returns the read response.
// Any status code is a successful round trip; callers decide what a non-200 means.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	req, err := NewRequest(ctx, url)
	if err != nil {
		return nil, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, errors.WrapResource("wait", "rate limiter", url, err)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapResource("send", "request", "GET "+url, err)
	}

	body, err := ReadBody(resp, c.maxBody)
	if err != nil {
		return nil, errors.WrapResource("read", "response body", "GET "+url, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		Duration:   time.Since(start),
	}, nil
}
