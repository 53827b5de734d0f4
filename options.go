package llamafi

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/agentstation/llamafi/pkg/constants"
	"github.com/agentstation/llamafi/pkg/errors"
)

// HTTPDoer sends an HTTP request. *http.Client satisfies it, and tests can
// supply their own to mock the transport.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option is a function that configures a Client.
type Option func(*options) error

// options holds the configuration applied by New.
type options struct {
	httpClient HTTPDoer
	timeout    time.Duration
	rateLimit  float64
	rateBurst  int
	registerer prometheus.Registerer
	logger     *zerolog.Logger
	maxBody    int64
}

// defaults returns the zero-configuration options.
func defaults() *options {
	return &options{
		timeout: constants.DefaultHTTPTimeout,
		maxBody: constants.MaxResponseBytes,
	}
}

// apply applies opts in order and stops at the first error.
func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithHTTPClient sets the HTTP client used for every request. When set,
// WithTimeout has no effect; configure the timeout on the client itself.
func WithHTTPClient(client HTTPDoer) Option {
	return func(o *options) error {
		if client == nil {
			return errors.NewValidationError("http_client", nil, "cannot be nil")
		}
		o.httpClient = client
		return nil
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		if timeout <= 0 {
			return errors.NewValidationError("timeout", timeout, "must be positive")
		}
		o.timeout = timeout
		return nil
	}
}

// WithRateLimit limits the client to rps requests per second with the given
// burst. Calls wait for a token, honouring their context, before the request
// is sent. A zero rps disables the limiter.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *options) error {
		if rps < 0 {
			return errors.NewValidationError("rate_limit", rps, "cannot be negative")
		}
		o.rateLimit = rps
		o.rateBurst = burst
		return nil
	}
}

// WithMetrics registers call counters and latency histograms on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) error {
		if reg == nil {
			return errors.NewValidationError("metrics_registerer", nil, "cannot be nil")
		}
		o.registerer = reg
		return nil
	}
}

// WithLogger sets the logger used when the call context carries none.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithMaxResponseBytes caps how much of a response body is read. A larger
// body fails the call with errors.ErrResponseTooLarge instead of being cut.
func WithMaxResponseBytes(n int64) Option {
	return func(o *options) error {
		if n <= 0 {
			return errors.NewValidationError("max_response_bytes", n, "must be positive")
		}
		o.maxBody = n
		return nil
	}
}
