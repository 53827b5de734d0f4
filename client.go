// Package llamafi provides a client for the public DefiLlama REST API.
// Every operation is defined once in the endpoints catalog and executed by a
// single dispatcher, so all calls share the same validation, logging, metrics
// and failure handling.
//
// A call either returns an Outcome or an error:
// - a 200 response yields a successful Outcome carrying the JSON body unchanged
// - any other status yields a failed Outcome whose Failure names the URL
// - invalid parameters, transport errors and undecodable bodies return an error
//
// Example usage:
//
//	client, err := llamafi.New(llamafi.WithRateLimit(5, 1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	outcome, err := client.BridgeVolume(ctx, "ethereum", 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !outcome.Succeeded() {
//	    log.Printf("call failed: %v", outcome.Failure())
//	}
//
//	var points []map[string]any
//	if err := outcome.Decode(&points); err != nil {
//	    log.Fatal(err)
//	}
package llamafi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/llamafi/internal/metrics"
	"github.com/agentstation/llamafi/internal/transport"
	"github.com/agentstation/llamafi/pkg/constants"
	"github.com/agentstation/llamafi/pkg/endpoints"
	"github.com/agentstation/llamafi/pkg/errors"
	"github.com/agentstation/llamafi/pkg/logging"
)

// Compile-time interface check to ensure proper implementation.
var _ Hooks = (*Client)(nil)

// Client executes catalog operations against the DefiLlama hosts.
// A Client is safe for concurrent use.
type Client struct {
	*hooks
	transport *transport.Client
	metrics   *metrics.Metrics
	logger    *zerolog.Logger
}

// New creates a Client configured by opts.
func New(opts ...Option) (*Client, error) {
	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}

	var doer transport.Doer = o.httpClient
	if doer == nil {
		doer = &http.Client{Timeout: o.timeout}
	}
	topts := []transport.Option{transport.WithDoer(doer), transport.WithMaxBodyBytes(o.maxBody)}
	if o.rateLimit > 0 {
		topts = append(topts, transport.WithLimiter(transport.NewLimiter(o.rateLimit, o.rateBurst)))
	}

	c := &Client{
		hooks:     newHooks(),
		transport: transport.New(topts...),
		logger:    o.logger,
	}

	if o.registerer != nil {
		m, err := metrics.New(o.registerer)
		if err != nil {
			return nil, errors.NewConfigError("metrics", "failed to register collectors", err)
		}
		c.metrics = m
	}

	return c, nil
}

// Resolve returns the URL op would request with params, without sending anything.
func (c *Client) Resolve(op endpoints.Operation, params endpoints.Params) (string, error) {
	return endpoints.Resolve(op, params)
}

// Call executes op with params.
//
// Parameters are validated before any network traffic; a validation problem
// is returned as *errors.ValidationError. A transport problem is returned as
// *errors.ResourceError and a 200 response whose body is not JSON as
// *errors.ParseError. Every received response otherwise produces an Outcome.
func (c *Client) Call(ctx context.Context, op endpoints.Operation, params endpoints.Params) (*Outcome, error) {
	d, err := endpoints.Lookup(op)
	if err != nil {
		return nil, err
	}
	url, err := d.Resolve(params)
	if err != nil {
		return nil, err
	}

	ctx = c.logContext(ctx, d, url)
	logger := logging.FromContext(ctx)

	c.triggerRequest(ctx, op, url)
	logger.Debug().Msg("Calling endpoint")

	start := time.Now()
	resp, err := c.transport.Get(ctx, url)
	if err != nil {
		c.metrics.Observe(string(op), metrics.OutcomeError, time.Since(start))
		logger.Debug().Err(err).Msg("Request failed")
		c.triggerError(ctx, op, url, err)
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		failure := errors.NewAPIError(string(op), url, resp.StatusCode, truncate(resp.Body, constants.MaxErrorBodyBytes))
		outcome := failed(failure)
		c.metrics.Observe(string(op), metrics.OutcomeFailure, resp.Duration)
		logger.Warn().
			Int("status", resp.StatusCode).
			Dur("duration", resp.Duration).
			Msg("Endpoint returned an unsuccessful status")
		c.triggerOutcome(ctx, outcome)
		return outcome, nil
	}

	if !json.Valid(resp.Body) {
		err := decodeError(url, resp.Body)
		c.metrics.Observe(string(op), metrics.OutcomeError, resp.Duration)
		logger.Debug().Err(err).Msg("Response body is not valid JSON")
		c.triggerError(ctx, op, url, err)
		return nil, err
	}

	outcome := succeeded(op, url, resp.Body)
	c.metrics.Observe(string(op), metrics.OutcomeSuccess, resp.Duration)
	logger.Debug().
		Int("bytes", len(resp.Body)).
		Dur("duration", resp.Duration).
		Msg("Endpoint call succeeded")
	c.triggerOutcome(ctx, outcome)
	return outcome, nil
}

// logContext makes sure ctx carries a logger annotated with the call.
// A logger already on ctx wins over the client's own.
func (c *Client) logContext(ctx context.Context, d *endpoints.Descriptor, url string) context.Context {
	if !logging.HasLogger(ctx) && c.logger != nil {
		ctx = logging.WithLogger(ctx, c.logger)
	}
	ctx = logging.WithOperation(ctx, string(d.Operation))
	ctx = logging.WithGroup(ctx, string(d.Group))
	return logging.WithEndpoint(ctx, url)
}

// decodeError describes why body is not valid JSON.
func decodeError(url string, body []byte) error {
	var probe json.RawMessage
	err := json.Unmarshal(body, &probe)
	if err == nil {
		err = errors.New("invalid JSON")
	}
	return errors.WrapParse("json", url, err)
}

func truncate(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
