package llamafi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/llamafi/internal/metrics"
	"github.com/agentstation/llamafi/pkg/endpoints"
	"github.com/agentstation/llamafi/pkg/errors"
	"github.com/agentstation/llamafi/pkg/logging"
)

// roundTripFunc lets a function serve as an http.RoundTripper.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// mockTransport answers every request with status and body and records the URLs.
type mockTransport struct {
	mu     sync.Mutex
	status int
	body   string
	urls   []string
}

func (m *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	m.mu.Lock()
	m.urls = append(m.urls, req.URL.String())
	m.mu.Unlock()
	return &http.Response{
		StatusCode: m.status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(m.body)),
		Request:    req,
	}, nil
}

func (m *mockTransport) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.urls)
}

func newTestClient(t *testing.T, rt http.RoundTripper, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{
		WithHTTPClient(&http.Client{Transport: rt}),
		WithLogger(logging.NewNopLogger()),
	}, opts...)
	c, err := New(opts...)
	require.NoError(t, err)
	return c
}

// sampleParams supplies a value for every required parameter of d.
func sampleParams(d endpoints.Descriptor) endpoints.Params {
	params := endpoints.Params{}
	for _, p := range d.Params {
		if !p.Required {
			continue
		}
		switch p.Kind {
		case endpoints.KindInteger:
			params[p.Name] = 1648680149
		case endpoints.KindBool:
			params[p.Name] = true
		default:
			params[p.Name] = "ethereum"
		}
	}
	return params
}

func TestCallSuccessReturnsBodyUnchanged(t *testing.T) {
	body := "{\"a\": [1, 2.50, \"x\"], \"b\": null}\n"

	for _, d := range endpoints.All() {
		t.Run(string(d.Operation), func(t *testing.T) {
			rt := &mockTransport{status: http.StatusOK, body: body}
			c := newTestClient(t, rt)

			outcome, err := c.Call(context.Background(), d.Operation, sampleParams(d))
			require.NoError(t, err)
			require.True(t, outcome.Succeeded())
			assert.Equal(t, body, string(outcome.Payload()))
			assert.Nil(t, outcome.Failure())
			assert.NoError(t, outcome.Err())
			assert.Equal(t, d.Operation, outcome.Operation())
			assert.Equal(t, http.StatusOK, outcome.StatusCode())

			require.Equal(t, 1, rt.calls())
			assert.Equal(t, outcome.URL(), rt.urls[0])
			assert.True(t, strings.HasPrefix(outcome.URL(), d.Host+"/"))
		})
	}
}

func TestCallNotFoundNamesURL(t *testing.T) {
	for _, d := range endpoints.All() {
		t.Run(string(d.Operation), func(t *testing.T) {
			rt := &mockTransport{status: http.StatusNotFound, body: `{"message":"not found"}`}
			c := newTestClient(t, rt)

			params := sampleParams(d)
			want, err := c.Resolve(d.Operation, params)
			require.NoError(t, err)

			outcome, err := c.Call(context.Background(), d.Operation, params)
			require.NoError(t, err)
			require.False(t, outcome.Succeeded())
			assert.Nil(t, outcome.Payload())

			failure := outcome.Failure()
			require.NotNil(t, failure)
			assert.Contains(t, failure.Error(), want)
			assert.Equal(t, "failed api call on endpoint: "+want+" (status 404)", failure.Error())
			assert.Equal(t, http.StatusNotFound, failure.StatusCode)
			assert.Equal(t, `{"message":"not found"}`, string(failure.Body))
			assert.True(t, errors.IsNotFound(outcome.Err()))
			assert.True(t, errors.IsAPIError(outcome.Err()))
		})
	}
}

func TestCallResolvedURLs(t *testing.T) {
	tests := []struct {
		name   string
		call   func(c *Client) (*Outcome, error)
		expect string
	}{
		{
			name: "historical prices",
			call: func(c *Client) (*Outcome, error) {
				return c.HistoricalPrices(context.Background(), 1648680149,
					CoinID("ethereum", "0xdF574c24545E5FfEcb9a659c229253D4111d87e1"))
			},
			expect: "https://coins.llama.fi/prices/historical/1648680149/ethereum:0xdF574c24545E5FfEcb9a659c229253D4111d87e1",
		},
		{
			name: "bridge volume",
			call: func(c *Client) (*Outcome, error) {
				return c.BridgeVolume(context.Background(), "ethereum", 5)
			},
			expect: "https://bridges.llama.fi/bridgevolume/ethereum?id=5",
		},
		{
			name: "current prices with several coins",
			call: func(c *Client) (*Outcome, error) {
				return c.CurrentPrices(context.Background(), "ethereum:0xabc", "bsc:0xdef")
			},
			expect: "https://coins.llama.fi/prices/current/ethereum:0xabc,bsc:0xdef",
		},
		{
			name: "protocol",
			call: func(c *Client) (*Outcome, error) {
				return c.Protocol(context.Background(), "aave")
			},
			expect: "https://api.llama.fi/protocol/aave",
		},
		{
			name: "block",
			call: func(c *Client) (*Outcome, error) {
				return c.Block(context.Background(), "ethereum", 1648680149)
			},
			expect: "https://coins.llama.fi/block/ethereum/1648680149",
		},
		{
			name: "stablecoins with prices",
			call: func(c *Client) (*Outcome, error) {
				return c.Stablecoins(context.Background(), true)
			},
			expect: "https://stablecoins.llama.fi/stablecoins?includePrices=true",
		},
		{
			name: "stablecoins without prices",
			call: func(c *Client) (*Outcome, error) {
				return c.Stablecoins(context.Background(), false)
			},
			expect: "https://stablecoins.llama.fi/stablecoins",
		},
		{
			name: "stablecoin charts filtered",
			call: func(c *Client) (*Outcome, error) {
				return c.ChainStablecoinCharts(context.Background(), "Ethereum", 1)
			},
			expect: "https://stablecoins.llama.fi/stablecoincharts/Ethereum?stablecoin=1",
		},
		{
			name: "stablecoin charts unfiltered",
			call: func(c *Client) (*Outcome, error) {
				return c.StablecoinCharts(context.Background(), 0)
			},
			expect: "https://stablecoins.llama.fi/stablecoincharts/all",
		},
		{
			name: "pool chart",
			call: func(c *Client) (*Outcome, error) {
				return c.PoolChart(context.Background(), "747c1d2a-c668-4682-b9f9-296708a3dd90")
			},
			expect: "https://yields.llama.fi/chart/747c1d2a-c668-4682-b9f9-296708a3dd90",
		},
		{
			name: "bridge day stats",
			call: func(c *Client) (*Outcome, error) {
				return c.BridgeDayStats(context.Background(), 1667304000, "ethereum", 0)
			},
			expect: "https://bridges.llama.fi/bridgedaystats/1667304000/ethereum",
		},
		{
			name: "dex overview trimmed",
			call: func(c *Client) (*Outcome, error) {
				return c.DexOverview(context.Background(), ChartOptions{
					ExcludeTotalDataChart:          true,
					ExcludeTotalDataChartBreakdown: true,
				})
			},
			expect: "https://api.llama.fi/overview/dexs?excludeTotalDataChart=true&excludeTotalDataChartBreakdown=true",
		},
		{
			name: "fees summary",
			call: func(c *Client) (*Outcome, error) {
				return c.FeesSummary(context.Background(), "lyra")
			},
			expect: "https://api.llama.fi/summary/fees/lyra",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := &mockTransport{status: http.StatusOK, body: `{}`}
			c := newTestClient(t, rt)

			outcome, err := tt.call(c)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, outcome.URL())
			require.Equal(t, 1, rt.calls())
			assert.Equal(t, tt.expect, rt.urls[0])
		})
	}
}

func TestCallIsDeterministic(t *testing.T) {
	rt := &mockTransport{status: http.StatusOK, body: `{"tvl":123}`}
	c := newTestClient(t, rt)

	first, err := c.BridgeVolume(context.Background(), "ethereum", 5)
	require.NoError(t, err)
	second, err := c.BridgeVolume(context.Background(), "ethereum", 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, rt.calls())
}

func TestCallValidationSendsNothing(t *testing.T) {
	tests := []struct {
		name   string
		op     endpoints.Operation
		params endpoints.Params
		field  string
	}{
		{"missing path param", endpoints.OpProtocol, nil, "protocol"},
		{"empty path param", endpoints.OpProtocol, endpoints.Params{"protocol": "  "}, "protocol"},
		{"missing required query", endpoints.OpBridgeVolume, endpoints.Params{"chain_slug": "ethereum"}, "bridge_id"},
		{"unknown param", endpoints.OpChains, endpoints.Params{"chain": "ethereum"}, "chain"},
		{"bad integer", endpoints.OpBridge, endpoints.Params{"bridge_id": "five"}, "bridge_id"},
		{"unknown operation", endpoints.Operation("tvl-history"), nil, "operation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := &mockTransport{status: http.StatusOK, body: `{}`}
			c := newTestClient(t, rt)

			outcome, err := c.Call(context.Background(), tt.op, tt.params)
			require.Error(t, err)
			assert.Nil(t, outcome)
			assert.True(t, errors.IsValidationError(err))

			var verr *errors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Zero(t, rt.calls())
		})
	}
}

func TestCallInvalidJSON(t *testing.T) {
	rt := &mockTransport{status: http.StatusOK, body: `<html>maintenance</html>`}
	c := newTestClient(t, rt)

	outcome, err := c.Chains(context.Background())
	require.Error(t, err)
	assert.Nil(t, outcome)

	var perr *errors.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "json", perr.Format)
	assert.Equal(t, "https://api.llama.fi/chains", perr.File)
}

func TestCallOversizedBody(t *testing.T) {
	const limit = 16
	fits := strings.Repeat(" ", limit-3) + "[1]"
	over := " " + fits

	rt := &mockTransport{status: http.StatusOK, body: fits}
	c := newTestClient(t, rt, WithMaxResponseBytes(limit))
	outcome, err := c.Pools(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fits, string(outcome.Payload()))

	rt = &mockTransport{status: http.StatusOK, body: over}
	c = newTestClient(t, rt, WithMaxResponseBytes(limit))
	outcome, err = c.Pools(context.Background())
	require.Error(t, err)
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, errors.ErrResponseTooLarge)

	var perr *errors.ParseError
	assert.False(t, errors.As(err, &perr), "oversized body must not be reported as invalid JSON")
	var rerr *errors.ResourceError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "read", rerr.Operation)
	assert.Contains(t, rerr.ID, "https://yields.llama.fi/pools")
}

func TestCallTransportError(t *testing.T) {
	c := newTestClient(t, roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	}))

	outcome, err := c.Pools(context.Background())
	require.Error(t, err)
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	var rerr *errors.ResourceError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "send", rerr.Operation)
}

func TestCallServerErrorIsFailure(t *testing.T) {
	rt := &mockTransport{status: http.StatusBadGateway, body: "bad gateway"}
	c := newTestClient(t, rt)

	outcome, err := c.Charts(context.Background())
	require.NoError(t, err)
	require.False(t, outcome.Succeeded())
	assert.True(t, errors.IsProviderUnavailable(outcome.Err()))

	var v map[string]any
	assert.ErrorIs(t, outcome.Decode(&v), errors.ErrAPICall)
}

func TestOutcomeDecode(t *testing.T) {
	rt := &mockTransport{status: http.StatusOK, body: `{"coins":{"ethereum:0xabc":{"price":1.5}}}`}
	c := newTestClient(t, rt)

	outcome, err := c.CurrentPrices(context.Background(), "ethereum:0xabc")
	require.NoError(t, err)

	var prices struct {
		Coins map[string]struct {
			Price float64 `json:"price"`
		} `json:"coins"`
	}
	require.NoError(t, outcome.Decode(&prices))
	assert.InDelta(t, 1.5, prices.Coins["ethereum:0xabc"].Price, 1e-9)

	var wrong []string
	err = outcome.Decode(&wrong)
	var perr *errors.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestCallWithHTTPTestServer(t *testing.T) {
	var gotAccept, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/bridgevolume/ethereum", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"date":"1667260800","depositUSD":1}]`))
	}))
	defer srv.Close()

	// Route every host to the test server.
	redirect := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		req = req.Clone(req.Context())
		req.URL.Scheme = "http"
		req.URL.Host = strings.TrimPrefix(srv.URL, "http://")
		return http.DefaultTransport.RoundTrip(req)
	})
	c := newTestClient(t, redirect)

	outcome, err := c.BridgeVolume(context.Background(), "ethereum", 5)
	require.NoError(t, err)
	require.True(t, outcome.Succeeded())
	assert.JSONEq(t, `[{"date":"1667260800","depositUSD":1}]`, string(outcome.Payload()))
	assert.Equal(t, "application/json", gotAccept)
	assert.Empty(t, gotAuth)
}

func TestCallCancelledContext(t *testing.T) {
	c := newTestClient(t, roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return nil, req.Context().Err()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Protocols(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCallMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	status := http.StatusOK
	c := newTestClient(t, roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
			Request:    req,
		}, nil
	}), WithMetrics(reg))

	_, err := c.Chains(context.Background())
	require.NoError(t, err)
	status = http.StatusTooManyRequests
	outcome, err := c.Chains(context.Background())
	require.NoError(t, err)
	assert.True(t, errors.IsRateLimited(outcome.Err()))

	count, err := testutil.GatherAndCount(reg, metrics.RequestsMetricName)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	count, err = testutil.GatherAndCount(reg, metrics.RequestDurationMetricName)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// A second client on the same registry shares the collectors.
	_, err = New(WithMetrics(reg))
	assert.NoError(t, err)
}

type countingDoer struct {
	calls atomic.Int32
	next  HTTPDoer
}

func (d *countingDoer) Do(req *http.Request) (*http.Response, error) {
	d.calls.Add(1)
	return d.next.Do(req)
}

func TestCallRateLimitHonoursContext(t *testing.T) {
	rt := &mockTransport{status: http.StatusOK, body: `{}`}
	doer := &countingDoer{next: &http.Client{Transport: rt}}
	c, err := New(WithHTTPClient(doer), WithRateLimit(0.001, 1), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	// The first call takes the only token.
	_, err = c.Chains(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Chains(ctx)
	require.Error(t, err)

	var rerr *errors.ResourceError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "wait", rerr.Operation)
	assert.Equal(t, int32(1), doer.calls.Load())
}

func TestCallLogging(t *testing.T) {
	tl := logging.NewTestLogger(t)
	rt := &mockTransport{status: http.StatusNotFound, body: `{}`}
	c, err := New(WithHTTPClient(&http.Client{Transport: rt}), WithLogger(tl.Logger))
	require.NoError(t, err)

	_, err = c.Protocol(context.Background(), "aave")
	require.NoError(t, err)

	tl.AssertContains(t, `"operation":"protocol"`)
	tl.AssertContains(t, `"group":"tvl"`)
	tl.AssertContains(t, `"endpoint":"https://api.llama.fi/protocol/aave"`)
	tl.AssertContains(t, `"status":404`)
	tl.AssertContains(t, `"level":"warn"`)
}

func TestCallPrefersContextLogger(t *testing.T) {
	clientLog := logging.NewTestLogger(t)
	ctxLog := logging.NewTestLogger(t)
	rt := &mockTransport{status: http.StatusOK, body: `{}`}
	c, err := New(WithHTTPClient(&http.Client{Transport: rt}), WithLogger(clientLog.Logger))
	require.NoError(t, err)

	ctx := logging.WithLogger(context.Background(), ctxLog.Logger)
	_, err = c.Chains(ctx)
	require.NoError(t, err)

	assert.Zero(t, clientLog.Count())
	ctxLog.AssertContains(t, "Endpoint call succeeded")
}

func TestNewOptionErrors(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"nil http client", WithHTTPClient(nil)},
		{"zero timeout", WithTimeout(0)},
		{"negative rate", WithRateLimit(-1, 1)},
		{"nil registerer", WithMetrics(nil)},
		{"zero max response bytes", WithMaxResponseBytes(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.opt)
			assert.Nil(t, c)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
