package llamafi

import (
	"context"

	"github.com/agentstation/llamafi/pkg/endpoints"
)

// FeesOverview lists all protocols with fees and revenue summaries.
func (c *Client) FeesOverview(ctx context.Context, opts ChartOptions) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpFeesOverview, opts.params(nil))
}

// ChainFeesOverview lists the protocols on a chain with fees and revenue summaries.
func (c *Client) ChainFeesOverview(ctx context.Context, chain string, opts ChartOptions) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpChainFeesOverview, opts.params(endpoints.Params{"chain": chain}))
}

// FeesSummary returns the fees and revenue summary of a protocol.
func (c *Client) FeesSummary(ctx context.Context, protocol string) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpFeesSummary, endpoints.Params{"protocol": protocol})
}
