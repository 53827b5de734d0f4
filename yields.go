package llamafi

import (
	"context"

	"github.com/agentstation/llamafi/pkg/endpoints"
)

// Pools returns the latest data for all yield pools.
func (c *Client) Pools(ctx context.Context) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpPools, nil)
}

// PoolChart returns the historical APY and TVL of a pool.
func (c *Client) PoolChart(ctx context.Context, pool string) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpPoolChart, endpoints.Params{"pool": pool})
}
