package llamafi

import (
	"context"

	"github.com/agentstation/llamafi/pkg/endpoints"
)

// Stablecoins lists all stablecoins along with their circulating amounts.
func (c *Client) Stablecoins(ctx context.Context, includePrices bool) (*Outcome, error) {
	params := endpoints.Params{}
	if includePrices {
		params["include_prices"] = true
	}
	return c.Call(ctx, endpoints.OpStablecoins, params)
}

// StablecoinCharts returns the historical mcap sum of all stablecoins.
// A non-zero stablecoinID restricts the chart to that stablecoin.
func (c *Client) StablecoinCharts(ctx context.Context, stablecoinID int) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpStablecoinCharts, stablecoinFilter(endpoints.Params{}, stablecoinID))
}

// ChainStablecoinCharts returns the historical mcap sum of all stablecoins on chain.
// A non-zero stablecoinID restricts the chart to that stablecoin.
func (c *Client) ChainStablecoinCharts(ctx context.Context, chain string, stablecoinID int) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpChainStablecoinCharts, stablecoinFilter(endpoints.Params{"chain": chain}, stablecoinID))
}

// Stablecoin returns the historical mcap and chain distribution of a stablecoin.
func (c *Client) Stablecoin(ctx context.Context, stablecoinID int) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpStablecoin, endpoints.Params{"stablecoin_id": stablecoinID})
}

// StablecoinChains returns the current mcap sum of all stablecoins on each chain.
func (c *Client) StablecoinChains(ctx context.Context) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpStablecoinChains, nil)
}

// StablecoinPrices returns the historical prices of all stablecoins.
func (c *Client) StablecoinPrices(ctx context.Context) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpStablecoinPrices, nil)
}

func stablecoinFilter(params endpoints.Params, stablecoinID int) endpoints.Params {
	if stablecoinID != 0 {
		params["stablecoin_id"] = stablecoinID
	}
	return params
}
