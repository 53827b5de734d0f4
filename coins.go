package llamafi

import (
	"context"
	"strings"

	"github.com/agentstation/llamafi/pkg/endpoints"
)

// CoinID returns the "{chain}:{address}" identifier the coins API expects,
// e.g. CoinID("ethereum", "0xdF57...d87e1").
func CoinID(chain, address string) string {
	return chain + ":" + address
}

// joinCoins builds the comma-separated coins path segment.
func joinCoins(coins []string) string {
	return strings.Join(coins, ",")
}

// CurrentPrices returns the current prices of coins.
func (c *Client) CurrentPrices(ctx context.Context, coins ...string) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpCurrentPrices, endpoints.Params{"coins": joinCoins(coins)})
}

// HistoricalPrices returns the prices of coins at a unix timestamp.
func (c *Client) HistoricalPrices(ctx context.Context, timestamp int64, coins ...string) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpHistoricalPrices, endpoints.Params{
		"timestamp": timestamp,
		"coins":     joinCoins(coins),
	})
}

// PriceChart returns token prices at regular intervals.
func (c *Client) PriceChart(ctx context.Context, coins ...string) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpPriceChart, endpoints.Params{"coins": joinCoins(coins)})
}

// PercentageChange returns the percentage change in price of coins over time.
func (c *Client) PercentageChange(ctx context.Context, coins ...string) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpPercentageChange, endpoints.Params{"coins": joinCoins(coins)})
}

// FirstPrices returns the earliest price record of coins.
func (c *Client) FirstPrices(ctx context.Context, coins ...string) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpFirstPrices, endpoints.Params{"coins": joinCoins(coins)})
}

// Block returns the block closest to a unix timestamp on chain.
func (c *Client) Block(ctx context.Context, chain string, timestamp int64) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpBlock, endpoints.Params{
		"chain":     chain,
		"timestamp": timestamp,
	})
}
