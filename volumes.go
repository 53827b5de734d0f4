package llamafi

import (
	"context"

	"github.com/agentstation/llamafi/pkg/endpoints"
)

// ChartOptions trims the chart arrays from overview and summary responses.
// The zero value requests everything.
type ChartOptions struct {
	ExcludeTotalDataChart          bool
	ExcludeTotalDataChartBreakdown bool
}

// params adds the set flags to p.
func (o ChartOptions) params(p endpoints.Params) endpoints.Params {
	if p == nil {
		p = endpoints.Params{}
	}
	if o.ExcludeTotalDataChart {
		p["exclude_total_data_chart"] = true
	}
	if o.ExcludeTotalDataChartBreakdown {
		p["exclude_total_data_chart_breakdown"] = true
	}
	return p
}

// DexOverview lists all dexs with volume summaries and historical data.
func (c *Client) DexOverview(ctx context.Context, opts ChartOptions) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpDexOverview, opts.params(nil))
}

// ChainDexOverview lists the dexs on a chain with volume summaries and historical data.
func (c *Client) ChainDexOverview(ctx context.Context, chain string, opts ChartOptions) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpChainDexOverview, opts.params(endpoints.Params{"chain": chain}))
}

// DexSummary returns the volume summary and historical data of a dex.
func (c *Client) DexSummary(ctx context.Context, protocol string, opts ChartOptions) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpDexSummary, opts.params(endpoints.Params{"protocol": protocol}))
}

// OptionsOverview lists all options dexs with volume summaries and historical data.
func (c *Client) OptionsOverview(ctx context.Context, opts ChartOptions) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpOptionsOverview, opts.params(nil))
}

// ChainOptionsOverview lists the options dexs on a chain.
func (c *Client) ChainOptionsOverview(ctx context.Context, chain string, opts ChartOptions) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpChainOptionsOverview, opts.params(endpoints.Params{"chain": chain}))
}

// OptionsSummary returns the volume summary and historical data of an options dex.
func (c *Client) OptionsSummary(ctx context.Context, protocol string) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpOptionsSummary, endpoints.Params{"protocol": protocol})
}
