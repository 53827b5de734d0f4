package llamafi

import (
	"context"

	"github.com/agentstation/llamafi/pkg/endpoints"
)

// Protocols lists all protocols on DefiLlama along with their current TVL.
func (c *Client) Protocols(ctx context.Context) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpProtocols, nil)
}

// Protocol returns the historical TVL of a protocol with token and chain breakdowns.
func (c *Client) Protocol(ctx context.Context, protocol string) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpProtocol, endpoints.Params{"protocol": protocol})
}

// Charts returns the historical TVL of DeFi on all chains.
func (c *Client) Charts(ctx context.Context) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpCharts, nil)
}

// ChainCharts returns the historical TVL of DeFi on one chain.
func (c *Client) ChainCharts(ctx context.Context, chain string) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpChainCharts, endpoints.Params{"chain": chain})
}

// ProtocolTVL returns the current TVL of a protocol as a bare number.
func (c *Client) ProtocolTVL(ctx context.Context, protocol string) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpProtocolTVL, endpoints.Params{"protocol": protocol})
}

// Chains returns the current TVL of every chain.
func (c *Client) Chains(ctx context.Context) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpChains, nil)
}
