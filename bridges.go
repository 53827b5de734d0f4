package llamafi

import (
	"context"

	"github.com/agentstation/llamafi/pkg/endpoints"
)

// Bridges lists all bridges with summaries of recent volumes.
func (c *Client) Bridges(ctx context.Context, includeChains bool) (*Outcome, error) {
	params := endpoints.Params{}
	if includeChains {
		params["include_chains"] = true
	}
	return c.Call(ctx, endpoints.OpBridges, params)
}

// Bridge returns the volume summary of a bridge and its breakdown by chain.
func (c *Client) Bridge(ctx context.Context, bridgeID int) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpBridge, endpoints.Params{"bridge_id": bridgeID})
}

// BridgeVolume returns the historical volumes of a bridge on a chain.
func (c *Client) BridgeVolume(ctx context.Context, chainSlug string, bridgeID int) (*Outcome, error) {
	return c.Call(ctx, endpoints.OpBridgeVolume, endpoints.Params{
		"chain_slug": chainSlug,
		"bridge_id":  bridgeID,
	})
}

// BridgeDayStats returns 24h token and address stats for bridges on a chain
// on the day of timestamp. A non-zero bridgeID restricts the stats to that bridge.
func (c *Client) BridgeDayStats(ctx context.Context, timestamp int64, chainSlug string, bridgeID int) (*Outcome, error) {
	params := endpoints.Params{
		"timestamp":  timestamp,
		"chain_slug": chainSlug,
	}
	if bridgeID != 0 {
		params["bridge_id"] = bridgeID
	}
	return c.Call(ctx, endpoints.OpBridgeDayStats, params)
}
