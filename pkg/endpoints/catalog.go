package endpoints

import (
	"github.com/agentstation/llamafi/pkg/constants"
	"github.com/agentstation/llamafi/pkg/errors"
)

// TVL operations.
const (
	OpProtocols   Operation = "protocols"
	OpProtocol    Operation = "protocol"
	OpCharts      Operation = "charts"
	OpChainCharts Operation = "chain-charts"
	OpProtocolTVL Operation = "protocol-tvl"
	OpChains      Operation = "chains"
)

// Coins operations.
const (
	OpCurrentPrices    Operation = "current-prices"
	OpHistoricalPrices Operation = "historical-prices"
	OpPriceChart       Operation = "price-chart"
	OpPercentageChange Operation = "percentage-change"
	OpFirstPrices      Operation = "first-prices"
	OpBlock            Operation = "block"
)

// Stablecoins operations.
const (
	OpStablecoins           Operation = "stablecoins"
	OpStablecoinCharts      Operation = "stablecoin-charts"
	OpChainStablecoinCharts Operation = "chain-stablecoin-charts"
	OpStablecoin            Operation = "stablecoin"
	OpStablecoinChains      Operation = "stablecoin-chains"
	OpStablecoinPrices      Operation = "stablecoin-prices"
)

// Yields operations.
const (
	OpPools     Operation = "pools"
	OpPoolChart Operation = "pool-chart"
)

// Bridges operations.
const (
	OpBridges        Operation = "bridges"
	OpBridge         Operation = "bridge"
	OpBridgeVolume   Operation = "bridge-volume"
	OpBridgeDayStats Operation = "bridge-day-stats"
)

// Volumes operations.
const (
	OpDexOverview          Operation = "dex-overview"
	OpChainDexOverview     Operation = "chain-dex-overview"
	OpDexSummary           Operation = "dex-summary"
	OpOptionsOverview      Operation = "options-overview"
	OpChainOptionsOverview Operation = "chain-options-overview"
	OpOptionsSummary       Operation = "options-summary"
)

// Fees operations.
const (
	OpFeesOverview      Operation = "fees-overview"
	OpChainFeesOverview Operation = "chain-fees-overview"
	OpFeesSummary       Operation = "fees-summary"
)

func pathString(name, description string) Param {
	return Param{Name: name, Key: name, In: PathParam, Kind: KindString, Required: true, Description: description}
}

func pathInteger(name, description string) Param {
	return Param{Name: name, Key: name, In: PathParam, Kind: KindInteger, Required: true, Description: description}
}

func query(name, key string, kind ParamKind, required bool, description string) Param {
	return Param{Name: name, Key: key, In: QueryParam, Kind: kind, Required: required, Description: description}
}

var (
	protocolParam  = pathString("protocol", "protocol slug, e.g. aave")
	chainParam     = pathString("chain", "chain name, e.g. Ethereum")
	coinsParam     = pathString("coins", "comma-separated {chain}:{address} list, e.g. ethereum:0xdF57...d87e1")
	timestampParam = pathInteger("timestamp", "unix timestamp in seconds")
	chainSlugParam = pathString("chain_slug", "chain slug, e.g. ethereum")

	// dimensionFlags trim the large chart arrays from overview responses
	dimensionFlags = []Param{
		query("exclude_total_data_chart", "excludeTotalDataChart", KindBool, false, "omit the aggregated chart"),
		query("exclude_total_data_chart_breakdown", "excludeTotalDataChartBreakdown", KindBool, false, "omit the per-protocol chart breakdown"),
	}
)

func withDimensionFlags(params ...Param) []Param {
	return append(params, dimensionFlags...)
}

// catalog is the descriptor table in listing order.
var catalog = []Descriptor{
	// TVL
	{Operation: OpProtocols, Group: GroupTVL, Host: constants.TVLHost, Path: "/protocols",
		Summary: "List all protocols with their current TVL"},
	{Operation: OpProtocol, Group: GroupTVL, Host: constants.TVLHost, Path: "/protocol/{protocol}",
		Summary: "Historical TVL of a protocol with token and chain breakdowns",
		Params:  []Param{protocolParam}},
	{Operation: OpCharts, Group: GroupTVL, Host: constants.TVLHost, Path: "/charts",
		Summary: "Historical TVL of DeFi on all chains"},
	{Operation: OpChainCharts, Group: GroupTVL, Host: constants.TVLHost, Path: "/charts/{chain}",
		Summary: "Historical TVL of DeFi on one chain",
		Params:  []Param{chainParam}},
	{Operation: OpProtocolTVL, Group: GroupTVL, Host: constants.TVLHost, Path: "/tvl/{protocol}",
		Summary: "Current TVL of a protocol",
		Params:  []Param{protocolParam}},
	{Operation: OpChains, Group: GroupTVL, Host: constants.TVLHost, Path: "/chains",
		Summary: "Current TVL of every chain"},

	// Coins
	{Operation: OpCurrentPrices, Group: GroupCoins, Host: constants.CoinsHost, Path: "/prices/current/{coins}",
		Summary: "Current prices of tokens by contract address",
		Params:  []Param{coinsParam}},
	{Operation: OpHistoricalPrices, Group: GroupCoins, Host: constants.CoinsHost, Path: "/prices/historical/{timestamp}/{coins}",
		Summary: "Prices of tokens by contract address at a timestamp",
		Params:  []Param{timestampParam, coinsParam}},
	{Operation: OpPriceChart, Group: GroupCoins, Host: constants.CoinsHost, Path: "/chart/{coins}",
		Summary: "Token prices at regular intervals",
		Params:  []Param{coinsParam}},
	{Operation: OpPercentageChange, Group: GroupCoins, Host: constants.CoinsHost, Path: "/percentage/{coins}",
		Summary: "Percentage change in price over time",
		Params:  []Param{coinsParam}},
	{Operation: OpFirstPrices, Group: GroupCoins, Host: constants.CoinsHost, Path: "/prices/first/{coins}",
		Summary: "Earliest timestamp price record for coins",
		Params:  []Param{coinsParam}},
	{Operation: OpBlock, Group: GroupCoins, Host: constants.CoinsHost, Path: "/block/{chain}/{timestamp}",
		Summary: "Closest block to a timestamp on a chain",
		Params:  []Param{chainParam, timestampParam}},

	// Stablecoins
	{Operation: OpStablecoins, Group: GroupStablecoins, Host: constants.StablecoinsHost, Path: "/stablecoins",
		Summary: "List stablecoins with their circulating amounts",
		Params:  []Param{query("include_prices", "includePrices", KindBool, false, "include current prices")}},
	{Operation: OpStablecoinCharts, Group: GroupStablecoins, Host: constants.StablecoinsHost, Path: "/stablecoincharts/all",
		Summary: "Historical mcap sum of all stablecoins",
		Params:  []Param{query("stablecoin_id", "stablecoin", KindInteger, false, "restrict to one stablecoin")}},
	{Operation: OpChainStablecoinCharts, Group: GroupStablecoins, Host: constants.StablecoinsHost, Path: "/stablecoincharts/{chain}",
		Summary: "Historical mcap sum of all stablecoins on a chain",
		Params:  []Param{chainParam, query("stablecoin_id", "stablecoin", KindInteger, false, "restrict to one stablecoin")}},
	{Operation: OpStablecoin, Group: GroupStablecoins, Host: constants.StablecoinsHost, Path: "/stablecoin/{stablecoin_id}",
		Summary: "Historical mcap and chain distribution of a stablecoin",
		Params:  []Param{pathInteger("stablecoin_id", "stablecoin ID, e.g. 1 for USDT")}},
	{Operation: OpStablecoinChains, Group: GroupStablecoins, Host: constants.StablecoinsHost, Path: "/stablecoinchains",
		Summary: "Current mcap sum of all stablecoins on each chain"},
	{Operation: OpStablecoinPrices, Group: GroupStablecoins, Host: constants.StablecoinsHost, Path: "/stablecoinprices",
		Summary: "Historical prices of all stablecoins"},

	// Yields
	{Operation: OpPools, Group: GroupYields, Host: constants.YieldsHost, Path: "/pools",
		Summary: "Latest data for all pools"},
	{Operation: OpPoolChart, Group: GroupYields, Host: constants.YieldsHost, Path: "/chart/{pool}",
		Summary: "Historical APY and TVL of a pool",
		Params:  []Param{pathString("pool", "pool ID from the pools listing")}},

	// Bridges
	{Operation: OpBridges, Group: GroupBridges, Host: constants.BridgesHost, Path: "/bridges",
		Summary: "List all bridges with summaries of recent volumes",
		Params:  []Param{query("include_chains", "includeChains", KindBool, false, "include per-chain volume breakdowns")}},
	{Operation: OpBridge, Group: GroupBridges, Host: constants.BridgesHost, Path: "/bridge/{bridge_id}",
		Summary: "Summary of bridge volume and volume breakdown by chain",
		Params:  []Param{pathInteger("bridge_id", "bridge ID from the bridges listing")}},
	{Operation: OpBridgeVolume, Group: GroupBridges, Host: constants.BridgesHost, Path: "/bridgevolume/{chain_slug}",
		Summary: "Historical volumes for a bridge on a chain",
		Params:  []Param{chainSlugParam, query("bridge_id", "id", KindInteger, true, "bridge ID from the bridges listing")}},
	{Operation: OpBridgeDayStats, Group: GroupBridges, Host: constants.BridgesHost, Path: "/bridgedaystats/{timestamp}/{chain_slug}",
		Summary: "24h token and address stats for bridges on a chain",
		Params:  []Param{timestampParam, chainSlugParam, query("bridge_id", "id", KindInteger, false, "restrict to one bridge")}},

	// Volumes
	{Operation: OpDexOverview, Group: GroupVolumes, Host: constants.TVLHost, Path: "/overview/dexs",
		Summary: "All dexs with volume summaries and historical data",
		Params:  withDimensionFlags()},
	{Operation: OpChainDexOverview, Group: GroupVolumes, Host: constants.TVLHost, Path: "/overview/dexs/{chain}",
		Summary: "Dexs on a chain with volume summaries and historical data",
		Params:  withDimensionFlags(chainParam)},
	{Operation: OpDexSummary, Group: GroupVolumes, Host: constants.TVLHost, Path: "/summary/dexs/{protocol}",
		Summary: "Volume summary and historical data of a dex",
		Params:  withDimensionFlags(protocolParam)},
	{Operation: OpOptionsOverview, Group: GroupVolumes, Host: constants.TVLHost, Path: "/overview/options",
		Summary: "All options dexs with volume summaries and historical data",
		Params:  withDimensionFlags()},
	{Operation: OpChainOptionsOverview, Group: GroupVolumes, Host: constants.TVLHost, Path: "/overview/options/{chain}",
		Summary: "Options dexs on a chain with volume summaries and historical data",
		Params:  withDimensionFlags(chainParam)},
	{Operation: OpOptionsSummary, Group: GroupVolumes, Host: constants.TVLHost, Path: "/summary/options/{protocol}",
		Summary: "Volume summary and historical data of an options dex",
		Params:  []Param{protocolParam}},

	// Fees
	{Operation: OpFeesOverview, Group: GroupFees, Host: constants.TVLHost, Path: "/overview/fees",
		Summary: "All protocols with fees and revenue summaries",
		Params:  withDimensionFlags()},
	{Operation: OpChainFeesOverview, Group: GroupFees, Host: constants.TVLHost, Path: "/overview/fees/{chain}",
		Summary: "Protocols on a chain with fees and revenue summaries",
		Params:  withDimensionFlags(chainParam)},
	{Operation: OpFeesSummary, Group: GroupFees, Host: constants.TVLHost, Path: "/summary/fees/{protocol}",
		Summary: "Fees and revenue summary of a protocol",
		Params:  []Param{protocolParam}},
}

var (
	byOperation = make(map[Operation]*Descriptor, len(catalog))
	groups      []Group
)

func init() {
	seen := make(map[Group]bool)
	for i := range catalog {
		d := &catalog[i]
		if _, dup := byOperation[d.Operation]; dup {
			panic("endpoints: duplicate operation " + string(d.Operation))
		}
		byOperation[d.Operation] = d
		if !seen[d.Group] {
			seen[d.Group] = true
			groups = append(groups, d.Group)
		}
	}
}

// Lookup returns the descriptor for op. The descriptor is shared and must not be modified.
func Lookup(op Operation) (*Descriptor, error) {
	d, ok := byOperation[op]
	if !ok {
		return nil, errors.NewValidationError("operation", string(op), "unknown operation "+string(op))
	}
	return d, nil
}

// ParseOperation converts a name to a known Operation.
func ParseOperation(name string) (Operation, error) {
	d, err := Lookup(Operation(name))
	if err != nil {
		return "", err
	}
	return d.Operation, nil
}

// All returns copies of every descriptor in catalog order.
func All() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}

// Operations returns every operation in catalog order.
func Operations() []Operation {
	ops := make([]Operation, len(catalog))
	for i := range catalog {
		ops[i] = catalog[i].Operation
	}
	return ops
}

// Groups returns the groups in catalog order.
func Groups() []Group {
	out := make([]Group, len(groups))
	copy(out, groups)
	return out
}

// ForGroup returns copies of the descriptors in g.
func ForGroup(g Group) []Descriptor {
	var out []Descriptor
	for _, d := range catalog {
		if d.Group == g {
			out = append(out, d)
		}
	}
	return out
}
