package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/llamafi/pkg/endpoints"
)

func TestGroupTitle(t *testing.T) {
	assert.Equal(t, "TVL", GroupTitle(endpoints.GroupTVL))
	assert.Equal(t, "Stablecoins", GroupTitle(endpoints.GroupStablecoins))
	assert.Equal(t, "Fees", GroupTitle(endpoints.GroupFees))
}

func TestEndpointsToTableData(t *testing.T) {
	descs := endpoints.ForGroup(endpoints.GroupBridges)

	data := EndpointsToTableData(descs, false)
	assert.Equal(t, []string{"Group", "Operation", "URL"}, data.Headers)
	require.Len(t, data.Rows, len(descs))
	assert.Equal(t, []string{"Bridges", "bridges", "https://bridges.llama.fi/bridges?[includeChains={include_chains}]"}, data.Rows[0])

	wide := EndpointsToTableData(descs, true)
	assert.Len(t, wide.Headers, 5)
	assert.Equal(t, "chain_slug, bridge_id", wide.Rows[2][3])
}

func TestParamsToTableData(t *testing.T) {
	d, err := endpoints.Lookup(endpoints.OpBridgeDayStats)
	require.NoError(t, err)

	data := ParamsToTableData(*d)
	require.Len(t, data.Rows, 3)
	assert.Equal(t, []string{"bridge_id", "query", "integer", "no"}, data.Rows[2][:4])
	assert.Len(t, data.ColumnAlignment, len(data.Headers))
}

func TestFormatParams(t *testing.T) {
	assert.Equal(t, "-", FormatParams(nil))

	d, err := endpoints.Lookup(endpoints.OpChainDexOverview)
	require.NoError(t, err)
	assert.Equal(t, "chain, [exclude_total_data_chart], [exclude_total_data_chart_breakdown]", FormatParams(d.Params))
}
