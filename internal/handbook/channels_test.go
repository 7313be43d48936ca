package handbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractIndividualByChannel(t *testing.T) {
	g := make(Grid, 8)
	for i := range g {
		g[i] = make([]string, 26)
	}
	g[5][0] = "1"
	g[5][1] = "SBI Life Insurance Company Ltd"
	g[5][2] = "1000"  // Individual Agents policies
	g[5][3] = "25.5"  // Individual Agents premium
	g[5][20] = "40"   // Online policies
	// A share row follows each insurer with no serial number.
	g[6][1] = "Share (%)"
	g[6][2] = "12.5"
	g[7][0] = "2"
	g[7][1] = "Private Total"
	g[7][2] = "9999"

	facts := ExtractIndividualByChannel(g, newStd())
	require.Len(t, facts, 3, "share rows and aggregate rows must not emit")

	assert.Equal(t, Fact{
		Insurer:             "SBI Life",
		Year:                2024,
		IndividualGroup:     SegmentIndividual,
		DistributionChannel: "Individual Agents",
		KPI:                 "New Business Policy",
		Value:               1000,
		Source:              SourceTable100,
	}, facts[0])

	assert.Equal(t, "New Business Premium", facts[1].KPI)
	assert.InDelta(t, 255_000_000, facts[1].Value, 1e-3)

	assert.Equal(t, "Online", facts[2].DistributionChannel)
	assert.Equal(t, "New Business Policy", facts[2].KPI)
}

func TestExtractGroupByChannel(t *testing.T) {
	g := make(Grid, 6)
	for i := range g {
		g[i] = make([]string, 38)
	}
	g[5][0] = "1"
	g[5][1] = "LIC of India"
	g[5][2] = "30" // scheme count column, not extracted
	g[5][3] = "40" // Individual Agents premium
	g[5][6] = "-"  // Banks premium missing

	facts := ExtractGroupByChannel(g, newStd())
	require.Len(t, facts, 1, "only the premium column of each channel triplet is extracted")

	assert.Equal(t, Fact{
		Insurer:             "LIC",
		Year:                2024,
		IndividualGroup:     SegmentGroup,
		DistributionChannel: "Individual Agents",
		KPI:                 "New Business Premium",
		Value:               400_000_000,
		Source:              SourceTable102,
	}, facts[0])
}
