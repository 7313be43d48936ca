package handbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStateIndividualBusiness(t *testing.T) {
	// Insurers on row 2 carry forward across blank cells; an aggregate
	// label closes the span. Years on row 3, metric labels on row 4.
	g := Grid{
		{"Table 6", "State-wise Individual New Business"},
		{},
		{"", "", "SBI Life Insurance Company Ltd", "", "Grand Total"},
		{"", "", "2022-23", "", "2022-23"},
		{"", "State", "No. of Policies", "Premium", "Premium"},
		{"1", "Maharashtra", "100", "5", "500"},
		{"2", "Karnataka", "50", "2", "200"},
		{"", "Total", "150", "7", "700"},
	}

	facts, details := ExtractStateIndividualBusiness(g, newStd())

	require.Len(t, details, 4, "grand-total columns and total rows must not emit")
	assert.Equal(t, StateDetail{
		State:           "Maharashtra",
		Insurer:         "SBI Life",
		Year:            2023,
		IndividualGroup: SegmentIndividual,
		KPI:             "New Business Policy",
		Value:           100,
		Source:          SourceTable6,
	}, details[0])
	assert.Equal(t, "New Business Premium", details[1].KPI)
	assert.InDelta(t, 50_000_000, details[1].Value, 1e-3)

	// Facts are state sums per (insurer, year, segment, KPI).
	require.Len(t, facts, 2)
	assert.Equal(t, "New Business Policy", facts[0].KPI)
	assert.InDelta(t, 150, facts[0].Value, 1e-9)
	assert.Equal(t, "New Business Premium", facts[1].KPI)
	assert.InDelta(t, 70_000_000, facts[1].Value, 1e-3)
	for _, f := range facts {
		assert.Equal(t, "SBI Life", f.Insurer)
		assert.Equal(t, 2023, f.Year)
		assert.Equal(t, SegmentIndividual, f.IndividualGroup)
		assert.Equal(t, SourceTable6, f.Source)
	}
}

func TestExtractStateGroupBusiness(t *testing.T) {
	// Table 8's headers sit one row higher and only premium is extracted.
	g := Grid{
		{"Table 8"},
		{"", "", "LIC of India", ""},
		{"", "", "2021-22", "2021-22"},
		{"", "State", "No. of Schemes", "Premium"},
		{"1", "Gujarat", "30", "12"},
	}

	facts, details := ExtractStateGroupBusiness(g, newStd())

	require.Len(t, details, 1, "scheme counts are not extracted for group business")
	assert.Equal(t, "New Business Premium", details[0].KPI)
	assert.Equal(t, SegmentGroup, details[0].IndividualGroup)
	assert.Equal(t, "LIC", details[0].Insurer)
	assert.Equal(t, 2022, details[0].Year)
	assert.InDelta(t, 120_000_000, details[0].Value, 1e-3)

	require.Len(t, facts, 1)
	assert.Equal(t, SourceTable8, facts[0].Source)
}

func TestAggregateStateDetailsDeterministicOrder(t *testing.T) {
	details := []StateDetail{
		{State: "B", Insurer: "Zeta Life", Year: 2023, IndividualGroup: SegmentIndividual, KPI: "New Business Premium", Value: 2, Source: SourceTable6},
		{State: "A", Insurer: "Alpha Life", Year: 2023, IndividualGroup: SegmentIndividual, KPI: "New Business Premium", Value: 1, Source: SourceTable6},
		{State: "C", Insurer: "Alpha Life", Year: 2023, IndividualGroup: SegmentIndividual, KPI: "New Business Premium", Value: 3, Source: SourceTable6},
	}

	facts := AggregateStateDetails(details)
	require.Len(t, facts, 2)
	assert.Equal(t, "Alpha Life", facts[0].Insurer)
	assert.InDelta(t, 4, facts[0].Value, 1e-9)
	assert.Equal(t, "Zeta Life", facts[1].Insurer)

	assert.Nil(t, AggregateStateDetails(nil))
}
