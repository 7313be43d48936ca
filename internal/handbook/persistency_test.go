package handbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPersistency(t *testing.T) {
	g := Grid{
		{"Table 28", "Persistency of Life Insurance Policies"},
		{},
		{},
		{"", "", "2022-23", "", "2023-24"},
		{"", "Insurer", "13", "61*", "13"},
		{"1", "SBI Life Insurance Company Ltd", "85.5", "4590", "-"},
		{"", "Private Total", "80", "40", "75"},
	}

	facts := ExtractPersistency(g, newStd())
	require.Len(t, facts, 2)

	assert.Equal(t, Fact{
		Insurer:         "SBI Life",
		Year:            2023,
		IndividualGroup: SegmentIndividual,
		KPI:             "Persistency (13M, Policy)",
		Value:           85.5,
		Source:          SourceTable28,
	}, facts[0])

	// Scaled-by-100 source cells come back to the 0-100 range; the year
	// carries forward across the month buckets of the same span.
	assert.Equal(t, "Persistency (61M, Policy)", facts[1].KPI)
	assert.Equal(t, 2023, facts[1].Year)
	assert.InDelta(t, 45.9, facts[1].Value, 1e-9)
}

func TestExtractPersistencyNoYearNoColumns(t *testing.T) {
	g := Grid{
		{}, {}, {},
		{"", "", "Period A"},
		{"", "Insurer", "13"},
		{"1", "SBI Life", "85"},
	}
	// Month buckets before the first recognizable year label are ignored.
	assert.Empty(t, ExtractPersistency(g, newStd()))
}
