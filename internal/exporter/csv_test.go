package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irdacli/internal/handbook"
	"irdacli/internal/pipeline"
	"irdacli/internal/standardize"
)

// readCSV loads a written artifact, asserting the UTF-8 BOM prefix.
func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "\xef\xbb\xbf"), "artifact must start with a UTF-8 BOM")

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), "\xef\xbb\xbf"))).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteTable(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir, nil)

	err := w.WriteTable(filepath.Join("sub", "out.csv"), []string{"A", "B"}, [][]string{{"1", "x"}, {"2", "y"}})
	require.NoError(t, err)

	records := readCSV(t, filepath.Join(dir, "sub", "out.csv"))
	require.Len(t, records, 3)
	assert.Equal(t, []string{"A", "B"}, records[0])
	assert.Equal(t, []string{"2", "y"}, records[2])
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "integral", value: 1_505_000_000, want: "1505000000"},
		{name: "fractional", value: 95.3, want: "95.3"},
		{name: "zero", value: 0, want: "0"},
		{name: "small ratio", value: 1.85, want: "1.85"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.value))
		})
	}
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir, nil)

	xwalk := standardize.NewCrosswalk()
	xwalk.Record("LIC of India", "LIC")

	qa := &pipeline.QALog{}
	qa.Append("Record Count", pipeline.StatusInfo, "Total records: 1")

	res := &pipeline.Result{
		Facts: []handbook.Fact{{
			Insurer:         "LIC",
			Year:            2024,
			L1:              "Non-Linked",
			L3:              "Life",
			IndividualGroup: handbook.SegmentIndividual,
			KPI:             "Total Policy (Year-End)",
			Value:           10_000,
			Source:          "Part I - Table 10",
		}},
		StateBreakdown: []handbook.StateDetail{{
			State:           "Maharashtra",
			Insurer:         "LIC",
			Year:            2024,
			IndividualGroup: handbook.SegmentNotApplicable,
			KPI:             "Number of Offices",
			Value:           100,
			Source:          "Part I - Table 29",
		}},
		AUMDetails: []handbook.AUMDetail{{
			Insurer: "LIC", Year: 2024, FundType: "Grand Total (All Funds)", AUM: 1.6e9, Source: "Part I - Table 21",
		}},
		SolvencyDetails: []handbook.SolvencyDetail{{
			Insurer: "LIC", Period: "As on 31 March 2024", Year: 2024, SolvencyRatio: 1.9, Source: "Part I - Table 23",
		}},
		Crosswalk: xwalk,
		QA:        qa,
	}

	require.NoError(t, w.WriteAll(res))

	for _, rel := range []string{
		FactsFile,
		StateBreakdownFile,
		filepath.Join("checks", CrosswalkFile),
		filepath.Join("checks", QALogFile),
		filepath.Join("checks", DataDictionaryFile),
		filepath.Join("checks", AUMDetailFile),
		filepath.Join("checks", SolvencyDetailFile),
	} {
		_, err := os.Stat(filepath.Join(dir, rel))
		assert.NoError(t, err, "expected artifact %s", rel)
	}

	facts := readCSV(t, filepath.Join(dir, FactsFile))
	require.Len(t, facts, 2)
	assert.Equal(t, []string{"Insurer", "Year", "L1", "L2", "L3", "Individual_Group", "Distribution_Channel", "KPI", "Value", "Source"}, facts[0])
	assert.Equal(t, []string{"LIC", "2024", "Non-Linked", "", "Life", "Individual", "", "Total Policy (Year-End)", "10000", "Part I - Table 10"}, facts[1])

	pairs := readCSV(t, filepath.Join(dir, "checks", CrosswalkFile))
	require.Len(t, pairs, 2)
	assert.Equal(t, []string{"LIC of India", "LIC"}, pairs[1])

	states := readCSV(t, filepath.Join(dir, StateBreakdownFile))
	require.Len(t, states, 2)
	assert.Equal(t, "Maharashtra", states[1][0])

	dict := readCSV(t, filepath.Join(dir, "checks", DataDictionaryFile))
	assert.Greater(t, len(dict), 10, "data dictionary documents every column")
}
