package handbook

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"irdacli/internal/standardize"
)

// newStd returns a fresh standardizer with default settings for extractor
// tests.
func newStd() *standardize.Standardizer {
	return standardize.New(standardize.NewCrosswalk(), standardize.Config{})
}

func TestGridCell(t *testing.T) {
	g := Grid{
		{"a", " b ", ""},
		{"d"},
	}

	assert.Equal(t, "a", g.Cell(0, 0))
	assert.Equal(t, "b", g.Cell(0, 1), "cells are trimmed")
	assert.Equal(t, "", g.Cell(0, 2))
	assert.Equal(t, "d", g.Cell(1, 0))
	assert.Equal(t, "", g.Cell(1, 1), "short rows read as blank")
	assert.Equal(t, "", g.Cell(-1, 0))
	assert.Equal(t, "", g.Cell(5, 0))
	assert.Equal(t, "", g.Cell(0, -1))
}

func TestGridCols(t *testing.T) {
	g := Grid{
		{"a"},
		{"a", "b", "c"},
		{},
	}
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 0, Grid(nil).Cols())
}

func TestGridFindRowContaining(t *testing.T) {
	g := Grid{
		{"Table 2", "Total Premium"},
		{},
		{"", "Insurer", "2014-15", "2015-16"},
	}

	assert.Equal(t, 2, g.findRowContaining("2014-15", "2015-16"))
	assert.Equal(t, 0, g.findRowContaining("Premium"))
	assert.Equal(t, -1, g.findRowContaining("2099-00"))
}

func TestIsSectionHeader(t *testing.T) {
	assert.True(t, IsSectionHeader("Private Sector"))
	assert.True(t, IsSectionHeader("  GRAND TOTAL "))
	assert.True(t, IsSectionHeader("Total"))
	assert.False(t, IsSectionHeader("SBI Life Insurance Company Ltd"))
	assert.False(t, IsSectionHeader(""))
}

func TestIsAggregateColumn(t *testing.T) {
	assert.True(t, isAggregateColumn("Grand Total"))
	assert.True(t, isAggregateColumn("private total"))
	assert.False(t, isAggregateColumn("Particulars"))
	assert.True(t, isAggregateColumn("Particulars", "particulars"))
}
