package handbook

import (
	"fmt"
	"regexp"

	"irdacli/internal/normalize"
	"irdacli/internal/standardize"
)

// SourceTable28 identifies the policy persistency table.
const SourceTable28 = "Part I - Table 28"

// tenorRe matches persistency bucket labels like "13", "61*" (the asterisk
// is a footnote marker in the source table).
var tenorRe = regexp.MustCompile(`^(\d+)\*?`)

// ExtractPersistency handles Table 28: persistency ratios by policy count.
// Year labels sit on row 3 with the month-bucket labels (13, 25, 37, 49,
// 61) on row 4 beneath each year; the year carries forward across the
// buckets. Occasional source cells report the ratio scaled by 100; those
// are brought back to the 0-100 range.
func ExtractPersistency(g Grid, std *standardize.Standardizer) []Fact {
	const (
		yearRow   = 3
		tenorRow  = 4
		dataStart = 5
	)

	type tenorCol struct {
		col  int
		year int
		kpi  string
	}
	var (
		cols        []tenorCol
		currentYear int
	)
	for col := 2; col < g.Cols(); col++ {
		if year, ok := normalize.ParseFiscalYear(g.Cell(yearRow, col)); ok {
			currentYear = year
		}
		if currentYear == 0 {
			continue
		}
		if m := tenorRe.FindStringSubmatch(g.Cell(tenorRow, col)); m != nil {
			cols = append(cols, tenorCol{
				col:  col,
				year: currentYear,
				kpi:  fmt.Sprintf("Persistency (%sM, Policy)", m[1]),
			})
		}
	}

	var facts []Fact
	for i := dataStart; i < g.Rows(); i++ {
		raw := g.Cell(i, 1)
		if raw == "" || IsSectionHeader(raw) {
			continue
		}
		insurer := std.Standardize(raw)
		if insurer == "" {
			continue
		}
		for _, c := range cols {
			value, ok := normalize.Number(g.Cell(i, c.col))
			if !ok {
				continue
			}
			if value > 100 {
				value = value / 100
			}
			facts = append(facts, Fact{
				Insurer:         insurer,
				Year:            c.year,
				IndividualGroup: SegmentIndividual,
				KPI:             c.kpi,
				Value:           value,
				Source:          SourceTable28,
			})
		}
	}
	return facts
}
