package handbook

import (
	"strings"

	"irdacli/internal/normalize"
	"irdacli/internal/standardize"
)

// SourceTable23 identifies the solvency ratio table.
const SourceTable23 = "Part I - Table 23"

// isMarchPeriod reports whether a period label is a fiscal year end
// ("As on 31 March 2024" and variants).
func isMarchPeriod(label string) bool {
	return strings.Contains(strings.ToLower(label), "march") || strings.Contains(label, "Mar")
}

// ExtractSolvencyRatio handles Table 23: reported solvency ratios by
// period. The header row is sniffed by a March period label. Ratios carry
// no unit conversion. March observations feed the facts relation as the
// year-end value; every observation lands in the detail relation with its
// raw period label.
func ExtractSolvencyRatio(g Grid, std *standardize.Standardizer) ([]Fact, []SolvencyDetail) {
	headerRow := -1
	for i := 0; i < g.Rows(); i++ {
		if isMarchPeriod(g.rowText(i)) {
			headerRow = i
			break
		}
	}
	if headerRow < 0 {
		return nil, nil
	}

	type periodCol struct {
		col    int
		year   int
		period string
	}
	var cols []periodCol
	for col := 2; col < g.Cols(); col++ {
		label := g.Cell(headerRow, col)
		if year, ok := normalize.ParseFiscalYear(label); ok {
			cols = append(cols, periodCol{col: col, year: year, period: label})
		}
	}

	var (
		facts   []Fact
		details []SolvencyDetail
	)
	for i := headerRow + 1; i < g.Rows(); i++ {
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
			if isMarchPeriod(c.period) {
				facts = append(facts, Fact{
					Insurer:         insurer,
					Year:            c.year,
					IndividualGroup: SegmentNotApplicable,
					KPI:             "Solvency Ratio",
					Value:           value,
					Source:          SourceTable23,
				})
			}
			details = append(details, SolvencyDetail{
				Insurer:       insurer,
				Period:        c.period,
				Year:          c.year,
				SolvencyRatio: value,
				Source:        SourceTable23,
			})
		}
	}
	return facts, details
}
