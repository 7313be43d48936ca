package handbook

import (
	"strings"

	"irdacli/internal/normalize"
	"irdacli/internal/standardize"
)

// SourceTable21 identifies the assets-under-management table.
const SourceTable21 = "Part I - Table 21"

// ExtractAssetsUnderManagement handles Table 21: AUM by insurer, fund type
// and year. The year header row is sniffed by a recent calendar year; fund
// type labels sit on rows 3 (main groupings such as "Grand Total (All
// Funds)") and 4 (sub-groupings such as "Total (Life Fund)") and carry
// forward across blank cells, row 3 taking precedence. The facts relation
// keeps only the Grand Total fund to avoid double counting; every fund
// observation lands in the detail relation.
func ExtractAssetsUnderManagement(g Grid, std *standardize.Standardizer) ([]Fact, []AUMDetail) {
	headerRow := g.findRowContaining("2021", "2022")
	if headerRow < 0 {
		return nil, nil
	}

	type fundCol struct {
		col  int
		fund string
		year int
	}
	var (
		cols        []fundCol
		currentFund string
	)
	for col := 2; col < g.Cols(); col++ {
		if label := g.Cell(3, col); label != "" {
			currentFund = label
		} else if label := g.Cell(4, col); label != "" {
			currentFund = label
		}
		year, ok := normalize.ParseFiscalYear(g.Cell(headerRow, col))
		if !ok {
			continue
		}
		fund := currentFund
		if fund == "" {
			fund = "Total"
		}
		cols = append(cols, fundCol{col: col, fund: fund, year: year})
	}

	var (
		facts   []Fact
		details []AUMDetail
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
			value, ok := normalize.FromCrore(g.Cell(i, c.col))
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(c.fund), "grand total") {
				facts = append(facts, Fact{
					Insurer:         insurer,
					Year:            c.year,
					IndividualGroup: SegmentNotApplicable,
					KPI:             "Assets Under Management",
					Value:           value,
					Source:          SourceTable21,
				})
			}
			details = append(details, AUMDetail{
				Insurer:  insurer,
				Year:     c.year,
				FundType: c.fund,
				AUM:      value,
				Source:   SourceTable21,
			})
		}
	}
	return facts, details
}
