package handbook

import (
	"irdacli/internal/normalize"
	"irdacli/internal/standardize"
)

// Sources for the premium tables.
const (
	SourceTable2  = "Part I - Table 2"
	SourceTable3  = "Part I - Table 3"
	SourceTable12 = "Part I - Table 12"
)

// ExtractTotalPremium handles Table 2: total premium by insurer and fiscal
// year. Insurer names sit in column 1, year labels spread across the header
// row located by a known fiscal-year sentinel, and values are Crore.
func ExtractTotalPremium(g Grid, std *standardize.Standardizer) []Fact {
	return extractPremiumByYear(g, std, "Total Premium", SourceTable2)
}

// ExtractNewBusinessPremium handles Table 3, which shares Table 2's
// geometry but reports first-year premium.
func ExtractNewBusinessPremium(g Grid, std *standardize.Standardizer) []Fact {
	return extractPremiumByYear(g, std, "New Business Premium", SourceTable3)
}

// extractPremiumByYear implements the shared insurer-rows-by-year-columns
// layout of tables 2 and 3.
func extractPremiumByYear(g Grid, std *standardize.Standardizer, kpi, source string) []Fact {
	headerRow := g.findRowContaining("2014-15", "2015-16")
	if headerRow < 0 {
		return nil
	}

	type yearCol struct {
		col  int
		year int
	}
	var yearCols []yearCol
	for col := 2; col < g.Cols(); col++ {
		if year, ok := normalize.ParseFiscalYear(g.Cell(headerRow, col)); ok {
			yearCols = append(yearCols, yearCol{col: col, year: year})
		}
	}

	var facts []Fact
	for i := headerRow + 1; i < g.Rows(); i++ {
		raw := g.Cell(i, 1)
		if raw == "" || IsSectionHeader(raw) {
			continue
		}
		insurer := std.Standardize(raw)
		if insurer == "" {
			continue
		}
		for _, yc := range yearCols {
			value, ok := normalize.FromCrore(g.Cell(i, yc.col))
			if !ok {
				continue
			}
			facts = append(facts, Fact{
				Insurer:         insurer,
				Year:            yc.year,
				IndividualGroup: SegmentNotApplicable,
				KPI:             kpi,
				Value:           value,
				Source:          source,
			})
		}
	}
	return facts
}

// linkedPremiumSpans are the fixed column spans of Table 12's "e. Total"
// premium blocks. The table's layout is stable across handbook editions,
// so the spans are hardcoded rather than sniffed: Linked totals occupy
// columns 42-51 and Non-Linked totals columns 92-101, one column per
// fiscal year.
var linkedPremiumSpans = []struct {
	l1         string
	start, end int
}{
	{l1: "Linked", start: 42, end: 51},
	{l1: "Non-Linked", start: 92, end: 101},
}

// ExtractLinkedPremium handles Table 12: total premium split into Linked
// and Non-Linked business. Year labels sit on row 4 and data rows start at
// row 6, after the "Public Sector" band label.
func ExtractLinkedPremium(g Grid, std *standardize.Standardizer) []Fact {
	const (
		yearRow   = 4
		dataStart = 6
	)

	var facts []Fact
	for _, span := range linkedPremiumSpans {
		type yearCol struct {
			col  int
			year int
		}
		var yearCols []yearCol
		for col := span.start; col <= span.end; col++ {
			if year, ok := normalize.ParseFiscalYear(g.Cell(yearRow, col)); ok {
				yearCols = append(yearCols, yearCol{col: col, year: year})
			}
		}

		for i := dataStart; i < g.Rows(); i++ {
			raw := g.Cell(i, 1)
			if raw == "" || IsSectionHeader(raw) {
				continue
			}
			insurer := std.Standardize(raw)
			if insurer == "" {
				continue
			}
			for _, yc := range yearCols {
				value, ok := normalize.FromCrore(g.Cell(i, yc.col))
				if !ok {
					continue
				}
				facts = append(facts, Fact{
					Insurer:         insurer,
					Year:            yc.year,
					L1:              span.l1,
					IndividualGroup: SegmentNotApplicable,
					KPI:             "Total Premium",
					Value:           value,
					Source:          SourceTable12,
				})
			}
		}
	}
	return facts
}
