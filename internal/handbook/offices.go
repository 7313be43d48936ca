package handbook

import (
	"math"
	"strings"

	"irdacli/internal/normalize"
	"irdacli/internal/standardize"
)

// SourceTable29 identifies the state-wise office count table.
const SourceTable29 = "Part I - Table 29"

// ExtractOfficesByState handles Table 29: the state-wise distribution of
// life insurer offices. Insurer names on row 1 span a block of year columns
// each (years on row 2); a span closes when the next insurer label or an
// aggregate label appears. State rows occupy rows 3-38. Dash cells mean an
// insurer had no offices in the state and count as zero, unlike the other
// tables' missing-value dashes.
func ExtractOfficesByState(g Grid, std *standardize.Standardizer) []StateDetail {
	const (
		insurerRow = 1
		yearRow    = 2
		firstState = 3
		lastState  = 38
	)

	type span struct {
		insurer    string
		start, end int
	}
	var (
		spans   []span
		current *span
	)
	for col := 2; col < g.Cols(); col++ {
		label := g.Cell(insurerRow, col)
		if label == "" {
			continue
		}
		lower := strings.ToLower(label)
		if strings.Contains(lower, "total") || strings.Contains(lower, "sector") || strings.Contains(lower, "grand") {
			if current != nil {
				current.end = col - 1
				spans = append(spans, *current)
				current = nil
			}
			continue
		}
		insurer := std.Standardize(label)
		if insurer == "" {
			continue
		}
		if current != nil {
			current.end = col - 1
			spans = append(spans, *current)
		}
		current = &span{insurer: insurer, start: col}
	}
	if current != nil {
		current.end = g.Cols() - 1
		spans = append(spans, *current)
	}

	var details []StateDetail
	for row := firstState; row <= lastState && row < g.Rows(); row++ {
		state := g.Cell(row, 1)
		if state == "" {
			continue
		}
		switch strings.ToLower(state) {
		case "total", "grand total":
			continue
		}
		for _, s := range spans {
			for col := s.start; col <= s.end; col++ {
				year, ok := normalize.ParseFiscalYear(g.Cell(yearRow, col))
				if !ok || year < 2014 || year > 2025 {
					continue
				}
				cell := g.Cell(row, col)
				if cell == "" {
					continue
				}
				var count float64
				if cell == "-" || cell == "--" {
					count = 0
				} else {
					v, ok := normalize.Number(cell)
					if !ok {
						continue
					}
					count = math.Trunc(v)
				}
				details = append(details, StateDetail{
					State:           state,
					Insurer:         s.insurer,
					Year:            year,
					IndividualGroup: SegmentNotApplicable,
					KPI:             "Number of Offices",
					Value:           count,
					Source:          SourceTable29,
				})
			}
		}
	}
	return details
}
