package handbook

import (
	"sort"
	"strings"

	"irdacli/internal/normalize"
	"irdacli/internal/standardize"
)

// Sources for the state-wise tables.
const (
	SourceTable6 = "Part I - Table 6"
	SourceTable8 = "Part I - Table 8"
)

// stateRowSkipLabels are row labels in the state column that are totals or
// header artifacts rather than states.
var stateRowSkipLabels = map[string]struct{}{
	"total":                {},
	"grand total":          {},
	"all india":            {},
	"s.no.":                {},
	"private total":        {},
	"private sector total": {},
	"public sector total":  {},
}

func isStateSkipLabel(state string) bool {
	_, ok := stateRowSkipLabels[strings.ToLower(state)]
	return ok
}

// stateColumn is one resolved data column of a state-wise table: the
// insurer and year carried forward from the header rows plus the KPI the
// metric row assigns to the column.
type stateColumn struct {
	col     int
	insurer string
	year    int
	kpi     string
	crore   bool
}

// indexStateColumns folds over the header columns maintaining the current
// insurer and year. A blank insurer cell means "same insurer as the column
// to the left"; an aggregate label resets the insurer so subtotal spans are
// skipped. classify maps a metric label to its KPI, or "" to ignore the
// column.
func indexStateColumns(g Grid, insurerRow, yearRow, metricRow int, classify func(metric string) (kpi string, crore bool)) []stateColumn {
	var (
		cols           []stateColumn
		currentInsurer string
		currentYear    int
	)
	for col := 2; col < g.Cols(); col++ {
		if label := g.Cell(insurerRow, col); label != "" {
			if isAggregateColumn(label) {
				currentInsurer = ""
			} else {
				currentInsurer = label
			}
		}
		if label := g.Cell(yearRow, col); label != "" {
			if year, ok := normalize.ParseFiscalYear(label); ok {
				currentYear = year
			}
		}
		metric := g.Cell(metricRow, col)
		if metric == "" || currentInsurer == "" || currentYear == 0 {
			continue
		}
		kpi, crore := classify(strings.ToLower(metric))
		if kpi == "" {
			continue
		}
		cols = append(cols, stateColumn{
			col:     col,
			insurer: currentInsurer,
			year:    currentYear,
			kpi:     kpi,
			crore:   crore,
		})
	}
	return cols
}

// walkStateRows emits one StateDetail per (state row, resolved column) with
// a parseable cell.
func walkStateRows(g Grid, dataStart int, cols []stateColumn, std *standardize.Standardizer, segment, source string) []StateDetail {
	var details []StateDetail
	for i := dataStart; i < g.Rows(); i++ {
		state := g.Cell(i, 1)
		if state == "" || isStateSkipLabel(state) {
			continue
		}
		for _, c := range cols {
			insurer := std.Standardize(c.insurer)
			if insurer == "" {
				continue
			}
			cell := g.Cell(i, c.col)
			var (
				value float64
				ok    bool
			)
			if c.crore {
				value, ok = normalize.FromCrore(cell)
			} else {
				value, ok = normalize.Number(cell)
			}
			if !ok {
				continue
			}
			details = append(details, StateDetail{
				State:           state,
				Insurer:         insurer,
				Year:            c.year,
				IndividualGroup: segment,
				KPI:             c.kpi,
				Value:           value,
				Source:          source,
			})
		}
	}
	return details
}

// ExtractStateIndividualBusiness handles Table 6: state-wise individual new
// business. Insurer names sit on row 2, years on row 3 and metric labels
// (policies vs premium) on row 4, all carried forward across blank cells.
// It returns the per-state detail relation and its group-sum contribution
// to the facts relation.
func ExtractStateIndividualBusiness(g Grid, std *standardize.Standardizer) ([]Fact, []StateDetail) {
	cols := indexStateColumns(g, 2, 3, 4, func(metric string) (string, bool) {
		switch {
		case strings.Contains(metric, "polic"):
			return "New Business Policy", false
		case strings.Contains(metric, "premium"):
			return "New Business Premium", true
		}
		return "", false
	})
	details := walkStateRows(g, 5, cols, std, SegmentIndividual, SourceTable6)
	return AggregateStateDetails(details), details
}

// ExtractStateGroupBusiness handles Table 8: state-wise group business.
// Header rows sit one higher than Table 6's, and only the premium metric is
// extracted for group business.
func ExtractStateGroupBusiness(g Grid, std *standardize.Standardizer) ([]Fact, []StateDetail) {
	cols := indexStateColumns(g, 1, 2, 3, func(metric string) (string, bool) {
		if strings.Contains(metric, "premium") {
			return "New Business Premium", true
		}
		return "", false
	})
	details := walkStateRows(g, 4, cols, std, SegmentGroup, SourceTable8)
	return AggregateStateDetails(details), details
}

// AggregateStateDetails sums state detail records over (Insurer, Year,
// IndividualGroup, KPI, Source) to produce the state-derived contribution
// to the facts relation. Output order is sorted by the group key so the
// relation is deterministic regardless of extraction order.
func AggregateStateDetails(details []StateDetail) []Fact {
	if len(details) == 0 {
		return nil
	}
	type groupKey struct {
		insurer string
		year    int
		segment string
		kpi     string
		source  string
	}
	sums := make(map[groupKey]float64)
	for _, d := range details {
		k := groupKey{insurer: d.Insurer, year: d.Year, segment: d.IndividualGroup, kpi: d.KPI, source: d.Source}
		sums[k] += d.Value
	}

	keys := make([]groupKey, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.insurer != b.insurer {
			return a.insurer < b.insurer
		}
		if a.year != b.year {
			return a.year < b.year
		}
		if a.segment != b.segment {
			return a.segment < b.segment
		}
		if a.kpi != b.kpi {
			return a.kpi < b.kpi
		}
		return a.source < b.source
	})

	facts := make([]Fact, 0, len(keys))
	for _, k := range keys {
		facts = append(facts, Fact{
			Insurer:         k.insurer,
			Year:            k.year,
			IndividualGroup: k.segment,
			KPI:             k.kpi,
			Value:           sums[k],
			Source:          k.source,
		})
	}
	return facts
}
