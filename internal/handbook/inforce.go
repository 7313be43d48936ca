package handbook

import (
	"regexp"
	"strings"

	"irdacli/internal/normalize"
	"irdacli/internal/standardize"
)

// Sources for the business-in-force tables.
const (
	SourceTable10 = "Part I - Table 10"
	SourceTable11 = "Part I - Table 11"
)

// categoryBlock keys a row-label fragment to its product category. The
// in-force tables interleave sixteen category blocks down the sheet, each
// opened by a header row matching one of these fragments. The VIP blocks
// are the only place L2 is assigned.
type categoryBlock struct {
	fragment string
	category normalize.Category
}

// inForceCategoryFragments lists the sixteen block-header fragments in
// their source order; L1 and L3 derive from the fragment text, L2 comes
// from the VIP flag alone.
var inForceCategoryFragments = []struct {
	fragment string
	vip      bool
}{
	{fragment: "non linked life business"},
	{fragment: "non linked -general annuity business"},
	{fragment: "non linked - pension business"},
	{fragment: "non linked health business"},
	{fragment: "linked business - life business"},
	{fragment: "linked general annuity business"},
	{fragment: "linked pension business"},
	{fragment: "linked health business"},
	{fragment: "non-linked vip-life business", vip: true},
	{fragment: "non-linked vip-general annuity business", vip: true},
	{fragment: "non-linked vip-pension business", vip: true},
	{fragment: "non-linked vip-health business", vip: true},
	{fragment: "linked vip-life business", vip: true},
	{fragment: "linked vip-general annuity business", vip: true},
	{fragment: "linked vip-pension business", vip: true},
	{fragment: "linked vip-health business", vip: true},
}

var inForceCategories = func() []categoryBlock {
	blocks := make([]categoryBlock, 0, len(inForceCategoryFragments))
	for _, f := range inForceCategoryFragments {
		cat := normalize.ParseCategoryLabel(f.fragment)
		if f.vip {
			cat.L2 = "VIP"
		}
		blocks = append(blocks, categoryBlock{fragment: f.fragment, category: cat})
	}
	return blocks
}()

// Each category block holds several running rows (new business, revivals,
// surrenders, ...) and exactly one year-end row carrying a lettered
// designator such as "(A)". Only the lettered year-end row is data.
var designatorRe = regexp.MustCompile(`(?i)\(\s*([A-P])\s*\)`)

const yearEndRowFragment = "business in force at end of the financial year"

// ExtractPoliciesInForce handles Table 10: individual policies in force by
// product category. Values are reported in thousands.
func ExtractPoliciesInForce(g Grid, std *standardize.Standardizer) []Fact {
	return extractInForce(g, std, inForceOptions{
		kpi:       "Total Policy (Year-End)",
		source:    SourceTable10,
		skipLabel: "a+b+c+d",
		parse: func(cell string) (float64, bool) {
			v, ok := normalize.Number(cell)
			if !ok {
				return 0, false
			}
			return v * 1000, true
		},
	})
}

// ExtractSumAssuredInForce handles Table 11: sum assured of policies in
// force by product category. Same geometry as Table 10 with Crore values;
// the sheet name carries a trailing space in the source workbook.
func ExtractSumAssuredInForce(g Grid, std *standardize.Standardizer) []Fact {
	return extractInForce(g, std, inForceOptions{
		kpi:       "Sum Assured (Year-End)",
		source:    SourceTable11,
		skipLabel: "a + b + c + d",
		parse:     normalize.FromCrore,
	})
}

type inForceOptions struct {
	kpi       string
	source    string
	skipLabel string
	parse     func(cell string) (float64, bool)
}

func extractInForce(g Grid, std *standardize.Standardizer, opts inForceOptions) []Fact {
	const (
		insurerRow = 2
		yearRow    = 3
		dataStart  = 4
	)

	type insurerCol struct {
		col     int
		insurer string
		year    int
	}
	var (
		cols           []insurerCol
		currentInsurer string
	)
	for col := 1; col < g.Cols(); col++ {
		if label := g.Cell(insurerRow, col); label != "" {
			if isAggregateColumn(label, "particulars") {
				currentInsurer = ""
			} else {
				currentInsurer = label
			}
		}
		year, ok := normalize.ParseFiscalYear(g.Cell(yearRow, col))
		if currentInsurer != "" && ok {
			cols = append(cols, insurerCol{col: col, insurer: currentInsurer, year: year})
		}
	}

	var (
		facts           []Fact
		currentCategory *normalize.Category
	)
	for i := dataStart; i < g.Rows(); i++ {
		label := g.Cell(i, 0)
		if label == "" {
			continue
		}
		lower := strings.ToLower(label)

		for _, block := range inForceCategories {
			if strings.Contains(lower, block.fragment) {
				cat := block.category
				currentCategory = &cat
				break
			}
		}

		if strings.Contains(lower, "grand total") || strings.Contains(lower, "private sector total") || strings.Contains(lower, opts.skipLabel) {
			continue
		}

		if currentCategory == nil || !strings.Contains(lower, yearEndRowFragment) || !designatorRe.MatchString(lower) {
			continue
		}

		for _, c := range cols {
			insurer := std.Standardize(c.insurer)
			if insurer == "" {
				continue
			}
			value, ok := opts.parse(g.Cell(i, c.col))
			if !ok {
				continue
			}
			facts = append(facts, Fact{
				Insurer:         insurer,
				Year:            c.year,
				L1:              currentCategory.L1,
				L2:              currentCategory.L2,
				L3:              currentCategory.L3,
				IndividualGroup: SegmentIndividual,
				KPI:             opts.kpi,
				Value:           value,
				Source:          opts.source,
			})
		}
	}
	return facts
}
