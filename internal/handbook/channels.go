package handbook

import (
	"irdacli/internal/normalize"
	"irdacli/internal/standardize"
)

// Sources for the distribution channel tables.
const (
	SourceTable100 = "Part V - Table 100"
	SourceTable102 = "Part V - Table 102"
)

// channelYear is the fiscal year end the Part V channel tables report on.
// Both tables cover a single year (FY 2023-24) with no year header to
// sniff.
const channelYear = 2024

// channelColumn maps a fixed column offset to its channel and metric. The
// Part V tables keep a stable, known column layout across editions, so the
// maps are hardcoded the way the assets table's spans are.
type channelColumn struct {
	col     int
	channel string
	premium bool
}

// Table 100 interleaves Policies/Premium pairs per channel; columns 26-27
// (the Total Individual New Business block) are deliberately absent.
var individualChannelColumns = []channelColumn{
	{2, "Individual Agents", false},
	{3, "Individual Agents", true},
	{4, "Corporate Agents - Banks", false},
	{5, "Corporate Agents - Banks", true},
	{6, "Corporate Agents - Others", false},
	{7, "Corporate Agents - Others", true},
	{8, "Brokers", false},
	{9, "Brokers", true},
	{10, "Direct Selling", false},
	{11, "Direct Selling", true},
	{12, "MI Agents", false},
	{13, "MI Agents", true},
	{14, "CSCs", false},
	{15, "CSCs", true},
	{16, "Web Aggregators", false},
	{17, "Web Aggregators", true},
	{18, "IMF", false},
	{19, "IMF", true},
	{20, "Online", false},
	{21, "Online", true},
	{22, "POS", false},
	{23, "POS", true},
	{24, "Others", false},
	{25, "Others", true},
}

// Table 102 carries Schemes/Premium/Lives triplets per channel; only the
// premium column of each triplet is extracted for group business. Columns
// 38-40 (Total Group New Business) are deliberately absent.
var groupChannelColumns = []channelColumn{
	{3, "Individual Agents", true},
	{6, "Corporate Agents - Banks", true},
	{9, "Corporate Agents - Others", true},
	{12, "Brokers", true},
	{15, "Direct Selling", true},
	{18, "MI Agents", true},
	{21, "CSCs", true},
	{24, "Web Aggregators", true},
	{27, "IMF", true},
	{30, "Online", true},
	{33, "POS", true},
	{36, "Others", true},
}

// ExtractIndividualByChannel handles Table 100: individual new business by
// distribution channel. Data rows carry a numeric serial number in column
// 0; the percentage-share rows that follow each insurer do not, which is
// how they are excluded.
func ExtractIndividualByChannel(g Grid, std *standardize.Standardizer) []Fact {
	return extractByChannel(g, std, individualChannelColumns, SegmentIndividual, SourceTable100)
}

// ExtractGroupByChannel handles Table 102: group new business premium by
// distribution channel.
func ExtractGroupByChannel(g Grid, std *standardize.Standardizer) []Fact {
	return extractByChannel(g, std, groupChannelColumns, SegmentGroup, SourceTable102)
}

func extractByChannel(g Grid, std *standardize.Standardizer, cols []channelColumn, segment, source string) []Fact {
	const dataStart = 5

	var facts []Fact
	for i := dataStart; i < g.Rows(); i++ {
		if _, ok := normalize.Number(g.Cell(i, 0)); !ok {
			continue
		}
		raw := g.Cell(i, 1)
		if raw == "" || IsSectionHeader(raw) {
			continue
		}
		insurer := std.Standardize(raw)
		if insurer == "" {
			continue
		}
		for _, c := range cols {
			cell := g.Cell(i, c.col)
			var (
				value float64
				ok    bool
				kpi   string
			)
			if c.premium {
				value, ok = normalize.FromCrore(cell)
				kpi = "New Business Premium"
			} else {
				value, ok = normalize.Number(cell)
				kpi = "New Business Policy"
			}
			if !ok {
				continue
			}
			facts = append(facts, Fact{
				Insurer:             insurer,
				Year:                channelYear,
				IndividualGroup:     segment,
				DistributionChannel: normalize.Channel(c.channel),
				KPI:                 kpi,
				Value:               value,
				Source:              source,
			})
		}
	}
	return facts
}
