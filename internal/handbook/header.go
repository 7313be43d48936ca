package handbook

import "strings"

// sectionHeaderLabels are row labels that mark sector groupings or totals
// rather than individual insurers. Rows carrying one of these never emit.
var sectionHeaderLabels = map[string]struct{}{
	"public sector":        {},
	"private sector":       {},
	"total":                {},
	"grand total":          {},
	"industry total":       {},
	"private total":        {},
	"private sector total": {},
}

// aggregateColumnLabels are header labels marking subtotal column spans.
// Encountering one resets the carried insurer so every column under the
// span is skipped until a real insurer label reappears.
var aggregateColumnLabels = map[string]struct{}{
	"grand total":          {},
	"private total":        {},
	"private sector total": {},
	"public sector total":  {},
	"total":                {},
	"industry total":       {},
}

// IsSectionHeader reports whether a row's identifying label is a sector
// grouping or aggregate row.
func IsSectionHeader(label string) bool {
	_, ok := sectionHeaderLabels[strings.ToLower(strings.TrimSpace(label))]
	return ok
}

// isAggregateColumn reports whether a header label opens a subtotal span.
// The extra labels extend the shared list for tables with their own header
// artifacts (e.g. the repeated "Particulars" corner label).
func isAggregateColumn(label string, extra ...string) bool {
	lower := strings.ToLower(strings.TrimSpace(label))
	if _, ok := aggregateColumnLabels[lower]; ok {
		return true
	}
	for _, e := range extra {
		if lower == e {
			return true
		}
	}
	return false
}
