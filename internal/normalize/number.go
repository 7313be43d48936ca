package normalize

import (
	"strconv"
	"strings"
)

// CroreToRupees is the multiplier applied to Crore-denominated cells.
// 1 Crore = 10,000,000.
const CroreToRupees = 10_000_000

// Number parses a cell into a plain numeric value. Blank cells and the
// handbook's "-" missing-value sentinel are misses, as is anything that
// fails numeric parsing. Thousands separators are tolerated.
func Number(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FromCrore parses a Crore-denominated cell and converts it to absolute
// Rupees. Same miss semantics as Number.
func FromCrore(s string) (float64, bool) {
	v, ok := Number(s)
	if !ok {
		return 0, false
	}
	return v * CroreToRupees, true
}
