package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	fiscalSpanRe = regexp.MustCompile(`(\d{4})-(\d{2})`)
	marchYearRe  = regexp.MustCompile(`(?i)(?:march|Mar)\s*(\d{4})`)
	bareYearRe   = regexp.MustCompile(`\b(20\d{2})\b`)
)

// ParseFiscalYear extracts the fiscal year end from a header label.
// Recognized forms, in priority order:
//
//	"2023-24"             -> 2024 (span start + 1)
//	"as on 31 March 2024" -> 2024
//	"2024"                -> 2024 (bare year, 20xx only)
//
// Anything else (e.g. "FY22") is a miss.
func ParseFiscalYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if m := fiscalSpanRe.FindStringSubmatch(s); m != nil {
		start, err := strconv.Atoi(m[1])
		if err == nil {
			return start + 1, true
		}
	}

	if m := marchYearRe.FindStringSubmatch(s); m != nil {
		year, err := strconv.Atoi(m[1])
		if err == nil {
			return year, true
		}
	}

	if m := bareYearRe.FindStringSubmatch(s); m != nil {
		year, err := strconv.Atoi(m[1])
		if err == nil {
			return year, true
		}
	}

	return 0, false
}
