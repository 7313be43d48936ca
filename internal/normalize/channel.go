package normalize

import "strings"

// channelVocabulary maps lowercased header labels to the twelve canonical
// distribution channel names. Footnote markers ("*", "**") on source labels
// are part of the raw text and appear here as observed in the handbook.
var channelVocabulary = map[string]string{
	"individual agents":             "Individual Agents",
	"corporate agents - banks":      "Corporate Agents - Banks",
	"corporate agents banks":        "Corporate Agents - Banks",
	"banks":                         "Corporate Agents - Banks",
	"corporate agents - others":     "Corporate Agents - Others",
	"corporate agents others":       "Corporate Agents - Others",
	"others*":                       "Corporate Agents - Others",
	"brokers":                       "Brokers",
	"direct selling":                "Direct Selling",
	"mi agents":                     "MI Agents",
	"common service centres":        "CSCs",
	"common service centres (cscs)": "CSCs",
	"cscs":                          "CSCs",
	"web aggregators":               "Web Aggregators",
	"imf":                           "IMF",
	"online":                        "Online",
	"online**":                      "Online",
	"point of sales":                "POS",
	"point of sales (pos)":          "POS",
	"pos":                           "POS",
	"others if any":                 "Others",
	"others":                        "Others",
	"referrals":                     "Referrals",
}

// Channel canonicalizes a distribution channel label. Unrecognized labels
// pass through trimmed but otherwise unchanged.
func Channel(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := channelVocabulary[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}
