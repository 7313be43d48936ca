package standardize

import (
	"regexp"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultThreshold is the minimum 0-100 similarity score a fuzzy candidate
// must reach to be accepted. Tuned against the known handbook name variants;
// the score is a normalized Levenshtein ratio.
const DefaultThreshold = 92

var (
	suffixRe     = regexp.MustCompile(`(?i)\s+(ltd\.?|limited|pvt\.?|private|inc\.?|incorporated|company|co\.?)$`)
	punctRe      = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Config holds tuning options for a Standardizer.
type Config struct {
	// Threshold overrides DefaultThreshold when positive.
	Threshold float64
}

// Standardizer resolves raw insurer names to canonical display names and
// records every resolution in its crosswalk.
type Standardizer struct {
	threshold float64
	metric    *metrics.Levenshtein
	titler    cases.Caser
	xwalk     *Crosswalk
}

// New creates a Standardizer writing resolutions into xwalk.
func New(xwalk *Crosswalk, cfg Config) *Standardizer {
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}
	return &Standardizer{
		threshold: cfg.Threshold,
		metric:    metrics.NewLevenshtein(),
		titler:    cases.Title(language.English),
		xwalk:     xwalk,
	}
}

// Crosswalk exposes the accumulator this standardizer writes into.
func (s *Standardizer) Crosswalk() *Crosswalk {
	return s.xwalk
}

// cleanName lowercases, strips one trailing corporate suffix, removes
// punctuation other than word characters, spaces and hyphens, and collapses
// runs of whitespace.
func cleanName(name string) string {
	cleaned := strings.ToLower(strings.TrimSpace(name))
	cleaned = suffixRe.ReplaceAllString(cleaned, "")
	cleaned = punctRe.ReplaceAllString(cleaned, "")
	cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// Standardize canonicalizes a raw insurer name. Empty input (or input that
// cleans down to nothing) returns "" without touching the crosswalk. Every
// other input is resolved exactly, fuzzily, or by a title-cased fallback,
// and the raw -> canonical pair is recorded.
func (s *Standardizer) Standardize(raw string) string {
	cleaned := cleanName(raw)
	if cleaned == "" {
		return ""
	}

	if canonical, ok := insurerExact[cleaned]; ok {
		s.xwalk.Record(raw, canonical)
		return canonical
	}

	if canonical, ok := s.fuzzyMatch(cleaned); ok {
		s.xwalk.Record(raw, canonical)
		return canonical
	}

	fallback := s.titler.String(strings.TrimSpace(raw))
	s.xwalk.Record(raw, fallback)
	return fallback
}

// fuzzyMatch scores cleaned against every dictionary variant and accepts
// the best candidate at or above the threshold. Ties break toward the
// earlier dictionary entry.
func (s *Standardizer) fuzzyMatch(cleaned string) (string, bool) {
	var (
		best      string
		bestScore float64
	)
	for _, e := range cleanedDictionary {
		score := strutil.Similarity(cleaned, e.variant, s.metric) * 100
		if score > bestScore && score >= s.threshold {
			bestScore = score
			best = e.canonical
		}
	}
	return best, best != ""
}
