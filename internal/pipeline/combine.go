package pipeline

import "irdacli/internal/handbook"

// Combine concatenates per-table fact slices in their given order and
// removes exact-duplicate rows. Duplicates are full-tuple equality, not
// key-based: the same (dimensions, KPI, Value, Source) row appearing twice
// collapses to its first occurrence, while conflicting values for the same
// key both survive. Combine is idempotent.
func Combine(tables ...[]handbook.Fact) []handbook.Fact {
	total := 0
	for _, t := range tables {
		total += len(t)
	}
	seen := make(map[handbook.Fact]struct{}, total)
	combined := make([]handbook.Fact, 0, total)
	for _, t := range tables {
		for _, f := range t {
			if _, dup := seen[f]; dup {
				continue
			}
			seen[f] = struct{}{}
			combined = append(combined, f)
		}
	}
	return combined
}
