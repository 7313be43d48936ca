package standardize

// Crosswalk is an append-only record of every raw insurer name seen during
// a run and the canonical form it resolved to. First resolution wins; later
// lookups of the same raw string are no-ops. Entries are kept in insertion
// order so the exported artifact is stable.
type Crosswalk struct {
	entries map[string]string
	order   []string
}

// NewCrosswalk returns an empty crosswalk.
func NewCrosswalk() *Crosswalk {
	return &Crosswalk{entries: make(map[string]string)}
}

// Record stores raw -> canonical unless raw has already been resolved.
func (x *Crosswalk) Record(raw, canonical string) {
	if _, seen := x.entries[raw]; seen {
		return
	}
	x.entries[raw] = canonical
	x.order = append(x.order, raw)
}

// Lookup returns the recorded canonical form for raw.
func (x *Crosswalk) Lookup(raw string) (string, bool) {
	canonical, ok := x.entries[raw]
	return canonical, ok
}

// Len reports the number of distinct raw names recorded.
func (x *Crosswalk) Len() int {
	return len(x.order)
}

// Merge folds other into x, preserving x's first-wins semantics. Used to
// combine per-worker crosswalks after parallel table extraction.
func (x *Crosswalk) Merge(other *Crosswalk) {
	if other == nil {
		return
	}
	for _, raw := range other.order {
		x.Record(raw, other.entries[raw])
	}
}

// Pair is one exported crosswalk row.
type Pair struct {
	Original     string
	Standardized string
}

// Pairs returns all entries in insertion order.
func (x *Crosswalk) Pairs() []Pair {
	pairs := make([]Pair, 0, len(x.order))
	for _, raw := range x.order {
		pairs = append(pairs, Pair{Original: raw, Standardized: x.entries[raw]})
	}
	return pairs
}
