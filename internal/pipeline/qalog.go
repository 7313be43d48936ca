package pipeline

// Status classifies a QA log entry. Validation never aborts the run; FAIL
// and WARNING entries are advisory.
type Status string

const (
	StatusPass    Status = "PASS"
	StatusFail    Status = "FAIL"
	StatusWarning Status = "WARNING"
	StatusInfo    Status = "INFO"
)

// QAEntry is one immutable QA log row.
type QAEntry struct {
	Check   string
	Status  Status
	Details string
}

// QALog is an append-only accumulator of QA entries. Entries are never
// mutated after append; the log is a terminal artifact of the run.
type QALog struct {
	entries []QAEntry
}

// Append adds one entry.
func (l *QALog) Append(check string, status Status, details string) {
	l.entries = append(l.entries, QAEntry{Check: check, Status: status, Details: details})
}

// Merge appends every entry of other, preserving order.
func (l *QALog) Merge(other *QALog) {
	if other == nil {
		return
	}
	l.entries = append(l.entries, other.entries...)
}

// Entries returns the accumulated log in append order.
func (l *QALog) Entries() []QAEntry {
	return l.entries
}
