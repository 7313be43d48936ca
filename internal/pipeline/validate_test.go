package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irdacli/internal/handbook"
)

func entryByCheck(t *testing.T, log *QALog, check string) QAEntry {
	t.Helper()
	for _, e := range log.Entries() {
		if e.Check == check {
			return e
		}
	}
	t.Fatalf("no QA entry for check %q", check)
	return QAEntry{}
}

func TestValidateCleanFacts(t *testing.T) {
	facts := []handbook.Fact{
		fact("LIC", 2023, "Total Premium", 100),
		fact("SBI Life", 2024, "Solvency Ratio", 1.85),
	}

	log := &QALog{}
	Validate(facts, log)

	assert.Equal(t, StatusPass, entryByCheck(t, log, "Required Columns").Status)
	assert.Equal(t, StatusPass, entryByCheck(t, log, "L1 Values").Status)
	assert.Equal(t, StatusPass, entryByCheck(t, log, "Individual/Group Values").Status)
	assert.Equal(t, StatusPass, entryByCheck(t, log, "Null Values").Status)
	assert.Equal(t, "Total records: 2", entryByCheck(t, log, "Record Count").Details)
	assert.Equal(t, "Count: 2", entryByCheck(t, log, "Unique Insurers").Details)
	assert.Equal(t, "2023 - 2024", entryByCheck(t, log, "Year Range").Details)
	assert.Equal(t, "Total Premium, Solvency Ratio", entryByCheck(t, log, "KPIs").Details)

	// No persistency facts, no persistency check.
	for _, e := range log.Entries() {
		assert.NotEqual(t, "Persistency Range", e.Check)
	}
}

func TestValidateFlagsViolationsWithoutFiltering(t *testing.T) {
	bad := handbook.Fact{
		// Insurer missing, L1 off the vocabulary, segment off the
		// vocabulary.
		Year:            2023,
		L1:              "Hybrid",
		IndividualGroup: "Both",
		KPI:             "Total Premium",
		Value:           1,
		Source:          "Part I - Table 2",
	}
	facts := []handbook.Fact{bad, fact("LIC", 2023, "Total Premium", 100)}

	log := &QALog{}
	Validate(facts, log)

	assert.Equal(t, StatusFail, entryByCheck(t, log, "Required Columns").Status)

	l1 := entryByCheck(t, log, "L1 Values")
	assert.Equal(t, StatusWarning, l1.Status)
	assert.Contains(t, l1.Details, "Hybrid")

	seg := entryByCheck(t, log, "Individual/Group Values")
	assert.Equal(t, StatusWarning, seg.Status)
	assert.Contains(t, seg.Details, "Both")

	// Validation is advisory: the input slice is untouched.
	assert.Len(t, facts, 2)
}

func TestValidatePersistencyRange(t *testing.T) {
	inRange := fact("LIC", 2023, "Persistency (13M, Policy)", 85.5)
	inRange.IndividualGroup = handbook.SegmentIndividual
	outOfRange := fact("LIC", 2023, "Persistency (61M, Policy)", 9530)
	outOfRange.IndividualGroup = handbook.SegmentIndividual

	log := &QALog{}
	Validate([]handbook.Fact{inRange, outOfRange}, log)

	e := entryByCheck(t, log, "Persistency Range")
	assert.Equal(t, StatusWarning, e.Status)
	assert.Contains(t, e.Details, "1 persistency values out of 0-100 range")
}

func TestValidateNaNValues(t *testing.T) {
	f := fact("LIC", 2023, "Total Premium", math.NaN())

	log := &QALog{}
	Validate([]handbook.Fact{f}, log)

	e := entryByCheck(t, log, "Null Values")
	assert.Equal(t, StatusWarning, e.Status)
	assert.Contains(t, e.Details, "1 null values")
}

func TestValidateEmptyFacts(t *testing.T) {
	log := &QALog{}
	Validate(nil, log)

	assert.Equal(t, "Total records: 0", entryByCheck(t, log, "Record Count").Details)
	assert.Equal(t, "no records", entryByCheck(t, log, "Year Range").Details)
	require.NotEmpty(t, log.Entries())
}
