package pipeline

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"irdacli/internal/handbook"
)

// Validate runs the fixed sequence of advisory data-quality checks over the
// combined facts relation and appends one entry per check to the log.
// Findings never filter or abort: a value flagged here still ships in the
// facts artifact.
func Validate(facts []handbook.Fact, log *QALog) {
	v := validator.New(validator.WithRequiredStructEnabled())

	var (
		requiredViolations int
		invalidL1          = make(map[string]struct{})
		invalidSegment     = make(map[string]struct{})
	)
	for _, f := range facts {
		err := v.Struct(f)
		if err == nil {
			continue
		}
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			continue
		}
		for _, fe := range fieldErrs {
			switch {
			case fe.Tag() == "required":
				requiredViolations++
			case fe.StructField() == "L1":
				invalidL1[f.L1] = struct{}{}
			case fe.StructField() == "IndividualGroup":
				invalidSegment[f.IndividualGroup] = struct{}{}
			}
		}
	}

	if requiredViolations > 0 {
		log.Append("Required Columns", StatusFail, fmt.Sprintf("%d records with missing required fields", requiredViolations))
	} else {
		log.Append("Required Columns", StatusPass, "All required columns present")
	}

	if len(invalidL1) > 0 {
		log.Append("L1 Values", StatusWarning, "Invalid L1 values: "+joinSorted(invalidL1))
	} else {
		log.Append("L1 Values", StatusPass, "All L1 values valid")
	}

	if len(invalidSegment) > 0 {
		log.Append("Individual/Group Values", StatusWarning, "Invalid values: "+joinSorted(invalidSegment))
	} else {
		log.Append("Individual/Group Values", StatusPass, "All Individual/Group values valid")
	}

	persistencyTotal, persistencyOutOfRange := 0, 0
	for _, f := range facts {
		if !strings.Contains(f.KPI, "Persistency") {
			continue
		}
		persistencyTotal++
		if f.Value < 0 || f.Value > 100 {
			persistencyOutOfRange++
		}
	}
	if persistencyTotal > 0 {
		if persistencyOutOfRange > 0 {
			log.Append("Persistency Range", StatusWarning, fmt.Sprintf("%d persistency values out of 0-100 range", persistencyOutOfRange))
		} else {
			log.Append("Persistency Range", StatusPass, "All persistency values in 0-100 range")
		}
	}

	nullValues := 0
	for _, f := range facts {
		if math.IsNaN(f.Value) {
			nullValues++
		}
	}
	if nullValues > 0 {
		log.Append("Null Values", StatusWarning, fmt.Sprintf("%d null values in Value column", nullValues))
	} else {
		log.Append("Null Values", StatusPass, "No null values in Value column")
	}

	log.Append("Record Count", StatusInfo, fmt.Sprintf("Total records: %d", len(facts)))

	insurers := make(map[string]struct{})
	for _, f := range facts {
		insurers[f.Insurer] = struct{}{}
	}
	log.Append("Unique Insurers", StatusInfo, fmt.Sprintf("Count: %d", len(insurers)))

	if len(facts) > 0 {
		minYear, maxYear := facts[0].Year, facts[0].Year
		for _, f := range facts[1:] {
			if f.Year < minYear {
				minYear = f.Year
			}
			if f.Year > maxYear {
				maxYear = f.Year
			}
		}
		log.Append("Year Range", StatusInfo, fmt.Sprintf("%d - %d", minYear, maxYear))
	} else {
		log.Append("Year Range", StatusInfo, "no records")
	}

	var kpis []string
	seen := make(map[string]struct{})
	for _, f := range facts {
		if _, dup := seen[f.KPI]; dup {
			continue
		}
		seen[f.KPI] = struct{}{}
		kpis = append(kpis, f.KPI)
	}
	log.Append("KPIs", StatusInfo, strings.Join(kpis, ", "))
}

func joinSorted(set map[string]struct{}) string {
	vals := make([]string, 0, len(set))
	for v := range set {
		vals = append(vals, v)
	}
	sort.Strings(vals)
	return strings.Join(vals, ", ")
}
