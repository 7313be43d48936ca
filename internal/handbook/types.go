package handbook

// Fact is the canonical long-form output record: one (insurer, year,
// category, segment, channel, KPI) tuple with its value. Blank string
// dimensions mean "not applicable to this table" and are emitted as empty
// strings, never as a null marker. Value units depend on the KPI: premium,
// sum assured and AUM are absolute Rupees (converted from Crore), policy
// and office counts are plain integers, persistency is a 0-100 percentage
// and solvency ratio is unconverted.
type Fact struct {
	Insurer             string  `validate:"required"`
	Year                int     `validate:"required,gte=2000,lte=2100"`
	L1                  string  `validate:"omitempty,oneof=Linked Non-Linked"`
	L2                  string  `validate:"omitempty,oneof=Participating Non-Participating VIP"`
	L3                  string  `validate:"omitempty,oneof=Life Annuity Pension Health"`
	IndividualGroup     string  `validate:"oneof=Individual Group 'Not Applicable'"`
	DistributionChannel string  `validate:"omitempty"`
	KPI                 string  `validate:"required"`
	Value               float64 `validate:""`
	Source              string  `validate:"required"`
}

// StateDetail is a per-state record from the state-wise tables. It carries
// no product category dimensions; the facts-level contribution of these
// tables is produced by AggregateStateDetails.
type StateDetail struct {
	State           string
	Insurer         string
	Year            int
	IndividualGroup string
	KPI             string
	Value           float64
	Source          string
}

// AUMDetail is one fund-type AUM observation from the assets table. The
// facts relation keeps only the Grand Total fund; this detail relation
// keeps every fund type for reference.
type AUMDetail struct {
	Insurer  string
	Year     int
	FundType string
	AUM      float64
	Source   string
}

// SolvencyDetail is one reported solvency ratio observation, including the
// raw period label the ratio was reported against.
type SolvencyDetail struct {
	Insurer       string
	Period        string
	Year          int
	SolvencyRatio float64
	Source        string
}

// Segment constants for Fact.IndividualGroup.
const (
	SegmentIndividual    = "Individual"
	SegmentGroup         = "Group"
	SegmentNotApplicable = "Not Applicable"
)
