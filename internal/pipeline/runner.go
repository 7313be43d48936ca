package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"irdacli/internal/handbook"
	"irdacli/internal/standardize"
)

// Config tunes one pipeline run.
type Config struct {
	Part1Path string // Part I workbook (tables 2-29)
	Part5Path string // Part V workbook (tables 100, 102)
	// Workers bounds the extraction pool. Defaults to 4.
	Workers int
	// FuzzyThreshold overrides the standardizer's default when positive.
	FuzzyThreshold float64
}

// Result is everything one run produces, ready for export.
type Result struct {
	Facts           []handbook.Fact
	StateBreakdown  []handbook.StateDetail
	AUMDetails      []handbook.AUMDetail
	SolvencyDetails []handbook.SolvencyDetail
	Crosswalk       *standardize.Crosswalk
	QA              *QALog
}

// Runner drives extraction, combination and validation for one handbook
// pair.
type Runner struct {
	logger *slog.Logger
	cfg    Config
}

// NewRunner creates a Runner. A nil logger falls back to slog.Default.
func NewRunner(logger *slog.Logger, cfg Config) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	return &Runner{logger: logger, cfg: cfg}
}

// tableResult is the private accumulator one extraction job fills in.
// Jobs share nothing; results merge in fixed table order afterward.
type tableResult struct {
	facts    []handbook.Fact
	states   []handbook.StateDetail
	aum      []handbook.AUMDetail
	solvency []handbook.SolvencyDetail
	xwalk    *standardize.Crosswalk
	// qaCount and qaUnit drive the per-table extraction log entry;
	// a zero count suppresses it (layout misses surface only as absence).
	qaCount int
	qaUnit  string
}

type tableJob struct {
	check string
	run   func(std *standardize.Standardizer) tableResult
}

// Run executes the full pipeline: materialize sheets, extract every table
// across the worker pool, merge, dedupe, validate. Only workbook open
// failures return an error.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	part1, err := handbook.OpenWorkbook(r.cfg.Part1Path)
	if err != nil {
		return nil, fmt.Errorf("part I workbook: %w", err)
	}
	defer part1.Close()

	part5, err := handbook.OpenWorkbook(r.cfg.Part5Path)
	if err != nil {
		return nil, fmt.Errorf("part V workbook: %w", err)
	}
	defer part5.Close()

	// Materialize every grid up front so extraction jobs run on plain cell
	// matrices and never touch the workbook concurrently.
	sheet := func(w *handbook.Workbook, name string) handbook.Grid {
		g, ok := w.Sheet(name)
		if !ok {
			r.logger.Warn("sheet not found, table will be empty", slog.String("sheet", name))
			return nil
		}
		return g
	}
	var (
		g2   = sheet(part1, "2")
		g3   = sheet(part1, "3")
		g6   = sheet(part1, "6")
		g8   = sheet(part1, "8")
		g10  = sheet(part1, "10")
		g11  = sheet(part1, "11")
		g12  = sheet(part1, "12")
		g21  = sheet(part1, "21")
		g23  = sheet(part1, "23")
		g28  = sheet(part1, "28")
		g29  = sheet(part1, "29")
		g100 = sheet(part5, "100")
		g102 = sheet(part5, "102")
	)

	factsOnly := func(extract func(handbook.Grid, *standardize.Standardizer) []handbook.Fact, g handbook.Grid) func(*standardize.Standardizer) tableResult {
		return func(std *standardize.Standardizer) tableResult {
			facts := extract(g, std)
			return tableResult{facts: facts, xwalk: std.Crosswalk(), qaCount: len(facts), qaUnit: "records"}
		}
	}
	stateTable := func(extract func(handbook.Grid, *standardize.Standardizer) ([]handbook.Fact, []handbook.StateDetail), g handbook.Grid) func(*standardize.Standardizer) tableResult {
		return func(std *standardize.Standardizer) tableResult {
			facts, states := extract(g, std)
			return tableResult{facts: facts, states: states, xwalk: std.Crosswalk(), qaCount: len(states), qaUnit: "state records"}
		}
	}

	jobs := []tableJob{
		{check: "Table 2 Extraction", run: factsOnly(handbook.ExtractTotalPremium, g2)},
		{check: "Table 3 Extraction", run: factsOnly(handbook.ExtractNewBusinessPremium, g3)},
		{check: "Table 6 Extraction", run: stateTable(handbook.ExtractStateIndividualBusiness, g6)},
		{check: "Table 8 Extraction", run: stateTable(handbook.ExtractStateGroupBusiness, g8)},
		{check: "Table 10 Extraction", run: factsOnly(handbook.ExtractPoliciesInForce, g10)},
		{check: "Table 11 Extraction", run: factsOnly(handbook.ExtractSumAssuredInForce, g11)},
		{check: "Table 12 Extraction", run: factsOnly(handbook.ExtractLinkedPremium, g12)},
		{check: "Table 21 Extraction", run: func(std *standardize.Standardizer) tableResult {
			facts, details := handbook.ExtractAssetsUnderManagement(g21, std)
			return tableResult{facts: facts, aum: details, xwalk: std.Crosswalk(), qaCount: len(details), qaUnit: "records"}
		}},
		{check: "Table 23 Extraction", run: func(std *standardize.Standardizer) tableResult {
			facts, details := handbook.ExtractSolvencyRatio(g23, std)
			return tableResult{facts: facts, solvency: details, xwalk: std.Crosswalk(), qaCount: len(details), qaUnit: "records"}
		}},
		{check: "Table 28 Extraction", run: factsOnly(handbook.ExtractPersistency, g28)},
		{check: "Table 29 Extraction", run: func(std *standardize.Standardizer) tableResult {
			details := handbook.ExtractOfficesByState(g29, std)
			return tableResult{states: details, xwalk: std.Crosswalk(), qaCount: len(details), qaUnit: "state-level records"}
		}},
		{check: "Table 100 Extraction", run: factsOnly(handbook.ExtractIndividualByChannel, g100)},
		{check: "Table 102 Extraction", run: factsOnly(handbook.ExtractGroupByChannel, g102)},
	}

	results := make([]tableResult, len(jobs))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(r.cfg.Workers)
	for i, job := range jobs {
		i, job := i, job
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			std := standardize.New(standardize.NewCrosswalk(), standardize.Config{Threshold: r.cfg.FuzzyThreshold})
			results[i] = job.run(std)
			r.logger.Debug("table extracted",
				slog.String("table", job.check),
				slog.Int("count", results[i].qaCount))
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// Merge per-worker accumulators in fixed table order so output is
	// identical to a sequential run.
	res := &Result{
		Crosswalk: standardize.NewCrosswalk(),
		QA:        &QALog{},
	}
	var perTable [][]handbook.Fact
	for i, tr := range results {
		perTable = append(perTable, tr.facts)
		res.StateBreakdown = append(res.StateBreakdown, tr.states...)
		res.AUMDetails = append(res.AUMDetails, tr.aum...)
		res.SolvencyDetails = append(res.SolvencyDetails, tr.solvency...)
		res.Crosswalk.Merge(tr.xwalk)
		if tr.qaCount > 0 {
			res.QA.Append(jobs[i].check, StatusPass, fmt.Sprintf("%d %s", tr.qaCount, tr.qaUnit))
		}
	}

	combined := Combine(perTable...)
	rawTotal := 0
	for _, t := range perTable {
		rawTotal += len(t)
	}
	if removed := rawTotal - len(combined); removed > 0 {
		res.QA.Append("Deduplication", StatusInfo, fmt.Sprintf("Removed %d duplicates", removed))
	}
	res.Facts = combined

	Validate(res.Facts, res.QA)

	r.logger.Info("pipeline complete",
		slog.Int("facts", len(res.Facts)),
		slog.Int("state_records", len(res.StateBreakdown)),
		slog.Int("crosswalk_entries", res.Crosswalk.Len()))

	return res, nil
}
