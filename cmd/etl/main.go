package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"irdacli/internal/config"
	"irdacli/internal/exporter"
	"irdacli/internal/infrastructure"
	"irdacli/internal/pipeline"
)

func main() {
	part1 := flag.String("part1", "", "path to the Part I workbook (overrides config)")
	part5 := flag.String("part5", "", "path to the Part V workbook (overrides config)")
	outDir := flag.String("out", "", "output directory for CSV artifacts (overrides config)")
	configFile := flag.String("config", "", "path to config.yaml")
	workers := flag.Int("workers", 0, "number of parallel table extractors (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *part1 != "" {
		cfg.Input.Part1 = *part1
	}
	if *part5 != "" {
		cfg.Input.Part5 = *part5
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *workers > 0 {
		cfg.Pipeline.Workers = *workers
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogger()

	runID := uuid.New().String()
	logger = logger.With("run_id", runID)

	logger.Info("Starting handbook extraction",
		"part1", cfg.Input.Part1,
		"part5", cfg.Input.Part5,
		"output", cfg.Output.Dir,
		"workers", cfg.Pipeline.Workers)

	start := time.Now()
	runner := pipeline.NewRunner(logger, pipeline.Config{
		Part1Path:      cfg.Input.Part1,
		Part5Path:      cfg.Input.Part5,
		Workers:        cfg.Pipeline.Workers,
		FuzzyThreshold: cfg.Pipeline.FuzzyThreshold,
	})

	result, err := runner.Run(context.Background())
	if err != nil {
		logger.Error("Extraction failed", "error", err)
		os.Exit(1)
	}

	writer := exporter.NewCSVWriter(cfg.Output.Dir, logger)
	if err := writer.WriteAll(result); err != nil {
		logger.Error("Failed to write artifacts", "error", err)
		os.Exit(1)
	}

	logger.Info("Extraction complete",
		"facts", len(result.Facts),
		"state_records", len(result.StateBreakdown),
		"insurers", result.Crosswalk.Len(),
		"duration", time.Since(start).String())
}
