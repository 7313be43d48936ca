// Package pipeline orchestrates one handbook run: it materializes the
// source sheets, fans the independent table extractions out over a bounded
// worker pool, merges the per-worker accumulators in fixed table order,
// deduplicates the combined facts relation and runs the advisory QA checks.
//
// Extraction jobs share no mutable state. Each job writes into its own
// crosswalk and result slot; merging afterward in the fixed table order
// makes the run's output identical to a sequential execution.
package pipeline
