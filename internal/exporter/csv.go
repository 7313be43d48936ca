package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

// CSVWriter writes artifact tables under a fixed output directory.
type CSVWriter struct {
	outDir string
	logger *slog.Logger
}

// NewCSVWriter creates a writer rooted at outDir. A nil logger falls back
// to slog.Default.
func NewCSVWriter(outDir string, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{outDir: outDir, logger: logger}
}

// WriteTable writes one CSV file relative to the output directory, creating
// parent directories as needed. A UTF-8 BOM is prepended for Excel
// compatibility.
func (w *CSVWriter) WriteTable(relPath string, headers []string, records [][]string) error {
	fullPath := filepath.Join(w.outDir, relPath)

	w.logger.Info("writing artifact",
		slog.String("path", fullPath),
		slog.Int("record_count", len(records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}

// formatValue renders a metric value in shortest decimal form: integral
// values carry no decimal point ("1505000000"), fractional values keep
// their precision ("95.3").
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
