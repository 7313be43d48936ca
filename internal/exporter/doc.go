// Package exporter writes the run's artifacts as CSV files: the facts
// table, the state breakdown, and the checks bundle (name crosswalk, QA
// log, data dictionary, fund and solvency detail tables).
//
// Files are written with a UTF-8 BOM so they open cleanly in Excel, the
// usual consumer of these outputs.
package exporter
