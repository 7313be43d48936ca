// Package handbook extracts normalized fact records from the irregular
// tables of the IRDAI Insurance Handbook workbooks.
//
// # Architecture
//
// Each source table has its own extractor because each has a distinct,
// undocumented header geometry: multi-row headers mixing insurer names,
// fiscal years and metric labels across irregular column spans. Every
// extractor follows the same shape:
//
//  1. Header discovery: locate the header rows by content sniffing (a known
//     fiscal-year string, a month name), returning an empty result when the
//     sentinel is absent.
//  2. Column index construction: fold left to right over the header columns,
//     carrying the current insurer/year/fund forward across blank cells and
//     resetting the insurer on aggregate labels (Total, Grand Total, ...) so
//     subtotal spans never emit.
//  3. Row walk: skip blank and section-header rows, then emit one Fact per
//     (row, column) with a resolved dimension context and a parseable cell.
//
// # Failure policy
//
// Extractors never return errors for malformed content. A missing header
// sentinel yields an empty slice, an unparseable cell is skipped, and a row
// without a resolvable insurer is dropped. Only workbook open failures are
// fatal, and those surface from OpenWorkbook.
package handbook
