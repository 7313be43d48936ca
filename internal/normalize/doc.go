// Package normalize contains the scalar conversions shared by every table
// extractor: fiscal-year parsing, Crore-to-Rupee conversion, distribution
// channel canonicalization, and product category label parsing.
//
// All parsers follow the pipeline's skip-and-continue policy: a value that
// cannot be interpreted yields an ok=false result instead of an error, and
// the caller drops the cell.
package normalize
