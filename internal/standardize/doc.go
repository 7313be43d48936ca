// Package standardize canonicalizes free-text insurer names.
//
// Resolution runs clean -> exact dictionary lookup -> fuzzy similarity ->
// title-cased fallback, and every resolution is recorded in a Crosswalk so
// the raw-to-canonical mapping can be audited after a run.
package standardize
