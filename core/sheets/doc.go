// Package sheets wraps the Google Sheets v4 API as a small cell store.
//
// Callers address cells with 1-based row and column numbers; the package turns
// them into A1 ranges, reads with UNFORMATTED_VALUE so numbers and checkboxes
// keep their types, and writes with RAW input so identifiers are stored verbatim.
//
// # Operations
//
//   - GetCell / SetCell: one cell
//   - GetRange / SetRange / ClearRange: rectangular blocks
//   - AppendRow: add a row after the last used row (used by the run log)
//   - ClearSheet: empty a whole sheet
//
// The sheetstest subpackage provides an in-memory Memory store with the same
// method set for tests.
package sheets
