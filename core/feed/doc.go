// Package feed models the feed spreadsheet: one row per native creative.
//
// A row has fourteen fixed columns (status, name, headline, body, url, asset,
// filename, width, height, call to action, creative id, line item ids, remove flag,
// content hash). Data starts at sheet row 2.
//
// # Fingerprint
//
// Fingerprint digests the columns from headline through remove. It is written into
// the hash column after a successful sync; a row whose stored hash still matches is
// treated as unchanged and skipped on the next run.
//
// # Sheet access
//
// Sheet binds a Table (normally the Sheets API store) to the feed sheet and offers
// Snapshot, WriteRow and ClearRow. LoadRunConfig reads the per-run settings from
// column B of the Config sheet.
package feed
