// Package processing runs the feed passes for the CLI and the HTTP server.
//
// A processing run holds the spreadsheet lock for its whole duration, clears
// the Log sheet, reads the Config sheet once and then runs cleanup followed by
// reconcile on a fresh snapshot.
//
// # Routes
//
//   - POST /feed/process  cleanup + reconcile (?dry_run=true plans only)
//   - POST /feed/cleanup  removal pass only
//   - GET  /feed/plan     per-row classification, no side effects
//
// A run already in progress answers 409.
package processing
