// Package reconcile keeps DV360 creatives in step with the feed sheet.
//
// Two passes run over a snapshot of the feed, cleanup first:
//
//   - Cleanup retires rows marked "Remove": the creative is paused and taken
//     off its line items, optionally archived and deleted, and the row cleared.
//   - Reconcile walks the remaining named rows. A row without a creative id
//     gets its asset uploaded, a creative created and assigned to its line
//     items. A row whose fingerprint changed has the live creative patched and
//     is assigned again. Unchanged rows cost no remote call.
//
// Each row is written back as soon as it is processed, with status Success or
// Failed, so a crash loses at most one row of progress. Errors are recorded
// per row in the Report and never abort the pass. Nothing is retried.
//
// Plan runs the same classification without side effects, for dry runs.
package reconcile
