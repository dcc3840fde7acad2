package reconcile

import (
	"context"
	"fmt"
	"time"

	"creative-sync/core/feed"

	"go.uber.org/zap"
)

// Cleanup retires every named row marked for removal: pause, unassign from its
// line items and, when cfg.DeleteCreativeOnRemove is set, archive and delete.
// A retired row is cleared; a failing row is marked Failed and kept.
//
// The cleared row is entry.Ordinal + 2 minus the number of creatives deleted
// earlier in the pass. The count grows only on a full delete.
func (e *Engine) Cleanup(ctx context.Context, cfg feed.RunConfig, entries []feed.Entry) *Report {
	start := time.Now()
	report := &Report{Pass: PassCleanup}
	e.audit.Log(ctx, "Cleaning up...")

	correction := 0
	for _, entry := range entries {
		row := entry.Row
		if row.Name == "" || !row.IsRemoval() {
			continue
		}

		target := ClearTarget(entry, correction)
		if target != entry.Position {
			e.logger.Warn("Cleanup target differs from row position",
				zap.Int("row", entry.Position),
				zap.Int("target", target),
				zap.Int("correction", correction),
			)
		}

		res := RowResult{
			Position:   entry.Position,
			Target:     target,
			Name:       row.Name,
			Action:     ActionRemove,
			CreativeID: row.CreativeID,
		}

		deleted, err := e.retire(ctx, cfg, row)
		if deleted {
			res.Action = ActionDelete
			correction++
			e.metrics.IncrementDeletes()
		}
		if err == nil {
			err = e.rows.ClearRow(ctx, target)
		}

		if err != nil {
			row.Status = feed.StatusFailed
			res.Status = row.Status
			res.Err = err
			e.logger.Error("Removal failed", zap.Int("row", entry.Position), zap.String("name", row.Name), zap.Error(err))
			e.audit.Log(ctx, err.Error(), zap.Int("row", entry.Position))

			if werr := e.rows.WriteRow(ctx, target, row); werr != nil {
				e.logger.Error("Failed to write row back", zap.Int("target", target), zap.Error(werr))
			}
		}

		report.add(res)
		e.metrics.IncrementRows(PassCleanup, outcome(res))
	}

	report.Duration = time.Since(start)
	e.metrics.RecordRunDuration(PassCleanup, report.Duration)
	return report
}

// ClearTarget is the sheet row the cleanup pass writes for entry.
func ClearTarget(entry feed.Entry, correction int) int {
	return entry.Ordinal + feed.FirstDataRow - correction
}

// retire runs the remote half of a removal. deleted is true once the delete call succeeded.
func (e *Engine) retire(ctx context.Context, cfg feed.RunConfig, row feed.Row) (deleted bool, err error) {
	if row.CreativeID == "" {
		e.audit.Log(ctx, fmt.Sprintf("No creative recorded for %s, clearing row", row.Name))
		return false, nil
	}

	e.audit.Log(ctx, fmt.Sprintf("Pausing %s...", row.Name))
	if err := e.api.PauseCreative(ctx, cfg.AdvertiserID, row.CreativeID); err != nil {
		return false, fmt.Errorf("pause creative %s: %w", row.CreativeID, err)
	}

	if err := e.unassign(ctx, cfg, row.LineItemIDs(), row.CreativeID); err != nil {
		return false, err
	}

	if !cfg.DeleteCreativeOnRemove {
		return false, nil
	}

	e.audit.Log(ctx, fmt.Sprintf("Deleting %s...", row.Name))
	if err := e.api.ArchiveCreative(ctx, cfg.AdvertiserID, row.CreativeID); err != nil {
		return false, fmt.Errorf("archive creative %s: %w", row.CreativeID, err)
	}
	if err := e.api.DeleteCreative(ctx, cfg.AdvertiserID, row.CreativeID); err != nil {
		return false, fmt.Errorf("delete creative %s: %w", row.CreativeID, err)
	}
	return true, nil
}
