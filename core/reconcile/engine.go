package reconcile

import (
	"context"
	"fmt"
	"time"

	"creative-sync/core/creative"
	"creative-sync/core/dv360"
	"creative-sync/core/feed"
	"creative-sync/core/metrics"

	"go.uber.org/zap"
)

// Engine runs the cleanup and reconcile passes over a feed snapshot.
// Rows are processed one at a time; a failing row never stops the pass.
type Engine struct {
	api     CreativeAPI
	assets  AssetResolver
	rows    RowWriter
	audit   Auditor
	logger  *zap.Logger
	metrics metrics.Registry
}

// NewEngine wires an Engine.
func NewEngine(api CreativeAPI, assets AssetResolver, rows RowWriter, audit Auditor, logger *zap.Logger, m metrics.Registry) *Engine {
	if m == nil {
		m = metrics.NewNoOp()
	}
	return &Engine{
		api:     api,
		assets:  assets,
		rows:    rows,
		audit:   audit,
		logger:  logger,
		metrics: m,
	}
}

// Reconcile creates or updates the creative behind every named row and
// writes each row back to its own position as soon as it is done.
func (e *Engine) Reconcile(ctx context.Context, cfg feed.RunConfig, entries []feed.Entry) *Report {
	start := time.Now()
	report := &Report{Pass: PassReconcile}

	for _, entry := range entries {
		if entry.Row.Name == "" {
			continue
		}
		res := e.reconcileEntry(ctx, cfg, entry)
		report.add(res)
		e.metrics.IncrementRows(PassReconcile, outcome(res))
	}

	report.Duration = time.Since(start)
	e.metrics.RecordRunDuration(PassReconcile, report.Duration)
	return report
}

func (e *Engine) reconcileEntry(ctx context.Context, cfg feed.RunConfig, entry feed.Entry) RowResult {
	row := entry.Row
	l := e.logger.With(zap.Int("row", entry.Position), zap.String("name", row.Name))
	e.audit.Log(ctx, fmt.Sprintf("Processing row %d", entry.Position))

	action, err := e.reconcileRow(ctx, cfg, &row)
	if err != nil {
		row.Status = feed.StatusFailed
		l.Error("Row failed", zap.String("action", string(action)), zap.Error(err))
		e.audit.Log(ctx, fmt.Sprintf("Error: %v", err), zap.Int("row", entry.Position))
	} else {
		row.Status = feed.StatusSuccess
	}

	if werr := e.rows.WriteRow(ctx, entry.Position, row); werr != nil {
		l.Error("Failed to write row back", zap.Error(werr))
		if err == nil {
			err = werr
		}
	}

	return RowResult{
		Position:   entry.Position,
		Target:     entry.Position,
		Name:       row.Name,
		Action:     action,
		CreativeID: row.CreativeID,
		Status:     row.Status,
		Err:        err,
	}
}

// reconcileRow advances row in place. Hash is set only when every step succeeded.
func (e *Engine) reconcileRow(ctx context.Context, cfg feed.RunConfig, row *feed.Row) (Action, error) {
	if missing := row.Missing(); len(missing) > 0 {
		return ActionInvalid, &ValidationError{Missing: missing}
	}

	hash := feed.Fingerprint(*row)
	lineItems := row.LineItemIDs()

	var action Action
	switch {
	case row.CreativeID == "":
		action = ActionCreate
		id, err := e.create(ctx, cfg, *row)
		if err != nil {
			return action, err
		}
		row.CreativeID = id
		// the creative id is part of the fingerprinted columns
		hash = feed.Fingerprint(*row)

		e.audit.Log(ctx, fmt.Sprintf("Assigning creative %s to line items %v", id, lineItems))
		if err := e.assign(ctx, cfg, lineItems, id); err != nil {
			return action, err
		}

	case row.Hash != hash:
		action = ActionUpdate
		if err := e.update(ctx, cfg, *row); err != nil {
			return action, err
		}
		if err := e.assign(ctx, cfg, lineItems, row.CreativeID); err != nil {
			return action, err
		}

	default:
		action = ActionNone
	}

	row.Hash = hash
	return action, nil
}

func (e *Engine) create(ctx context.Context, cfg feed.RunConfig, row feed.Row) (string, error) {
	if err := creative.Validate(row); err != nil {
		return "", err
	}

	e.audit.Log(ctx, fmt.Sprintf("Creating creative %s", row.Name))

	mediaID, err := e.assets.Resolve(ctx, cfg.AdvertiserID, row.Asset, creative.Filename(row))
	if err != nil {
		return "", fmt.Errorf("resolve asset: %w", err)
	}
	e.audit.Log(ctx, fmt.Sprintf("Asset %s uploaded", mediaID))

	payload, err := creative.Build(row, mediaID, creative.StaticFrom(cfg))
	if err != nil {
		return "", err
	}

	created, err := e.api.CreateCreative(ctx, cfg.AdvertiserID, payload)
	if err != nil {
		return "", fmt.Errorf("create creative: %w", err)
	}
	e.audit.Log(ctx, fmt.Sprintf("Creative %s created", created.CreativeID))
	return created.CreativeID, nil
}

func (e *Engine) update(ctx context.Context, cfg feed.RunConfig, row feed.Row) error {
	e.audit.Log(ctx, fmt.Sprintf("Updating creative %s", row.CreativeID))

	live, err := e.api.GetCreative(ctx, cfg.AdvertiserID, row.CreativeID)
	if err != nil {
		return fmt.Errorf("get creative: %w", err)
	}

	next, mask, err := creative.Revise(live, row)
	if err != nil {
		return fmt.Errorf("revise creative: %w", err)
	}
	if len(mask) == 0 {
		e.logger.Debug("Live creative already matches row", zap.String("creative_id", row.CreativeID))
		return nil
	}
	if next.AdvertiserID == "" {
		next.AdvertiserID = cfg.AdvertiserID
	}
	if next.CreativeID == "" {
		next.CreativeID = row.CreativeID
	}

	if _, err := e.api.UpdateCreative(ctx, next, mask); err != nil {
		return fmt.Errorf("update creative: %w", err)
	}
	e.audit.Log(ctx, fmt.Sprintf("Creative %s updated (%v)", row.CreativeID, mask))
	return nil
}

// assign appends the creative to every line item. Duplicates are kept.
func (e *Engine) assign(ctx context.Context, cfg feed.RunConfig, lineItems []string, creativeID string) error {
	return e.eachLineItem(ctx, cfg, "assign", lineItems, creativeID, func(ids []string) []string {
		return append(ids, creativeID)
	})
}

// unassign drops every occurrence of the creative from every line item.
func (e *Engine) unassign(ctx context.Context, cfg feed.RunConfig, lineItems []string, creativeID string) error {
	return e.eachLineItem(ctx, cfg, "unassign", lineItems, creativeID, func(ids []string) []string {
		kept := make([]string, 0, len(ids))
		for _, id := range ids {
			if id != creativeID {
				kept = append(kept, id)
			}
		}
		return kept
	})
}

// eachLineItem applies edit to every line item's creative list. A failing
// line item is logged and the loop moves on.
func (e *Engine) eachLineItem(ctx context.Context, cfg feed.RunConfig, op string, lineItems []string, creativeID string, edit func([]string) []string) error {
	var errs []error
	for _, id := range lineItems {
		if err := e.editLineItem(ctx, cfg, id, edit); err != nil {
			e.logger.Error("Line item edit failed",
				zap.String("op", op),
				zap.String("line_item_id", id),
				zap.String("creative_id", creativeID),
				zap.Error(err),
			)
			e.audit.Log(ctx, fmt.Sprintf("Failed to %s creative %s on line item %s: %v", op, creativeID, id, err))
			errs = append(errs, fmt.Errorf("line item %s: %w", id, err))
		}
	}
	if len(errs) > 0 {
		return &AggregateError{Op: op, Errs: errs}
	}
	return nil
}

func (e *Engine) editLineItem(ctx context.Context, cfg feed.RunConfig, lineItemID string, edit func([]string) []string) error {
	li, err := e.api.GetLineItem(ctx, cfg.AdvertiserID, lineItemID)
	if err != nil {
		return err
	}
	_, err = e.api.UpdateLineItem(ctx, &dv360.LineItem{
		AdvertiserID: cfg.AdvertiserID,
		LineItemID:   lineItemID,
		CreativeIDs:  edit(li.CreativeIDs),
	})
	return err
}

func outcome(res RowResult) string {
	if res.Err != nil {
		return "failed"
	}
	return string(res.Action)
}
