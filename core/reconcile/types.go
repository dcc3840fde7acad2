package reconcile

import (
	"context"
	"time"

	"creative-sync/core/dv360"
	"creative-sync/core/feed"

	"go.uber.org/zap"
)

// Pass names the two reconciliation passes.
const (
	PassCleanup   = "cleanup"
	PassReconcile = "reconcile"
)

// Action is what a pass did, or would do, with a row.
type Action string

const (
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionNone    Action = "none"
	ActionRemove  Action = "remove"
	ActionDelete  Action = "delete"
	ActionInvalid Action = "invalid"
)

// CreativeAPI is the remote creative and line item surface (see dv360.Client).
type CreativeAPI interface {
	GetCreative(ctx context.Context, advertiserID, creativeID string) (*dv360.Creative, error)
	CreateCreative(ctx context.Context, advertiserID string, creative *dv360.Creative) (*dv360.Creative, error)
	UpdateCreative(ctx context.Context, creative *dv360.Creative, mask []string) (*dv360.Creative, error)
	PauseCreative(ctx context.Context, advertiserID, creativeID string) error
	ArchiveCreative(ctx context.Context, advertiserID, creativeID string) error
	DeleteCreative(ctx context.Context, advertiserID, creativeID string) error
	GetLineItem(ctx context.Context, advertiserID, lineItemID string) (*dv360.LineItem, error)
	UpdateLineItem(ctx context.Context, lineItem *dv360.LineItem) (*dv360.LineItem, error)
}

// AssetResolver turns an asset reference into an uploaded media id.
type AssetResolver interface {
	Resolve(ctx context.Context, advertiserID, ref, filename string) (string, error)
}

// RowWriter persists a single feed row (see feed.Sheet).
type RowWriter interface {
	WriteRow(ctx context.Context, position int, row feed.Row) error
	ClearRow(ctx context.Context, position int) error
}

// Auditor receives the human readable run log.
type Auditor interface {
	Log(ctx context.Context, msg string, fields ...zap.Field)
}

// RowResult is the outcome of one row.
type RowResult struct {
	// Position is the sheet row the entry was read from.
	Position int `json:"position"`
	// Target is the sheet row that was written or cleared.
	Target     int    `json:"target"`
	Name       string `json:"name"`
	Action     Action `json:"action"`
	CreativeID string `json:"creative_id,omitempty"`
	Status     string `json:"status,omitempty"`
	Error      string `json:"error,omitempty"`

	Err error `json:"-"`
}

// Failed reports whether the row ended in error.
func (r RowResult) Failed() bool {
	return r.Err != nil
}

// Summary counts row outcomes.
type Summary struct {
	Rows      int `json:"rows"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Removed   int `json:"removed"`
	Deleted   int `json:"deleted"`
	Failed    int `json:"failed"`
}

// Report is the result of one pass.
type Report struct {
	Pass     string        `json:"pass"`
	DryRun   bool          `json:"dry_run"`
	Results  []RowResult   `json:"results"`
	Summary  Summary       `json:"summary"`
	Duration time.Duration `json:"duration_ns"`
}

func (r *Report) add(res RowResult) {
	if res.Err != nil && res.Error == "" {
		res.Error = res.Err.Error()
	}
	r.Results = append(r.Results, res)
	r.Summary.Rows++

	if res.Error != "" {
		r.Summary.Failed++
		return
	}
	switch res.Action {
	case ActionCreate:
		r.Summary.Created++
	case ActionUpdate:
		r.Summary.Updated++
	case ActionNone:
		r.Summary.Unchanged++
	case ActionRemove:
		r.Summary.Removed++
	case ActionDelete:
		r.Summary.Removed++
		r.Summary.Deleted++
	}
}

// Failures returns the results that ended in error.
func (r *Report) Failures() []RowResult {
	var out []RowResult
	for _, res := range r.Results {
		if res.Error != "" {
			out = append(out, res)
		}
	}
	return out
}
