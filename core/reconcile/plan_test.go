package reconcile_test

import (
	"testing"

	"creative-sync/core/feed"
	"creative-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	existing := newRow("spring")
	existing.CreativeID = "7"
	existing.Hash = feed.Fingerprint(existing)

	changed := existing
	changed.Body = "New body"

	missing := newRow("spring")
	missing.Asset = ""

	zeroWidth := newRow("spring")
	zeroWidth.Width = "-1"

	tests := []struct {
		name string
		row  feed.Row
		want reconcile.Action
	}{
		{"New", newRow("spring"), reconcile.ActionCreate},
		{"Unchanged", existing, reconcile.ActionNone},
		{"Changed", changed, reconcile.ActionUpdate},
		{"Missing", missing, reconcile.ActionInvalid},
		{"BadDimension", zeroWidth, reconcile.ActionInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reconcile.Classify(tt.row))
		})
	}
}

func TestPlan(t *testing.T) {
	existing := newRow("kept")
	existing.CreativeID = "2"
	existing.Hash = feed.Fingerprint(existing)

	removed := newRow("gone")
	removed.CreativeID = "1"
	removed.Remove = feed.RemoveMarker

	invalid := newRow("broken")
	invalid.LineItemID = ""

	entries := []feed.Entry{
		{Position: 2, Ordinal: 0, Row: removed},
		{Position: 3, Ordinal: 1, Row: existing},
		{Position: 4, Ordinal: 2, Row: newRow("fresh")},
		{Position: 6, Ordinal: 3, Row: invalid},
		{Position: 7, Ordinal: 4, Row: newRow("")},
	}

	cfg := runConfig
	cfg.DeleteCreativeOnRemove = true
	report := reconcile.Plan(cfg, entries)

	assert.True(t, report.DryRun)
	require.Len(t, report.Results, 4)
	assert.Equal(t, reconcile.ActionDelete, report.Results[0].Action)
	assert.Equal(t, 2, report.Results[0].Target)
	assert.Equal(t, reconcile.ActionNone, report.Results[1].Action)
	assert.Equal(t, reconcile.ActionCreate, report.Results[2].Action)
	assert.Equal(t, reconcile.ActionInvalid, report.Results[3].Action)
	assert.Equal(t, "Please provide missing required fields: Line Item ID", report.Results[3].Error)

	assert.Equal(t, reconcile.Summary{Rows: 4, Created: 1, Unchanged: 1, Removed: 1, Deleted: 1, Failed: 1}, report.Summary)
}
