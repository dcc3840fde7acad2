package reconcile

import (
	"creative-sync/core/creative"
	"creative-sync/core/feed"
)

// Plan classifies every named row without calling out. Removal rows get the
// cleanup action and target; the rest get the reconcile action.
func Plan(cfg feed.RunConfig, entries []feed.Entry) *Report {
	report := &Report{Pass: "plan", DryRun: true}

	correction := 0
	for _, entry := range entries {
		row := entry.Row
		if row.Name == "" {
			continue
		}

		res := RowResult{
			Position:   entry.Position,
			Target:     entry.Position,
			Name:       row.Name,
			CreativeID: row.CreativeID,
		}

		if row.IsRemoval() {
			res.Target = ClearTarget(entry, correction)
			res.Action = ActionRemove
			if cfg.DeleteCreativeOnRemove && row.CreativeID != "" {
				res.Action = ActionDelete
				correction++
			}
			report.add(res)
			continue
		}

		res.Action = Classify(row)
		if res.Action == ActionInvalid {
			if missing := row.Missing(); len(missing) > 0 {
				res.Err = &ValidationError{Missing: missing}
			} else {
				res.Err = creative.Validate(row)
			}
		}
		report.add(res)
	}
	return report
}

// Classify returns the reconcile action a row needs.
func Classify(row feed.Row) Action {
	if len(row.Missing()) > 0 {
		return ActionInvalid
	}
	if row.CreativeID == "" {
		if creative.Validate(row) != nil {
			return ActionInvalid
		}
		return ActionCreate
	}
	if row.Changed() {
		return ActionUpdate
	}
	return ActionNone
}
