package feed

import (
	"context"
	"fmt"
)

// Table is the slice of the spreadsheet store the feed needs.
type Table interface {
	GetRange(ctx context.Context, sheet string, row, col, numRows, numCols int) ([][]any, error)
	SetRange(ctx context.Context, sheet string, row, col int, values [][]any) error
	ClearRange(ctx context.Context, sheet string, row, col, numRows, numCols int) error
}

// Sheet reads and writes feed rows on one named sheet.
type Sheet struct {
	table Table
	name  string
}

// NewSheet binds a Table to the named feed sheet.
func NewSheet(table Table, name string) *Sheet {
	return &Sheet{table: table, name: name}
}

// Name returns the sheet name.
func (s *Sheet) Name() string {
	return s.name
}

// Snapshot reads every data row once. Blank rows are skipped but keep their position.
func (s *Sheet) Snapshot(ctx context.Context) ([]Entry, error) {
	values, err := s.table.GetRange(ctx, s.name, FirstDataRow, 1, 0, NumColumns)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed sheet %s: %w", s.name, err)
	}

	entries := make([]Entry, 0, len(values))
	for i, raw := range values {
		row := FromValues(raw)
		if row.Blank() {
			continue
		}
		entries = append(entries, Entry{
			Position: FirstDataRow + i,
			Ordinal:  len(entries),
			Row:      row,
		})
	}
	return entries, nil
}

// WriteRow overwrites the full row at the given 1-based sheet row.
func (s *Sheet) WriteRow(ctx context.Context, position int, row Row) error {
	if err := s.table.SetRange(ctx, s.name, position, 1, [][]any{row.Values()}); err != nil {
		return fmt.Errorf("failed to write feed row %d: %w", position, err)
	}
	return nil
}

// ClearRow empties all feed columns at the given 1-based sheet row.
func (s *Sheet) ClearRow(ctx context.Context, position int) error {
	if err := s.table.ClearRange(ctx, s.name, position, 1, 1, NumColumns); err != nil {
		return fmt.Errorf("failed to clear feed row %d: %w", position, err)
	}
	return nil
}
