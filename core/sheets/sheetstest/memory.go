// Package sheetstest provides an in-memory spreadsheet for tests.
package sheetstest

import (
	"context"
	"sync"
)

// Memory is an in-memory spreadsheet with the same method set as sheets.Store.
// Rows and columns are 1-based. Writes counts every mutating call.
type Memory struct {
	mu     sync.Mutex
	sheets map[string]map[int][]any
	Writes int
}

// NewMemory returns an empty spreadsheet.
func NewMemory() *Memory {
	return &Memory{sheets: map[string]map[int][]any{}}
}

// Put stores a full row without counting it as a write.
func (m *Memory) Put(sheet string, row int, values []any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set(sheet, row, 1, values)
}

// Row returns a copy of the stored row.
func (m *Memory) Row(sheet string, row int) []any {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]any(nil), m.sheet(sheet)[row]...)
}

// Cell returns a single stored value, or nil.
func (m *Memory) Cell(sheet string, row, col int) any {
	r := m.Row(sheet, row)
	if col-1 < len(r) {
		return r[col-1]
	}
	return nil
}

// LastRow returns the highest row number holding any value.
func (m *Memory) LastRow(sheet string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastRow(sheet)
}

func (m *Memory) GetCell(ctx context.Context, sheet string, row, col int) (any, error) {
	return m.Cell(sheet, row, col), nil
}

func (m *Memory) SetCell(ctx context.Context, sheet string, row, col int, value any) error {
	return m.SetRange(ctx, sheet, row, col, [][]any{{value}})
}

func (m *Memory) GetRange(ctx context.Context, sheet string, row, col, numRows, numCols int) ([][]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	last := row + numRows - 1
	if numRows == 0 {
		last = m.lastRow(sheet)
	}

	var out [][]any
	for r := row; r <= last; r++ {
		stored := m.sheet(sheet)[r]
		cells := make([]any, 0, numCols)
		for c := col; c < col+numCols; c++ {
			if c-1 < len(stored) {
				cells = append(cells, stored[c-1])
			} else {
				cells = append(cells, "")
			}
		}
		out = append(out, trimEmpty(cells))
	}
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (m *Memory) SetRange(ctx context.Context, sheet string, row, col int, values [][]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	for i, r := range values {
		m.set(sheet, row+i, col, r)
	}
	return nil
}

func (m *Memory) ClearRange(ctx context.Context, sheet string, row, col, numRows, numCols int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	blank := make([]any, numCols)
	for i := range blank {
		blank[i] = ""
	}
	for r := row; r < row+numRows; r++ {
		m.set(sheet, r, col, blank)
	}
	return nil
}

func (m *Memory) AppendRow(ctx context.Context, sheet string, values []any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	m.set(sheet, m.lastRow(sheet)+1, 1, values)
	return nil
}

func (m *Memory) ClearSheet(ctx context.Context, sheet string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	delete(m.sheets, sheet)
	return nil
}

func (m *Memory) sheet(name string) map[int][]any {
	s, ok := m.sheets[name]
	if !ok {
		s = map[int][]any{}
		m.sheets[name] = s
	}
	return s
}

func (m *Memory) set(sheet string, row, col int, values []any) {
	s := m.sheet(sheet)
	stored := s[row]
	for len(stored) < col-1+len(values) {
		stored = append(stored, "")
	}
	copy(stored[col-1:], values)
	s[row] = stored
}

func (m *Memory) lastRow(sheet string) int {
	last := 0
	for r, cells := range m.sheet(sheet) {
		if r > last && len(trimEmpty(cells)) > 0 {
			last = r
		}
	}
	return last
}

func trimEmpty(cells []any) []any {
	end := len(cells)
	for end > 0 && (cells[end-1] == nil || cells[end-1] == "") {
		end--
	}
	return cells[:end]
}
