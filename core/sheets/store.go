package sheets

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const (
	valueInputRaw       = "RAW"
	valueRenderUnformat = "UNFORMATTED_VALUE"
	insertRows          = "INSERT_ROWS"
)

// Store reads and writes cells of one spreadsheet through the Sheets API.
type Store struct {
	svc           *gsheets.Service
	spreadsheetID string
}

// New creates a Store for the spreadsheet using an authorised HTTP client.
// Extra options (for example option.WithEndpoint in tests) are appended.
func New(ctx context.Context, client *http.Client, spreadsheetID string, opts ...option.ClientOption) (*Store, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is required")
	}

	opts = append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)
	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Store{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// GetCell returns a single cell value, or nil when the cell is empty.
func (s *Store) GetCell(ctx context.Context, sheet string, row, col int) (any, error) {
	values, err := s.GetRange(ctx, sheet, row, col, 1, 1)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, nil
	}
	return values[0][0], nil
}

// SetCell writes a single cell value.
func (s *Store) SetCell(ctx context.Context, sheet string, row, col int, value any) error {
	return s.SetRange(ctx, sheet, row, col, [][]any{{value}})
}

// GetRange reads a block of cells. Trailing empty rows and cells are omitted by the API.
func (s *Store) GetRange(ctx context.Context, sheet string, row, col, numRows, numCols int) ([][]any, error) {
	area := A1(sheet, row, col, numRows, numCols)

	response, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, area).
		ValueRenderOption(valueRenderUnformat).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve range %s: %w", area, err)
	}

	return response.Values, nil
}

// SetRange writes a block of cells starting at the given corner.
func (s *Store) SetRange(ctx context.Context, sheet string, row, col int, values [][]any) error {
	if len(values) == 0 {
		return nil
	}

	width := 0
	for _, r := range values {
		if len(r) > width {
			width = len(r)
		}
	}
	area := A1(sheet, row, col, len(values), width)

	rq := gsheets.ValueRange{Range: area, MajorDimension: "ROWS", Values: values}
	if _, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, area, &rq).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("unable to update range %s: %w", area, err)
	}

	return nil
}

// ClearRange empties a block of cells.
func (s *Store) ClearRange(ctx context.Context, sheet string, row, col, numRows, numCols int) error {
	area := A1(sheet, row, col, numRows, numCols)

	rq := gsheets.BatchClearValuesRequest{Ranges: []string{area}}
	if _, err := s.svc.Spreadsheets.Values.BatchClear(s.spreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to clear range %s: %w", area, err)
	}

	return nil
}

// AppendRow adds a row after the last non-empty row of the sheet.
func (s *Store) AppendRow(ctx context.Context, sheet string, values []any) error {
	rows := gsheets.ValueRange{MajorDimension: "ROWS", Values: [][]any{values}}

	if _, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, quoteSheet(sheet), &rows).
		ValueInputOption(valueInputRaw).
		InsertDataOption(insertRows).
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("unable to append to %s: %w", sheet, err)
	}

	return nil
}

// ClearSheet empties every cell of the sheet.
func (s *Store) ClearSheet(ctx context.Context, sheet string) error {
	if _, err := s.svc.Spreadsheets.Values.Clear(s.spreadsheetID, quoteSheet(sheet), &gsheets.ClearValuesRequest{}).
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("unable to clear sheet %s: %w", sheet, err)
	}

	return nil
}
