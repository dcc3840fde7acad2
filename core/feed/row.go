package feed

import (
	"strings"

	"creative-sync/core/utils"
)

// Row is one feed entry. Cells are kept as the strings the sheet shows,
// untrimmed, so writing a row back leaves hand-typed columns as they were.
type Row struct {
	Status       string `json:"status"`
	Name         string `json:"name"`
	Headline     string `json:"headline"`
	Body         string `json:"body"`
	URL          string `json:"url"`
	Asset        string `json:"asset"`
	Filename     string `json:"filename"`
	Width        string `json:"width"`
	Height       string `json:"height"`
	CallToAction string `json:"call_to_action"`
	CreativeID   string `json:"creative_id"`
	LineItemID   string `json:"line_item_id"`
	Remove       string `json:"remove"`
	Hash         string `json:"hash"`

	// typed holds the non-string cell values the row was read with, by column.
	// It stays nil for rows built from strings only.
	typed []any
}

// Entry is a row together with where it was read from.
type Entry struct {
	// Position is the 1-based sheet row the entry was read from.
	Position int
	// Ordinal is the 0-based index of the entry among the non-blank rows of the snapshot.
	Ordinal int
	Row     Row
}

// FromValues builds a Row from raw cell values. Short rows are padded with empty cells.
// Numeric and boolean cells keep their kind for hashing and write-back.
func FromValues(values []any) Row {
	cells := make([]string, NumColumns)
	var typed []any
	for i := 0; i < NumColumns && i < len(values); i++ {
		cells[i] = utils.ToString(values[i])
		switch values[i].(type) {
		case nil, string:
		default:
			if typed == nil {
				typed = make([]any, NumColumns)
			}
			typed[i] = values[i]
		}
	}
	row := fromCells(cells)
	row.typed = typed
	return row
}

func fromCells(c []string) Row {
	return Row{
		Status:       c[ColStatus],
		Name:         c[ColName],
		Headline:     c[ColHeadline],
		Body:         c[ColBody],
		URL:          c[ColURL],
		Asset:        c[ColAsset],
		Filename:     c[ColFilename],
		Width:        c[ColWidth],
		Height:       c[ColHeight],
		CallToAction: c[ColCallToAction],
		CreativeID:   c[ColCreativeID],
		LineItemID:   c[ColLineItemID],
		Remove:       c[ColRemove],
		Hash:         c[ColHash],
	}
}

// Cells returns the row in column order.
func (r Row) Cells() []string {
	c := make([]string, NumColumns)
	c[ColStatus] = r.Status
	c[ColName] = r.Name
	c[ColHeadline] = r.Headline
	c[ColBody] = r.Body
	c[ColURL] = r.URL
	c[ColAsset] = r.Asset
	c[ColFilename] = r.Filename
	c[ColWidth] = r.Width
	c[ColHeight] = r.Height
	c[ColCallToAction] = r.CallToAction
	c[ColCreativeID] = r.CreativeID
	c[ColLineItemID] = r.LineItemID
	c[ColRemove] = r.Remove
	c[ColHash] = r.Hash
	return c
}

// Values returns the row as cell values ready to be written back.
// Cells still holding the value they were read with are written back as that value.
func (r Row) Values() []any {
	return r.values(r.Cells())
}

func (r Row) values(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = r.value(i, c)
	}
	return out
}

// value returns the typed cell for col when the text still matches it.
func (r Row) value(col int, text string) any {
	if col < len(r.typed) && r.typed[col] != nil && utils.ToString(r.typed[col]) == text {
		return r.typed[col]
	}
	return text
}

// Blank reports whether every cell is empty or whitespace.
func (r Row) Blank() bool {
	for _, c := range r.Cells() {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// IsRemoval reports whether the row is flagged for removal.
func (r Row) IsRemoval() bool {
	return strings.TrimSpace(r.Remove) == RemoveMarker
}

// Missing returns the names of required columns that are empty, in column order.
func (r Row) Missing() []string {
	cells := r.Cells()
	var missing []string
	for _, rc := range requiredColumns {
		if strings.TrimSpace(cells[rc.col]) == "" {
			missing = append(missing, rc.name)
		}
	}
	return missing
}

// LineItemIDs splits the line item column on commas, trimming whitespace and dropping empties.
func (r Row) LineItemIDs() []string {
	var ids []string
	for _, part := range strings.Split(r.LineItemID, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Changed reports whether the row content differs from what was last synced.
func (r Row) Changed() bool {
	return r.Hash != Fingerprint(r)
}
