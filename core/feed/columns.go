package feed

// Column positions in the feed sheet, zero based.
const (
	ColStatus = iota
	ColName
	ColHeadline
	ColBody
	ColURL
	ColAsset
	ColFilename
	ColWidth
	ColHeight
	ColCallToAction
	ColCreativeID
	ColLineItemID
	ColRemove
	ColHash

	// NumColumns is the fixed width of a feed row.
	NumColumns
)

// FirstDataRow is the 1-based sheet row of the first feed entry; row 1 holds headers.
const FirstDataRow = 2

// Status values written to the status column.
const (
	StatusSuccess = "Success"
	StatusFailed  = "Failed"
)

// RemoveMarker flags a row for removal when present in the remove column.
const RemoveMarker = "Remove"

// requiredColumns lists the columns a row must carry before it can be synced,
// with the names reported back to the sheet user.
var requiredColumns = []struct {
	col  int
	name string
}{
	{ColName, "Name"},
	{ColHeadline, "Headline"},
	{ColBody, "Body"},
	{ColURL, "URL"},
	{ColAsset, "Asset"},
	{ColFilename, "Filename"},
	{ColWidth, "Width"},
	{ColHeight, "Height"},
	{ColCallToAction, "Call to Action"},
	{ColLineItemID, "Line Item ID"},
}
