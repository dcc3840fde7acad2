// Package utils provides small helpers shared across packages.
//
// Its main job is normalising spreadsheet cell values. The Sheets API hands back
// cells as any (string, float64 or bool depending on the render option), and the
// feed and config readers need them as plain strings, ints and bools.
package utils
