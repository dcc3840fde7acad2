package sheets

import (
	"fmt"
	"strings"
)

// ColumnLetter converts a 1-based column number to its A1 letters (1 -> A, 27 -> AA).
func ColumnLetter(col int) string {
	var b []byte
	for col > 0 {
		col--
		b = append(b, byte('A'+col%26))
		col /= 26
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// A1 builds a range reference on the named sheet from 1-based coordinates.
// A numRows of zero leaves the range open-ended downwards.
func A1(sheet string, row, col, numRows, numCols int) string {
	if numCols < 1 {
		numCols = 1
	}
	start := fmt.Sprintf("%s%d", ColumnLetter(col), row)
	endCol := ColumnLetter(col + numCols - 1)

	var end string
	switch {
	case numRows == 0:
		end = endCol
	case numRows == 1 && numCols == 1:
		return quoteSheet(sheet) + "!" + start
	default:
		end = fmt.Sprintf("%s%d", endCol, row+numRows-1)
	}
	return quoteSheet(sheet) + "!" + start + ":" + end
}

func quoteSheet(name string) string {
	if strings.ContainsAny(name, " '!:") {
		return "'" + strings.ReplaceAll(name, "'", "''") + "'"
	}
	return name
}
