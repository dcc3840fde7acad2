// Package lock keeps two reconciliation runs from editing the same spreadsheet at once.
package lock
