package reconcile

import (
	"fmt"
	"strings"
)

// ValidationError lists the required columns a row is missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "Please provide missing required fields: " + strings.Join(e.Missing, ", ")
}

// AggregateError collects per line item failures of one assign or unassign loop.
type AggregateError struct {
	Op   string
	Errs []error
}

func (e *AggregateError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%s failed for %d line item(s): %s", e.Op, len(e.Errs), strings.Join(msgs, "; "))
}

func (e *AggregateError) Unwrap() []error {
	return e.Errs
}
