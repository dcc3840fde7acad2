package dv360

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
)

// UpstreamError is a DV360 call that returned a non-success status or an embedded error.
type UpstreamError struct {
	Op      string
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("dv360 %s: http %d: %s", e.Op, e.Status, e.Message)
}

// upstreamError maps a failed call to an *UpstreamError when the API answered,
// and wraps transport failures otherwise.
func upstreamError(op string, err error) error {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		if ue.Op == "" {
			ue.Op = op
		}
		return ue
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		msg := gerr.Message
		if msg == "" {
			msg = strings.TrimSpace(gerr.Body)
		}
		return &UpstreamError{Op: op, Status: gerr.Code, Message: msg}
	}
	return fmt.Errorf("dv360 %s: %w", op, err)
}

// embeddedError returns the error object of a response body, or nil.
func embeddedError(body []byte) *APIError {
	var envelope struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}
	return envelope.Error
}
