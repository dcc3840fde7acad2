package dv360

import (
	"bytes"
	"io"
	"net/http"
	"strings"
)

// embeddedErrorTransport fails line item PATCH responses that answer 200 but
// carry an error object in the body. The generated client would decode those
// as a successful, empty line item.
type embeddedErrorTransport struct {
	base http.RoundTripper
}

func (t *embeddedErrorTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	resp, err := base.RoundTrip(req)
	if err != nil || req.Method != http.MethodPatch || resp.StatusCode != http.StatusOK ||
		!strings.Contains(req.URL.Path, "/lineItems/") {
		return resp, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	if apiErr := embeddedError(body); apiErr != nil {
		return nil, &UpstreamError{Op: "update_line_item", Status: http.StatusOK, Message: apiErr.Message}
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}
