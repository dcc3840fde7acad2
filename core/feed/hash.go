package feed

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
)

// Fingerprint digests the content columns of a row, headline through remove.
// Status, name and the stored hash never affect the result.
//
// The digest input is the compact JSON array of those cells without HTML escaping.
// Cells read as numbers are encoded as JSON numbers and text cells as strings.
func Fingerprint(r Row) string {
	content := r.values(r.Cells())[ColHeadline:ColHash]

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(content)

	sum := md5.Sum(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return hex.EncodeToString(sum[:])
}
