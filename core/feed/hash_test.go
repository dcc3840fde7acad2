package feed

import (
	"crypto/md5"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_KnownDigest(t *testing.T) {
	row := sampleRow()
	row.CreativeID = "42"

	input := `["Save big","All week long","https://example.com/sale","https://cdn.example.com/banner.jpg","banner.jpg","1200","627","Shop now","42","111, 222",""]`
	sum := md5.Sum([]byte(input))

	assert.Equal(t, hex.EncodeToString(sum[:]), Fingerprint(row))
}

func TestFingerprint_NumericCellsKeepKind(t *testing.T) {
	row := FromValues([]any{
		"Success", "Spring Sale", "Save big", "All week long", "https://example.com/sale",
		"https://cdn.example.com/banner.jpg", "banner.jpg",
		float64(300), float64(250), "Go", float64(123456), float64(777), "",
	})

	// Digest of ["Save big",...,300,250,"Go",123456,777,""] as stored by earlier syncs.
	assert.Equal(t, "b84cb7e83ee3825d28276cc607278718", Fingerprint(row))
	assert.Equal(t, "300", row.Width)

	asText := row
	asText.typed = nil
	assert.NotEqual(t, Fingerprint(row), Fingerprint(asText), "text and numeric cells digest differently")

	edited := row
	edited.Width = "301"
	input := `["Save big","All week long","https://example.com/sale","https://cdn.example.com/banner.jpg","banner.jpg","301",250,"Go",123456,777,""]`
	sum := md5.Sum([]byte(input))
	assert.Equal(t, hex.EncodeToString(sum[:]), Fingerprint(edited), "edited cells digest as text")
}

func TestFingerprint_NoHTMLEscaping(t *testing.T) {
	row := Row{Headline: "Tom & Jerry <3"}

	input := `["Tom & Jerry <3","","","","","","","","","",""]`
	sum := md5.Sum([]byte(input))

	assert.Equal(t, hex.EncodeToString(sum[:]), Fingerprint(row))
}

func TestFingerprint_StableAndScoped(t *testing.T) {
	base := sampleRow()
	want := Fingerprint(base)

	assert.Equal(t, want, Fingerprint(base), "same input must give same digest")

	ignored := base
	ignored.Status = StatusFailed
	ignored.Name = "Renamed"
	ignored.Hash = "deadbeef"
	assert.Equal(t, want, Fingerprint(ignored), "status, name and hash are outside the digest")

	for _, mutate := range []func(*Row){
		func(r *Row) { r.Headline = "x" },
		func(r *Row) { r.Body = "x" },
		func(r *Row) { r.URL = "x" },
		func(r *Row) { r.Asset = "x" },
		func(r *Row) { r.Filename = "x" },
		func(r *Row) { r.Width = "1" },
		func(r *Row) { r.Height = "1" },
		func(r *Row) { r.CallToAction = "x" },
		func(r *Row) { r.CreativeID = "1" },
		func(r *Row) { r.LineItemID = "1" },
		func(r *Row) { r.Remove = RemoveMarker },
	} {
		changed := base
		mutate(&changed)
		assert.NotEqual(t, want, Fingerprint(changed))
	}
}

func TestRow_Changed(t *testing.T) {
	row := sampleRow()
	assert.True(t, row.Changed())

	row.Hash = Fingerprint(row)
	assert.False(t, row.Changed())

	row.Body = "edited"
	assert.True(t, row.Changed())
}
