// Package assets resolves a feed row's asset reference to a DV360 media id.
//
// A reference may be a public URL, a Drive folder (URL, "drive:" prefix or bare id)
// searched by filename, a Drive file URL, or an s3:// or gs:// prefix joined with
// the filename. The bytes are then uploaded to the advertiser's asset library.
package assets
