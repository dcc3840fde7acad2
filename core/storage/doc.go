// Package storage reads asset images from S3-compatible object storage.
//
// It wraps the MinIO Go client behind a narrow Client interface so the asset
// resolver can be tested with core/storage/mocks. A reference of the form
// s3://bucket/prefix is treated as a folder and the row's filename as the key
// inside it; ReadObject maps NoSuchKey and NoSuchBucket to ErrNotFound.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	data, err := storage.ReadObject(ctx, client, "assets", "spring/banner.jpg")
package storage
