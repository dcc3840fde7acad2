// Package gcs reads asset images from Google Cloud Storage.
//
// An asset reference of the form gs://bucket/prefix is treated as a folder; the
// row's filename is the object name inside it.
package gcs
