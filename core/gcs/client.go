package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// ErrNotFound is returned when the bucket or object does not exist.
var ErrNotFound = errors.New("gcs: not found")

// Client reads objects from Cloud Storage.
type Client struct {
	client *storage.Client
}

// NewClient creates a Cloud Storage client. Without options it uses application default credentials.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	c, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &Client{client: c}, nil
}

// ReadObject returns the full content of an object.
func (c *Client) ReadObject(ctx context.Context, bucket, object string) ([]byte, error) {
	r, err := c.client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return nil, fmt.Errorf("%w: gs://%s/%s", ErrNotFound, bucket, object)
		}
		return nil, fmt.Errorf("open GCS object reader: %w", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read GCS object: %w", err)
	}
	return data, nil
}

// Close releases the underlying client.
func (c *Client) Close() error {
	return c.client.Close()
}

// ParseURI splits gs://bucket/prefix into bucket and prefix.
func ParseURI(uri string) (bucket, prefix string, err error) {
	rest, ok := strings.CutPrefix(uri, "gs://")
	if !ok {
		return "", "", fmt.Errorf("not a gs:// uri: %q", uri)
	}
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("missing bucket in %q", uri)
	}
	return bucket, strings.Trim(prefix, "/"), nil
}

// ObjectPath joins a folder prefix and a filename into an object name.
func ObjectPath(prefix, filename string) string {
	if prefix == "" {
		return filename
	}
	return path.Join(prefix, filename)
}
