package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"creative-sync/core/dv360"
	"creative-sync/core/storage"
)

// maxAssetBytes caps a single downloaded image.
const maxAssetBytes = 50 << 20

// DriveReader is the Drive access the resolver needs (see core/drive.Store).
type DriveReader interface {
	ReadFileByName(ctx context.Context, folderIdentifier, filename string) ([]byte, error)
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}

// ObjectReader reads one object from a bucket (see core/gcs.Client).
type ObjectReader interface {
	ReadObject(ctx context.Context, bucket, object string) ([]byte, error)
}

// S3Reader adapts a storage.Client to ObjectReader.
type S3Reader struct {
	Client storage.Client
}

func (s S3Reader) ReadObject(ctx context.Context, bucket, object string) ([]byte, error) {
	return storage.ReadObject(ctx, s.Client, bucket, object)
}

// fetchURL downloads a public URL. Anything but 200 is an upstream failure.
func fetchURL(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &dv360.UpstreamError{Op: "fetch_asset", Status: resp.StatusCode, Message: url}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	if len(data) > maxAssetBytes {
		return nil, fmt.Errorf("asset %s exceeds %d bytes", url, maxAssetBytes)
	}
	return data, nil
}
