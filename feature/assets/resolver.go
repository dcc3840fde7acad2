package assets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"creative-sync/core/drive"
	"creative-sync/core/gcs"
	"creative-sync/core/storage"

	"go.uber.org/zap"
)

// ErrNotFound is returned when the referenced folder, file or object does not exist.
var ErrNotFound = errors.New("asset not found")

// Kind is the storage an asset reference points at.
type Kind string

const (
	KindURL         Kind = "url"
	KindDriveFolder Kind = "drive_folder"
	KindDriveFile   Kind = "drive_file"
	KindS3          Kind = "s3"
	KindGCS         Kind = "gcs"
)

const drivePrefix = "drive:"

// Classify picks the resolution strategy for an asset reference.
func Classify(ref string) Kind {
	ref = strings.TrimSpace(ref)
	lower := strings.ToLower(ref)
	switch {
	case strings.HasPrefix(lower, drivePrefix):
		return KindDriveFolder
	case strings.HasPrefix(lower, "s3://"):
		return KindS3
	case strings.HasPrefix(lower, "gs://"):
		return KindGCS
	case strings.Contains(lower, "drive.google.com") && strings.Contains(lower, "/folders/"):
		return KindDriveFolder
	case strings.Contains(lower, "drive.google.com") && (strings.Contains(lower, "/file/d/") || strings.Contains(lower, "id=")):
		return KindDriveFile
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return KindURL
	default:
		// a bare identifier is a Drive folder id
		return KindDriveFolder
	}
}

// Uploader stores bytes as an advertiser asset and returns its media id.
type Uploader interface {
	UploadAsset(ctx context.Context, advertiserID, filename string, data []byte) (string, error)
}

// Resolver turns asset references into DV360 media ids.
type Resolver struct {
	uploader Uploader
	http     *http.Client
	drive    DriveReader
	s3       ObjectReader
	gcs      ObjectReader
	logger   *zap.Logger
}

// Option configures an optional asset source.
type Option func(*Resolver)

// WithDrive enables Drive folder and file references.
func WithDrive(d DriveReader) Option {
	return func(r *Resolver) { r.drive = d }
}

// WithS3 enables s3:// references.
func WithS3(o ObjectReader) Option {
	return func(r *Resolver) { r.s3 = o }
}

// WithGCS enables gs:// references.
func WithGCS(o ObjectReader) Option {
	return func(r *Resolver) { r.gcs = o }
}

// NewResolver creates a Resolver. httpClient fetches public URLs and should not carry credentials.
func NewResolver(uploader Uploader, httpClient *http.Client, logger *zap.Logger, opts ...Option) *Resolver {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	r := &Resolver{uploader: uploader, http: httpClient, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve fetches the asset bytes and uploads them under filename.
func (r *Resolver) Resolve(ctx context.Context, advertiserID, ref, filename string) (string, error) {
	data, err := r.Fetch(ctx, ref, filename)
	if err != nil {
		return "", err
	}
	return r.upload(ctx, advertiserID, filename, data)
}

// ResolveDriveFile uploads a Drive file addressed by id or file URL.
func (r *Resolver) ResolveDriveFile(ctx context.Context, advertiserID, fileIdentifier, filename string) (string, error) {
	if r.drive == nil {
		return "", fmt.Errorf("drive assets are not configured")
	}
	id, err := drive.ExtractFileID(fileIdentifier)
	if err != nil {
		return "", err
	}
	data, err := r.drive.DownloadFile(ctx, id)
	if err != nil {
		return "", notFound(err)
	}
	return r.upload(ctx, advertiserID, filename, data)
}

// Fetch returns the bytes an asset reference points at.
func (r *Resolver) Fetch(ctx context.Context, ref, filename string) ([]byte, error) {
	ref = strings.TrimSpace(ref)
	kind := Classify(ref)

	r.logger.Debug("Fetching asset", zap.String("kind", string(kind)), zap.String("ref", ref), zap.String("filename", filename))

	switch kind {
	case KindURL:
		return fetchURL(ctx, r.http, ref)

	case KindDriveFolder:
		if r.drive == nil {
			return nil, fmt.Errorf("drive assets are not configured")
		}
		folder := ref
		if strings.HasPrefix(strings.ToLower(ref), drivePrefix) {
			folder = ref[len(drivePrefix):]
		}
		data, err := r.drive.ReadFileByName(ctx, folder, filename)
		return data, notFound(err)

	case KindDriveFile:
		if r.drive == nil {
			return nil, fmt.Errorf("drive assets are not configured")
		}
		id, err := drive.ExtractFileID(ref)
		if err != nil {
			return nil, err
		}
		data, err := r.drive.DownloadFile(ctx, id)
		return data, notFound(err)

	case KindS3:
		if r.s3 == nil {
			return nil, fmt.Errorf("s3 assets are not configured")
		}
		bucket, prefix, err := storage.ParseURI(ref)
		if err != nil {
			return nil, err
		}
		data, err := r.s3.ReadObject(ctx, bucket, gcs.ObjectPath(prefix, filename))
		return data, notFound(err)

	case KindGCS:
		if r.gcs == nil {
			return nil, fmt.Errorf("gcs assets are not configured")
		}
		bucket, prefix, err := gcs.ParseURI(ref)
		if err != nil {
			return nil, err
		}
		data, err := r.gcs.ReadObject(ctx, bucket, gcs.ObjectPath(prefix, filename))
		return data, notFound(err)
	}

	return nil, fmt.Errorf("unsupported asset reference %q", ref)
}

func (r *Resolver) upload(ctx context.Context, advertiserID, filename string, data []byte) (string, error) {
	mediaID, err := r.uploader.UploadAsset(ctx, advertiserID, filename, data)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	r.logger.Info("Asset uploaded", zap.String("filename", filename), zap.String("media_id", mediaID))
	return mediaID, nil
}

// notFound tags backend not-found errors with ErrNotFound, keeping the cause in the chain.
func notFound(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, drive.ErrNotFound) || errors.Is(err, storage.ErrNotFound) || errors.Is(err, gcs.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
