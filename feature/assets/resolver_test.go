package assets_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"creative-sync/core/drive"
	"creative-sync/core/dv360"
	"creative-sync/core/gcs"
	"creative-sync/core/storage"
	"creative-sync/core/storage/mocks"
	"creative-sync/feature/assets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) UploadAsset(ctx context.Context, advertiserID, filename string, data []byte) (string, error) {
	args := m.Called(ctx, advertiserID, filename, data)
	return args.String(0), args.Error(1)
}

type mockDrive struct {
	mock.Mock
}

func (m *mockDrive) ReadFileByName(ctx context.Context, folderIdentifier, filename string) ([]byte, error) {
	args := m.Called(ctx, folderIdentifier, filename)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *mockDrive) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	args := m.Called(ctx, fileID)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

type mockObjects struct {
	mock.Mock
}

func (m *mockObjects) ReadObject(ctx context.Context, bucket, object string) ([]byte, error) {
	args := m.Called(ctx, bucket, object)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		ref  string
		want assets.Kind
	}{
		{"https://cdn.example.com/a.jpg", assets.KindURL},
		{"http://cdn.example.com/a.jpg", assets.KindURL},
		{"https://drive.google.com/drive/folders/abc123", assets.KindDriveFolder},
		{"drive:abc123", assets.KindDriveFolder},
		{"abc123", assets.KindDriveFolder},
		{"https://drive.google.com/file/d/xyz/view", assets.KindDriveFile},
		{"https://drive.google.com/open?id=xyz", assets.KindDriveFile},
		{"s3://assets/spring", assets.KindS3},
		{"gs://assets/spring", assets.KindGCS},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, assets.Classify(tt.ref))
		})
	}
}

func TestResolveURL(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.jpg" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("JPEG"))
	}))
	defer srv.Close()

	t.Run("Success", func(t *testing.T) {
		up := new(mockUploader)
		up.On("UploadAsset", ctx, "111", "a.jpg", []byte("JPEG")).Return("m-1", nil)

		r := assets.NewResolver(up, srv.Client(), zap.NewNop())
		id, err := r.Resolve(ctx, "111", srv.URL+"/a.jpg", "a.jpg")
		require.NoError(t, err)
		assert.Equal(t, "m-1", id)
		up.AssertExpectations(t)
	})

	t.Run("Non200IsUpstreamError", func(t *testing.T) {
		up := new(mockUploader)
		r := assets.NewResolver(up, srv.Client(), zap.NewNop())

		_, err := r.Resolve(ctx, "111", srv.URL+"/missing.jpg", "missing.jpg")
		var upstream *dv360.UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, http.StatusNotFound, upstream.Status)
		up.AssertNotCalled(t, "UploadAsset", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UploadFailure", func(t *testing.T) {
		up := new(mockUploader)
		up.On("UploadAsset", ctx, "111", "a.jpg", []byte("JPEG")).Return("", errors.New("quota"))

		r := assets.NewResolver(up, srv.Client(), zap.NewNop())
		_, err := r.Resolve(ctx, "111", srv.URL+"/a.jpg", "a.jpg")
		assert.ErrorContains(t, err, "quota")
	})
}

func TestResolveDriveFolder(t *testing.T) {
	ctx := context.Background()

	t.Run("PrefixedFolder", func(t *testing.T) {
		up := new(mockUploader)
		dr := new(mockDrive)
		dr.On("ReadFileByName", ctx, "folder-1", "a.jpg").Return([]byte("IMG"), nil)
		up.On("UploadAsset", ctx, "111", "a.jpg", []byte("IMG")).Return("m-2", nil)

		r := assets.NewResolver(up, nil, zap.NewNop(), assets.WithDrive(dr))
		id, err := r.Resolve(ctx, "111", "drive:folder-1", "a.jpg")
		require.NoError(t, err)
		assert.Equal(t, "m-2", id)
		dr.AssertExpectations(t)
	})

	t.Run("MissingFile", func(t *testing.T) {
		dr := new(mockDrive)
		dr.On("ReadFileByName", ctx, "folder-1", "a.jpg").Return(nil, drive.ErrNotFound)

		r := assets.NewResolver(new(mockUploader), nil, zap.NewNop(), assets.WithDrive(dr))
		_, err := r.Resolve(ctx, "111", "folder-1", "a.jpg")
		assert.ErrorIs(t, err, assets.ErrNotFound)
		assert.ErrorIs(t, err, drive.ErrNotFound)
	})

	t.Run("NotConfigured", func(t *testing.T) {
		r := assets.NewResolver(new(mockUploader), nil, zap.NewNop())
		_, err := r.Resolve(ctx, "111", "folder-1", "a.jpg")
		assert.ErrorContains(t, err, "not configured")
	})
}

func TestResolveDriveFile(t *testing.T) {
	ctx := context.Background()
	up := new(mockUploader)
	dr := new(mockDrive)
	dr.On("DownloadFile", ctx, "xyz").Return([]byte("PNG"), nil)
	up.On("UploadAsset", ctx, "111", "logo.png", []byte("PNG")).Return("m-3", nil)

	r := assets.NewResolver(up, nil, zap.NewNop(), assets.WithDrive(dr))
	id, err := r.ResolveDriveFile(ctx, "111", "https://drive.google.com/file/d/xyz/view", "logo.png")
	require.NoError(t, err)
	assert.Equal(t, "m-3", id)
}

func TestResolveBuckets(t *testing.T) {
	ctx := context.Background()

	t.Run("GCS", func(t *testing.T) {
		up := new(mockUploader)
		objs := new(mockObjects)
		objs.On("ReadObject", ctx, "assets", "spring/a.jpg").Return([]byte("G"), nil)
		up.On("UploadAsset", ctx, "111", "a.jpg", []byte("G")).Return("m-4", nil)

		r := assets.NewResolver(up, nil, zap.NewNop(), assets.WithGCS(objs))
		id, err := r.Resolve(ctx, "111", "gs://assets/spring", "a.jpg")
		require.NoError(t, err)
		assert.Equal(t, "m-4", id)
	})

	t.Run("GCSMissing", func(t *testing.T) {
		objs := new(mockObjects)
		objs.On("ReadObject", ctx, "assets", "a.jpg").Return(nil, gcs.ErrNotFound)

		r := assets.NewResolver(new(mockUploader), nil, zap.NewNop(), assets.WithGCS(objs))
		_, err := r.Resolve(ctx, "111", "gs://assets", "a.jpg")
		assert.ErrorIs(t, err, assets.ErrNotFound)
	})

	t.Run("S3ThroughMinio", func(t *testing.T) {
		client := new(mocks.Client)
		client.OnMissing("assets", "spring/a.jpg")

		r := assets.NewResolver(new(mockUploader), nil, zap.NewNop(), assets.WithS3(assets.S3Reader{Client: client}))
		_, err := r.Resolve(ctx, "111", "s3://assets/spring", "a.jpg")
		assert.ErrorIs(t, err, assets.ErrNotFound)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
