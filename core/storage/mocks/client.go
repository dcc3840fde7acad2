package mocks

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client.
type Client struct {
	mock.Mock
}

func (m *Client) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	args := m.Called(ctx, bucketName, objectName, opts)
	if obj, ok := args.Get(0).(io.ReadCloser); ok {
		return obj, args.Error(1)
	}
	return nil, args.Error(1)
}

// OnObject stubs a successful read of bucket/object returning data.
func (m *Client) OnObject(bucket, object string, data []byte) *mock.Call {
	return m.On("GetObject", mock.Anything, bucket, object, mock.Anything).
		Return(io.NopCloser(bytes.NewReader(data)), nil)
}

// OnMissing stubs bucket/object as absent, the way minio reports a missing key.
func (m *Client) OnMissing(bucket, object string) *mock.Call {
	return m.On("GetObject", mock.Anything, bucket, object, mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."})
}
