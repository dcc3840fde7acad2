package storage_test

import (
	"context"
	"errors"
	"testing"

	"creative-sync/core/storage"
	"creative-sync/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Region:    "us-east-1",
		})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
		})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestReadObject(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		client := new(mocks.Client)
		client.OnObject("assets", "spring/a.jpg", []byte("IMG"))

		data, err := storage.ReadObject(ctx, client, "assets", "spring/a.jpg")
		require.NoError(t, err)
		assert.Equal(t, []byte("IMG"), data)
		client.AssertExpectations(t)
	})

	t.Run("NoSuchKey", func(t *testing.T) {
		client := new(mocks.Client)
		client.OnMissing("assets", "missing.jpg")

		_, err := storage.ReadObject(ctx, client, "assets", "missing.jpg")
		assert.True(t, errors.Is(err, storage.ErrNotFound))
	})

	t.Run("OtherError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "assets", "a.jpg", mock.Anything).
			Return(nil, errors.New("connection refused"))

		_, err := storage.ReadObject(ctx, client, "assets", "a.jpg")
		require.Error(t, err)
		assert.False(t, errors.Is(err, storage.ErrNotFound))
	})
}

func TestParseURI(t *testing.T) {
	b, p, err := storage.ParseURI("s3://assets/campaigns/spring")
	require.NoError(t, err)
	assert.Equal(t, "assets", b)
	assert.Equal(t, "campaigns/spring", p)

	_, _, err = storage.ParseURI("gs://assets")
	assert.Error(t, err)
}
