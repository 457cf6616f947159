package export

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"MeloList/apperror"
	"MeloList/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOwnerVerifier struct {
	err error
}

func (f *fakeOwnerVerifier) VerifyOwner(_ context.Context, _, _ string) error {
	return f.err
}

type capturePublisher struct {
	queue string
	body  []byte
	calls int
	err   error
}

func (c *capturePublisher) Publish(queue string, body []byte) error {
	c.calls++
	c.queue = queue
	c.body = body
	return c.err
}

func TestRequestExport(t *testing.T) {
	ctx := context.Background()

	t.Run("owner request lands on the queue", func(t *testing.T) {
		publisher := &capturePublisher{}
		producer := NewProducer(&fakeOwnerVerifier{}, publisher, "export:playlists")

		require.NoError(t, producer.RequestExport(ctx, "playlist-123", "alice", "x@y.com"))
		assert.Equal(t, 1, publisher.calls)
		assert.Equal(t, "export:playlists", publisher.queue)

		var req model.ExportRequest
		require.NoError(t, json.Unmarshal(publisher.body, &req))
		assert.Equal(t, "playlist-123", req.PlaylistID)
		assert.Equal(t, "x@y.com", req.TargetEmail)
	})

	t.Run("message carries the expected field names", func(t *testing.T) {
		publisher := &capturePublisher{}
		producer := NewProducer(&fakeOwnerVerifier{}, publisher, "export:playlists")

		require.NoError(t, producer.RequestExport(ctx, "playlist-123", "alice", "x@y.com"))
		assert.JSONEq(t, `{"playlistId":"playlist-123","targetEmail":"x@y.com"}`, string(publisher.body))
	})

	t.Run("non-owner never reaches the queue", func(t *testing.T) {
		publisher := &capturePublisher{}
		denied := apperror.Authorization("you are not allowed to access this resource")
		producer := NewProducer(&fakeOwnerVerifier{err: denied}, publisher, "export:playlists")

		err := producer.RequestExport(ctx, "playlist-123", "bob", "x@y.com")
		assert.True(t, apperror.IsAuthorization(err))
		assert.Zero(t, publisher.calls)
	})

	t.Run("missing playlist never reaches the queue", func(t *testing.T) {
		publisher := &capturePublisher{}
		missing := apperror.NotFound("playlist not found")
		producer := NewProducer(&fakeOwnerVerifier{err: missing}, publisher, "export:playlists")

		err := producer.RequestExport(ctx, "playlist-missing", "alice", "x@y.com")
		assert.True(t, apperror.IsNotFound(err))
		assert.Zero(t, publisher.calls)
	})

	t.Run("publish failure surfaces to the caller", func(t *testing.T) {
		publisher := &capturePublisher{err: errors.New("broker unreachable")}
		producer := NewProducer(&fakeOwnerVerifier{}, publisher, "export:playlists")

		err := producer.RequestExport(ctx, "playlist-123", "alice", "x@y.com")
		require.Error(t, err)
	})
}

func TestPublisherFunc(t *testing.T) {
	var gotQueue string
	p := PublisherFunc(func(queue string, body []byte) error {
		gotQueue = queue
		return nil
	})
	require.NoError(t, p.Publish("export:playlists", []byte("{}")))
	assert.Equal(t, "export:playlists", gotQueue)
}
