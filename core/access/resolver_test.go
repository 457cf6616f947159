package access

import (
	"context"
	"errors"
	"testing"

	"MeloList/apperror"
	"MeloList/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlaylistGetter struct {
	playlists map[string]*model.Playlist
	err       error
}

func (f *fakePlaylistGetter) GetPlaylistByID(_ context.Context, id string) (*model.Playlist, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.playlists[id], nil
}

type fakeCollaborators struct {
	err   error
	calls int
}

func (f *fakeCollaborators) VerifyCollaborator(_ context.Context, _, _ string) error {
	f.calls++
	return f.err
}

func newTestResolver(collabErr error) (*Resolver, *fakeCollaborators) {
	playlists := &fakePlaylistGetter{playlists: map[string]*model.Playlist{
		"playlist-1": {ID: "playlist-1", Name: "Road Trip", OwnerID: "alice"},
	}}
	collaborators := &fakeCollaborators{err: collabErr}
	return NewResolver(playlists, collaborators), collaborators
}

func TestVerifyOwner(t *testing.T) {
	t.Run("owner passes", func(t *testing.T) {
		r, _ := newTestResolver(nil)
		require.NoError(t, r.VerifyOwner(context.Background(), "playlist-1", "alice"))
	})

	t.Run("missing playlist is not found", func(t *testing.T) {
		r, _ := newTestResolver(nil)
		err := r.VerifyOwner(context.Background(), "playlist-missing", "alice")
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("non-owner is authorization error", func(t *testing.T) {
		r, _ := newTestResolver(nil)
		err := r.VerifyOwner(context.Background(), "playlist-1", "bob")
		assert.True(t, apperror.IsAuthorization(err))
	})
}

func TestVerifyAccess(t *testing.T) {
	t.Run("owner passes without consulting collaborators", func(t *testing.T) {
		r, collaborators := newTestResolver(nil)
		require.NoError(t, r.VerifyAccess(context.Background(), "playlist-1", "alice"))
		assert.Zero(t, collaborators.calls)
	})

	t.Run("collaborator passes", func(t *testing.T) {
		r, collaborators := newTestResolver(nil)
		require.NoError(t, r.VerifyAccess(context.Background(), "playlist-1", "bob"))
		assert.Equal(t, 1, collaborators.calls)
	})

	t.Run("missing playlist is not found, collaborators never consulted", func(t *testing.T) {
		r, collaborators := newTestResolver(nil)
		err := r.VerifyAccess(context.Background(), "playlist-missing", "bob")
		assert.True(t, apperror.IsNotFound(err))
		assert.Zero(t, collaborators.calls)
	})

	t.Run("stranger gets the original authorization error", func(t *testing.T) {
		r, _ := newTestResolver(errors.New("not a collaborator"))
		err := r.VerifyAccess(context.Background(), "playlist-1", "mallory")
		assert.True(t, apperror.IsAuthorization(err))
	})

	t.Run("oracle failure is indistinguishable from non-collaborator", func(t *testing.T) {
		rDenied, _ := newTestResolver(errors.New("not a collaborator"))
		denied := rDenied.VerifyAccess(context.Background(), "playlist-1", "mallory")

		rBroken, _ := newTestResolver(errors.New("collaboration store unreachable"))
		broken := rBroken.VerifyAccess(context.Background(), "playlist-1", "mallory")

		// 协作判定方自身的失败原因不能泄露给调用方
		require.Error(t, denied)
		require.Error(t, broken)
		assert.Equal(t, denied.Error(), broken.Error())
		assert.True(t, apperror.IsAuthorization(broken))
	})

	t.Run("playlist store failure propagates as-is", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		r := NewResolver(&fakePlaylistGetter{err: storeErr}, &fakeCollaborators{})
		err := r.VerifyAccess(context.Background(), "playlist-1", "alice")
		require.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
		assert.False(t, apperror.IsAuthorization(err))
	})
}

func TestCollaborationOracle(t *testing.T) {
	t.Run("existing collaboration passes", func(t *testing.T) {
		oracle := NewCollaborationOracle(&fakeCollabRepo{exists: true})
		require.NoError(t, oracle.VerifyCollaborator(context.Background(), "playlist-1", "bob"))
	})

	t.Run("missing collaboration fails", func(t *testing.T) {
		oracle := NewCollaborationOracle(&fakeCollabRepo{})
		assert.Error(t, oracle.VerifyCollaborator(context.Background(), "playlist-1", "bob"))
	})
}

type fakeCollabRepo struct {
	exists bool
}

func (f *fakeCollabRepo) Add(_ context.Context, _ *model.Collaboration) error { return nil }

func (f *fakeCollabRepo) Remove(_ context.Context, _, _ string) (bool, error) { return false, nil }

func (f *fakeCollabRepo) Exists(_ context.Context, _, _ string) (bool, error) {
	return f.exists, nil
}
