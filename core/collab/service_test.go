package collab

import (
	"context"
	"testing"

	"MeloList/apperror"
	"MeloList/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type key struct {
	playlistID string
	userID     string
}

type fakeCollabRepo struct {
	grants map[key]*model.Collaboration
}

func newFakeCollabRepo() *fakeCollabRepo {
	return &fakeCollabRepo{grants: make(map[key]*model.Collaboration)}
}

func (f *fakeCollabRepo) Add(_ context.Context, c *model.Collaboration) error {
	f.grants[key{c.PlaylistID, c.UserID}] = c
	return nil
}

func (f *fakeCollabRepo) Remove(_ context.Context, playlistID, userID string) (bool, error) {
	k := key{playlistID, userID}
	if _, ok := f.grants[k]; !ok {
		return false, nil
	}
	delete(f.grants, k)
	return true, nil
}

func (f *fakeCollabRepo) Exists(_ context.Context, playlistID, userID string) (bool, error) {
	_, ok := f.grants[key{playlistID, userID}]
	return ok, nil
}

type fakeUserRepo struct {
	users map[string]bool
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	f.users[user.ID] = true
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, _ string) (*model.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Exists(_ context.Context, id string) (bool, error) {
	return f.users[id], nil
}

// ownerOnly 只认一个所有者
type ownerOnly struct {
	ownerID string
}

func (o ownerOnly) VerifyOwner(_ context.Context, _, userID string) error {
	if userID != o.ownerID {
		return apperror.Authorization("you are not allowed to access this resource")
	}
	return nil
}

func newTestService() (*Service, *fakeCollabRepo) {
	grants := newFakeCollabRepo()
	users := &fakeUserRepo{users: map[string]bool{"bob": true}}
	return NewService(grants, users, ownerOnly{ownerID: "alice"}), grants
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("owner grants collaboration", func(t *testing.T) {
		s, grants := newTestService()
		c, err := s.Add(ctx, "playlist-1", "bob", "alice")
		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)

		exists, err := grants.Exists(ctx, "playlist-1", "bob")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("non-owner cannot grant", func(t *testing.T) {
		s, grants := newTestService()
		_, err := s.Add(ctx, "playlist-1", "bob", "bob")
		assert.True(t, apperror.IsAuthorization(err))
		assert.Empty(t, grants.grants)
	})

	t.Run("unknown collaborator is not found", func(t *testing.T) {
		s, _ := newTestService()
		_, err := s.Add(ctx, "playlist-1", "user-missing", "alice")
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("owner revokes collaboration", func(t *testing.T) {
		s, grants := newTestService()
		_, err := s.Add(ctx, "playlist-1", "bob", "alice")
		require.NoError(t, err)

		require.NoError(t, s.Remove(ctx, "playlist-1", "bob", "alice"))
		assert.Empty(t, grants.grants)
	})

	t.Run("collaborator cannot revoke even their own grant", func(t *testing.T) {
		s, _ := newTestService()
		_, err := s.Add(ctx, "playlist-1", "bob", "alice")
		require.NoError(t, err)

		err = s.Remove(ctx, "playlist-1", "bob", "bob")
		assert.True(t, apperror.IsAuthorization(err))
	})

	t.Run("revoking an absent grant is not found", func(t *testing.T) {
		s, _ := newTestService()
		err := s.Remove(ctx, "playlist-1", "bob", "alice")
		assert.True(t, apperror.IsNotFound(err))
	})
}
