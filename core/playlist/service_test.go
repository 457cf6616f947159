package playlist

import (
	"context"
	"errors"
	"sort"
	"testing"

	"MeloList/apperror"
	"MeloList/core/access"
	"MeloList/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type membership struct {
	entryID string
	songID  string
}

// fakePlaylistRepo 内存版歌单仓库，同时充当访问判定器的歌单来源
type fakePlaylistRepo struct {
	playlists map[string]*model.Playlist
	usernames map[string]string
	members   map[string][]membership
}

func newFakePlaylistRepo() *fakePlaylistRepo {
	return &fakePlaylistRepo{
		playlists: make(map[string]*model.Playlist),
		usernames: make(map[string]string),
		members:   make(map[string][]membership),
	}
}

func (f *fakePlaylistRepo) CreatePlaylist(_ context.Context, playlist *model.Playlist) error {
	f.playlists[playlist.ID] = playlist
	return nil
}

func (f *fakePlaylistRepo) GetPlaylistByID(_ context.Context, id string) (*model.Playlist, error) {
	return f.playlists[id], nil
}

func (f *fakePlaylistRepo) GetPlaylistsByOwner(_ context.Context, ownerID string) ([]*model.PlaylistSummary, error) {
	var summaries []*model.PlaylistSummary
	for _, p := range f.playlists {
		if p.OwnerID == ownerID {
			summaries = append(summaries, &model.PlaylistSummary{
				ID: p.ID, Name: p.Name, Username: f.usernames[p.OwnerID],
			})
		}
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	return summaries, nil
}

func (f *fakePlaylistRepo) DeletePlaylist(_ context.Context, id string) (bool, error) {
	if _, ok := f.playlists[id]; !ok {
		return false, nil
	}
	delete(f.playlists, id)
	delete(f.members, id)
	return true, nil
}

func (f *fakePlaylistRepo) AddSong(_ context.Context, entryID, playlistID, songID string) error {
	f.members[playlistID] = append(f.members[playlistID], membership{entryID: entryID, songID: songID})
	return nil
}

func (f *fakePlaylistRepo) RemoveSong(_ context.Context, playlistID, songID string) (bool, error) {
	entries := f.members[playlistID]
	for i, entry := range entries {
		if entry.songID == songID {
			f.members[playlistID] = append(entries[:i], entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePlaylistRepo) GetPlaylistWithSongs(_ context.Context, id string) (*model.PlaylistWithSongs, error) {
	p, ok := f.playlists[id]
	if !ok {
		return nil, nil
	}
	detail := &model.PlaylistWithSongs{
		ID: p.ID, Name: p.Name, Username: f.usernames[p.OwnerID],
		Songs: []model.SongSummary{},
	}
	for _, entry := range f.members[id] {
		detail.Songs = append(detail.Songs, model.SongSummary{ID: entry.songID, Title: entry.songID})
	}
	return detail, nil
}

type fakeSongRepo struct {
	songs map[string]bool
}

func (f *fakeSongRepo) CreateSong(_ context.Context, song *model.Song) error {
	f.songs[song.ID] = true
	return nil
}

func (f *fakeSongRepo) GetSongByID(_ context.Context, _ string) (*model.Song, error) {
	return nil, nil
}

func (f *fakeSongRepo) ListSongs(_ context.Context) ([]*model.SongSummary, error) {
	return nil, nil
}

func (f *fakeSongRepo) Exists(_ context.Context, id string) (bool, error) {
	return f.songs[id], nil
}

type fakeActivityRepo struct {
	records []*model.PlaylistActivity
	err     error
}

func (f *fakeActivityRepo) Record(_ context.Context, activity *model.PlaylistActivity) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, activity)
	return nil
}

func (f *fakeActivityRepo) ListByPlaylist(_ context.Context, playlistID string) ([]*model.ActivityRecord, error) {
	var out []*model.ActivityRecord
	// 倒序：新的在前
	for i := len(f.records) - 1; i >= 0; i-- {
		r := f.records[i]
		if r.PlaylistID == playlistID {
			out = append(out, &model.ActivityRecord{
				Username: r.UserID, Title: r.SongID, Action: r.Action, Time: r.Time,
			})
		}
	}
	return out, nil
}

// denyAllCollaborators 没有任何协作者
type denyAllCollaborators struct{}

func (denyAllCollaborators) VerifyCollaborator(_ context.Context, playlistID, userID string) error {
	return errors.New("user " + userID + " is not a collaborator on playlist " + playlistID)
}

// allowCollaborators 指定用户是所有歌单的协作者
type allowCollaborators struct {
	userID string
}

func (a allowCollaborators) VerifyCollaborator(_ context.Context, _, userID string) error {
	if userID == a.userID {
		return nil
	}
	return errors.New("not a collaborator")
}

type fixture struct {
	service    *Service
	playlists  *fakePlaylistRepo
	songs      *fakeSongRepo
	activities *fakeActivityRepo
}

func newFixture(collaborators access.CollaboratorVerifier) *fixture {
	playlists := newFakePlaylistRepo()
	playlists.usernames["alice"] = "alice"
	playlists.playlists["playlist-1"] = &model.Playlist{ID: "playlist-1", Name: "Road Trip", OwnerID: "alice"}

	songs := &fakeSongRepo{songs: map[string]bool{"song-1": true, "song-2": true}}
	activities := &fakeActivityRepo{}
	resolver := access.NewResolver(playlists, collaborators)

	return &fixture{
		service:    NewService(playlists, songs, activities, resolver),
		playlists:  playlists,
		songs:      songs,
		activities: activities,
	}
}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(denyAllCollaborators{})

	playlist, err := f.service.Create(ctx, "Workout", "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, playlist.ID)
	assert.Equal(t, "alice", playlist.OwnerID)

	summaries, err := f.service.List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, summaries, 2)

	empty, err := f.service.List(ctx, "bob")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestDeletePlaylist(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can delete", func(t *testing.T) {
		f := newFixture(denyAllCollaborators{})
		require.NoError(t, f.service.Delete(ctx, "playlist-1", "alice"))
		assert.NotContains(t, f.playlists.playlists, "playlist-1")
	})

	t.Run("collaborator cannot delete", func(t *testing.T) {
		f := newFixture(allowCollaborators{userID: "bob"})
		err := f.service.Delete(ctx, "playlist-1", "bob")
		assert.True(t, apperror.IsAuthorization(err))
		assert.Contains(t, f.playlists.playlists, "playlist-1")
	})
}

func TestAddSong(t *testing.T) {
	ctx := context.Background()

	t.Run("owner adds a song and the ledger records it", func(t *testing.T) {
		f := newFixture(denyAllCollaborators{})
		require.NoError(t, f.service.AddSong(ctx, "playlist-1", "song-1", "alice"))

		assert.Len(t, f.playlists.members["playlist-1"], 1)
		require.Len(t, f.activities.records, 1)
		entry := f.activities.records[0]
		assert.Equal(t, model.ActivityActionAdd, entry.Action)
		assert.Equal(t, "song-1", entry.SongID)
		assert.Equal(t, "alice", entry.UserID)
		assert.False(t, entry.Time.IsZero())
	})

	t.Run("collaborator can add", func(t *testing.T) {
		f := newFixture(allowCollaborators{userID: "bob"})
		require.NoError(t, f.service.AddSong(ctx, "playlist-1", "song-1", "bob"))
		assert.Equal(t, "bob", f.activities.records[0].UserID)
	})

	t.Run("stranger cannot add", func(t *testing.T) {
		f := newFixture(denyAllCollaborators{})
		err := f.service.AddSong(ctx, "playlist-1", "song-1", "mallory")
		assert.True(t, apperror.IsAuthorization(err))
		assert.Empty(t, f.playlists.members["playlist-1"])
		assert.Empty(t, f.activities.records)
	})

	t.Run("missing song is not found and leaves no trace", func(t *testing.T) {
		f := newFixture(denyAllCollaborators{})
		err := f.service.AddSong(ctx, "playlist-1", "song-missing", "alice")
		assert.True(t, apperror.IsNotFound(err))
		assert.Empty(t, f.playlists.members["playlist-1"])
		assert.Empty(t, f.activities.records)
	})

	t.Run("ledger failure surfaces but keeps the membership", func(t *testing.T) {
		f := newFixture(denyAllCollaborators{})
		f.activities.err = errors.New("ledger unavailable")

		err := f.service.AddSong(ctx, "playlist-1", "song-1", "alice")
		require.Error(t, err)
		assert.Len(t, f.playlists.members["playlist-1"], 1)
	})
}

func TestRemoveSong(t *testing.T) {
	ctx := context.Background()

	t.Run("add then remove leaves an empty playlist and two ledger entries", func(t *testing.T) {
		f := newFixture(denyAllCollaborators{})
		require.NoError(t, f.service.AddSong(ctx, "playlist-1", "song-1", "alice"))
		require.NoError(t, f.service.RemoveSong(ctx, "playlist-1", "song-1", "alice"))

		assert.Empty(t, f.playlists.members["playlist-1"])
		require.Len(t, f.activities.records, 2)
		assert.Equal(t, model.ActivityActionAdd, f.activities.records[0].Action)
		assert.Equal(t, model.ActivityActionDelete, f.activities.records[1].Action)
	})

	t.Run("removing an absent membership fails without a ledger entry", func(t *testing.T) {
		f := newFixture(denyAllCollaborators{})
		err := f.service.RemoveSong(ctx, "playlist-1", "song-1", "alice")
		assert.True(t, apperror.IsInvariant(err))
		assert.Empty(t, f.activities.records)
	})
}

func TestGetSongs(t *testing.T) {
	ctx := context.Background()

	t.Run("detail view reflects memberships", func(t *testing.T) {
		f := newFixture(denyAllCollaborators{})
		require.NoError(t, f.service.AddSong(ctx, "playlist-1", "song-1", "alice"))
		require.NoError(t, f.service.AddSong(ctx, "playlist-1", "song-2", "alice"))

		detail, err := f.service.GetSongs(ctx, "playlist-1", "alice")
		require.NoError(t, err)
		assert.Equal(t, "Road Trip", detail.Name)
		assert.Len(t, detail.Songs, 2)
	})

	t.Run("stranger cannot read", func(t *testing.T) {
		f := newFixture(denyAllCollaborators{})
		_, err := f.service.GetSongs(ctx, "playlist-1", "mallory")
		assert.True(t, apperror.IsAuthorization(err))
	})

	t.Run("missing playlist is not found even for its would-be owner", func(t *testing.T) {
		f := newFixture(denyAllCollaborators{})
		_, err := f.service.GetSongs(ctx, "playlist-missing", "alice")
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestActivities(t *testing.T) {
	ctx := context.Background()
	f := newFixture(denyAllCollaborators{})

	require.NoError(t, f.service.AddSong(ctx, "playlist-1", "song-1", "alice"))
	require.NoError(t, f.service.RemoveSong(ctx, "playlist-1", "song-1", "alice"))

	records, err := f.service.Activities(ctx, "playlist-1", "alice")
	require.NoError(t, err)
	require.Len(t, records, 2)
	// 新的在前
	assert.Equal(t, model.ActivityActionDelete, records[0].Action)
	assert.Equal(t, model.ActivityActionAdd, records[1].Action)

	_, err = f.service.Activities(ctx, "playlist-1", "mallory")
	assert.True(t, apperror.IsAuthorization(err))
}
