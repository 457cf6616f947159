package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"MeloList/model"
)

// PlaylistRepository 定义歌单相关的数据库操作接口
type PlaylistRepository interface {
	// CreatePlaylist 创建新歌单
	CreatePlaylist(ctx context.Context, playlist *model.Playlist) error

	// GetPlaylistByID 根据ID获取歌单，不存在时返回 (nil, nil)
	GetPlaylistByID(ctx context.Context, id string) (*model.Playlist, error)

	// GetPlaylistsByOwner 获取用户拥有的所有歌单
	GetPlaylistsByOwner(ctx context.Context, ownerID string) ([]*model.PlaylistSummary, error)

	// DeletePlaylist 删除歌单，返回是否确有删除
	DeletePlaylist(ctx context.Context, id string) (bool, error)

	// AddSong 添加歌曲到歌单
	AddSong(ctx context.Context, entryID, playlistID, songID string) error

	// RemoveSong 从歌单中移除歌曲，返回是否确有删除
	RemoveSong(ctx context.Context, playlistID, songID string) (bool, error)

	// GetPlaylistWithSongs 获取歌单详情视图（含歌曲列表和所有者用户名）
	GetPlaylistWithSongs(ctx context.Context, id string) (*model.PlaylistWithSongs, error)
}

// MySQLPlaylistRepository MySQL实现的歌单仓库
type MySQLPlaylistRepository struct {
	db *sql.DB
}

// NewMySQLPlaylistRepository 创建新的MySQL歌单仓库实例
func NewMySQLPlaylistRepository(db *sql.DB) *MySQLPlaylistRepository {
	return &MySQLPlaylistRepository{db: db}
}

// CreatePlaylist 创建新歌单
func (r *MySQLPlaylistRepository) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	query := `
		INSERT INTO playlists (id, name, owner, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		playlist.ID,
		playlist.Name,
		playlist.OwnerID,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert playlist: %w", err)
	}

	return nil
}

// GetPlaylistByID 根据ID获取歌单
func (r *MySQLPlaylistRepository) GetPlaylistByID(ctx context.Context, id string) (*model.Playlist, error) {
	query := `
		SELECT id, name, owner, created_at, updated_at
		FROM playlists
		WHERE id = ?
	`

	playlist := &model.Playlist{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&playlist.ID,
		&playlist.Name,
		&playlist.OwnerID,
		&playlist.CreatedAt,
		&playlist.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan playlist row: %w", err)
	}

	return playlist, nil
}

// GetPlaylistsByOwner 获取用户拥有的所有歌单
func (r *MySQLPlaylistRepository) GetPlaylistsByOwner(ctx context.Context, ownerID string) ([]*model.PlaylistSummary, error) {
	query := `
		SELECT playlists.id, playlists.name, users.username
		FROM playlists
		LEFT JOIN users ON users.id = playlists.owner
		WHERE playlists.owner = ?
		ORDER BY playlists.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}
	defer rows.Close()

	var playlists []*model.PlaylistSummary
	for rows.Next() {
		p := &model.PlaylistSummary{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Username); err != nil {
			return nil, fmt.Errorf("failed to scan playlist row: %w", err)
		}
		playlists = append(playlists, p)
	}

	return playlists, rows.Err()
}

// DeletePlaylist 删除歌单，成员和账目记录随外键级联删除
func (r *MySQLPlaylistRepository) DeletePlaylist(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM playlists WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete playlist: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// AddSong 添加歌曲到歌单
// 注意：不做去重，同一首歌可以被重复添加
func (r *MySQLPlaylistRepository) AddSong(ctx context.Context, entryID, playlistID, songID string) error {
	query := `
		INSERT INTO playlist_songs (id, playlist_id, song_id, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, entryID, playlistID, songID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to add song to playlist: %w", err)
	}

	return nil
}

// RemoveSong 从歌单中移除歌曲
func (r *MySQLPlaylistRepository) RemoveSong(ctx context.Context, playlistID, songID string) (bool, error) {
	query := "DELETE FROM playlist_songs WHERE playlist_id = ? AND song_id = ?"

	result, err := r.db.ExecContext(ctx, query, playlistID, songID)
	if err != nil {
		return false, fmt.Errorf("failed to remove song from playlist: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// GetPlaylistWithSongs 获取歌单详情视图
// LEFT JOIN保证空歌单也能返回基本信息
func (r *MySQLPlaylistRepository) GetPlaylistWithSongs(ctx context.Context, id string) (*model.PlaylistWithSongs, error) {
	query := `
		SELECT playlists.id, playlists.name, users.username,
		       songs.id, songs.title, songs.performer
		FROM playlists
		LEFT JOIN users ON users.id = playlists.owner
		LEFT JOIN playlist_songs ON playlist_songs.playlist_id = playlists.id
		LEFT JOIN songs ON songs.id = playlist_songs.song_id
		WHERE playlists.id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist detail: %w", err)
	}
	defer rows.Close()

	var detail *model.PlaylistWithSongs
	for rows.Next() {
		var (
			playlistID, name    string
			username            sql.NullString
			songID, title, perf sql.NullString
		)
		if err := rows.Scan(&playlistID, &name, &username, &songID, &title, &perf); err != nil {
			return nil, fmt.Errorf("failed to scan playlist detail row: %w", err)
		}

		if detail == nil {
			detail = &model.PlaylistWithSongs{
				ID:       playlistID,
				Name:     name,
				Username: username.String,
				Songs:    []model.SongSummary{},
			}
		}

		if songID.Valid {
			detail.Songs = append(detail.Songs, model.SongSummary{
				ID:        songID.String,
				Title:     title.String,
				Performer: perf.String,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// 没有任何行说明歌单不存在
	return detail, nil
}
