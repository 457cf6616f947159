package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"MeloList/model"
)

// SongRepository 定义歌曲相关的数据库操作接口
type SongRepository interface {
	// CreateSong 创建新歌曲
	CreateSong(ctx context.Context, song *model.Song) error

	// GetSongByID 根据ID获取歌曲，不存在时返回 (nil, nil)
	GetSongByID(ctx context.Context, id string) (*model.Song, error)

	// ListSongs 获取全部歌曲的列表投影
	ListSongs(ctx context.Context) ([]*model.SongSummary, error)

	// Exists 检查歌曲是否存在
	Exists(ctx context.Context, id string) (bool, error)
}

// MySQLSongRepository MySQL实现的歌曲仓库
type MySQLSongRepository struct {
	db *sql.DB
}

// NewMySQLSongRepository 创建新的MySQL歌曲仓库实例
func NewMySQLSongRepository(db *sql.DB) *MySQLSongRepository {
	return &MySQLSongRepository{db: db}
}

// CreateSong 创建新歌曲
func (r *MySQLSongRepository) CreateSong(ctx context.Context, song *model.Song) error {
	query := `
		INSERT INTO songs (id, title, performer, genre, duration, album_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		song.ID,
		song.Title,
		song.Performer,
		song.Genre,
		song.Duration,
		song.AlbumID,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert song: %w", err)
	}
	return nil
}

// GetSongByID 根据ID获取歌曲
func (r *MySQLSongRepository) GetSongByID(ctx context.Context, id string) (*model.Song, error) {
	query := `
		SELECT id, title, performer, genre, duration, album_id, created_at, updated_at
		FROM songs
		WHERE id = ?
	`

	song := &model.Song{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&song.ID,
		&song.Title,
		&song.Performer,
		&song.Genre,
		&song.Duration,
		&song.AlbumID,
		&song.CreatedAt,
		&song.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan song row: %w", err)
	}

	return song, nil
}

// ListSongs 获取全部歌曲的列表投影
func (r *MySQLSongRepository) ListSongs(ctx context.Context) ([]*model.SongSummary, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, title, performer FROM songs ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	defer rows.Close()

	var songs []*model.SongSummary
	for rows.Next() {
		song := &model.SongSummary{}
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return nil, fmt.Errorf("failed to scan song row: %w", err)
		}
		songs = append(songs, song)
	}

	return songs, rows.Err()
}

// Exists 检查歌曲是否存在
func (r *MySQLSongRepository) Exists(ctx context.Context, id string) (bool, error) {
	var songID string
	err := r.db.QueryRowContext(ctx, "SELECT id FROM songs WHERE id = ?", id).Scan(&songID)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check song existence: %w", err)
	}
	return true, nil
}
