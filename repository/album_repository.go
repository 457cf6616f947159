package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"MeloList/model"
)

// AlbumRepository 定义专辑相关的数据库操作接口
type AlbumRepository interface {
	// CreateAlbum 创建新专辑
	CreateAlbum(ctx context.Context, album *model.Album) error

	// GetAlbumByID 根据ID获取专辑，不存在时返回 (nil, nil)
	GetAlbumByID(ctx context.Context, id string) (*model.Album, error)

	// GetAlbumWithSongs 获取专辑及其收录的歌曲
	GetAlbumWithSongs(ctx context.Context, id string) (*model.AlbumWithSongs, error)

	// UpdateAlbum 更新专辑信息，返回是否确有更新
	UpdateAlbum(ctx context.Context, album *model.Album) (bool, error)

	// DeleteAlbum 删除专辑，返回是否确有删除
	DeleteAlbum(ctx context.Context, id string) (bool, error)

	// Exists 检查专辑是否存在
	Exists(ctx context.Context, id string) (bool, error)
}

// MySQLAlbumRepository MySQL实现的专辑仓库
type MySQLAlbumRepository struct {
	db *sql.DB
}

// NewMySQLAlbumRepository 创建新的MySQL专辑仓库实例
func NewMySQLAlbumRepository(db *sql.DB) *MySQLAlbumRepository {
	return &MySQLAlbumRepository{db: db}
}

// CreateAlbum 创建新专辑
func (r *MySQLAlbumRepository) CreateAlbum(ctx context.Context, album *model.Album) error {
	query := `
		INSERT INTO albums (id, name, year, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	now := time.Now()
	_, err := r.db.ExecContext(ctx, query, album.ID, album.Name, album.Year, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert album: %w", err)
	}
	return nil
}

// GetAlbumByID 根据ID获取专辑
func (r *MySQLAlbumRepository) GetAlbumByID(ctx context.Context, id string) (*model.Album, error) {
	query := "SELECT id, name, year, created_at, updated_at FROM albums WHERE id = ?"

	album := &model.Album{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&album.ID,
		&album.Name,
		&album.Year,
		&album.CreatedAt,
		&album.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan album row: %w", err)
	}

	return album, nil
}

// GetAlbumWithSongs 获取专辑及其收录的歌曲
func (r *MySQLAlbumRepository) GetAlbumWithSongs(ctx context.Context, id string) (*model.AlbumWithSongs, error) {
	album, err := r.GetAlbumByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if album == nil {
		return nil, nil
	}

	query := "SELECT id, title, performer FROM songs WHERE album_id = ?"
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query album songs: %w", err)
	}
	defer rows.Close()

	detail := &model.AlbumWithSongs{
		ID:    album.ID,
		Name:  album.Name,
		Year:  album.Year,
		Songs: []model.SongSummary{},
	}
	for rows.Next() {
		var song model.SongSummary
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return nil, fmt.Errorf("failed to scan album song row: %w", err)
		}
		detail.Songs = append(detail.Songs, song)
	}

	return detail, rows.Err()
}

// UpdateAlbum 更新专辑信息
func (r *MySQLAlbumRepository) UpdateAlbum(ctx context.Context, album *model.Album) (bool, error) {
	query := "UPDATE albums SET name = ?, year = ?, updated_at = ? WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query, album.Name, album.Year, time.Now(), album.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update album: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteAlbum 删除专辑
func (r *MySQLAlbumRepository) DeleteAlbum(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM albums WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete album: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Exists 检查专辑是否存在
func (r *MySQLAlbumRepository) Exists(ctx context.Context, id string) (bool, error) {
	var albumID string
	err := r.db.QueryRowContext(ctx, "SELECT id FROM albums WHERE id = ?", id).Scan(&albumID)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check album existence: %w", err)
	}
	return true, nil
}
