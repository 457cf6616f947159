package repository

import (
	"context"
	"database/sql"
	"fmt"

	"MeloList/model"
)

// ActivityRepository 定义歌单账目的数据库操作接口
// 账目只追加，除歌单级联删除外不会被修改或删除
type ActivityRepository interface {
	// Record 追加一条账目记录
	Record(ctx context.Context, activity *model.PlaylistActivity) error

	// ListByPlaylist 按时间倒序返回歌单的账目记录
	ListByPlaylist(ctx context.Context, playlistID string) ([]*model.ActivityRecord, error)
}

// MySQLActivityRepository MySQL实现的账目仓库
type MySQLActivityRepository struct {
	db *sql.DB
}

// NewMySQLActivityRepository 创建新的MySQL账目仓库实例
func NewMySQLActivityRepository(db *sql.DB) *MySQLActivityRepository {
	return &MySQLActivityRepository{db: db}
}

// Record 追加一条账目记录，时间戳由调用方生成
func (r *MySQLActivityRepository) Record(ctx context.Context, activity *model.PlaylistActivity) error {
	query := `
		INSERT INTO playlist_song_activities (id, playlist_id, song_id, user_id, action, time)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		activity.ID,
		activity.PlaylistID,
		activity.SongID,
		activity.UserID,
		activity.Action,
		activity.Time,
	)
	if err != nil {
		return fmt.Errorf("failed to record playlist activity: %w", err)
	}

	return nil
}

// ListByPlaylist 按时间倒序返回歌单的账目记录
// 用户名和歌名来自联表，不在账目表中冗余存储
func (r *MySQLActivityRepository) ListByPlaylist(ctx context.Context, playlistID string) ([]*model.ActivityRecord, error) {
	query := `
		SELECT u.username, s.title, psa.action, psa.time
		FROM playlist_song_activities psa
		LEFT JOIN users u ON u.id = psa.user_id
		LEFT JOIN songs s ON s.id = psa.song_id
		WHERE psa.playlist_id = ?
		ORDER BY psa.time DESC
	`

	rows, err := r.db.QueryContext(ctx, query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist activities: %w", err)
	}
	defer rows.Close()

	var records []*model.ActivityRecord
	for rows.Next() {
		var (
			username, title sql.NullString
			record          model.ActivityRecord
		)
		if err := rows.Scan(&username, &title, &record.Action, &record.Time); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		record.Username = username.String
		record.Title = title.String
		records = append(records, &record)
	}

	return records, rows.Err()
}
