package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"MeloList/apperror"
	"MeloList/model"

	"github.com/go-sql-driver/mysql"
)

// LikeRepository 定义专辑点赞的数据库操作接口
// user_album_likes 是点赞数的唯一事实来源，缓存只是它的派生视图
type LikeRepository interface {
	// Exists 检查用户是否已点赞该专辑
	Exists(ctx context.Context, userID, albumID string) (bool, error)

	// Insert 新增一条点赞记录
	Insert(ctx context.Context, like *model.AlbumLike) error

	// Delete 删除点赞记录，返回是否确有删除
	Delete(ctx context.Context, userID, albumID string) (bool, error)

	// Count 统计专辑的点赞数
	Count(ctx context.Context, albumID string) (int, error)
}

// MySQLLikeRepository MySQL实现的点赞仓库
type MySQLLikeRepository struct {
	db *sql.DB
}

// NewMySQLLikeRepository 创建新的MySQL点赞仓库实例
func NewMySQLLikeRepository(db *sql.DB) *MySQLLikeRepository {
	return &MySQLLikeRepository{db: db}
}

// Exists 检查用户是否已点赞该专辑
func (r *MySQLLikeRepository) Exists(ctx context.Context, userID, albumID string) (bool, error) {
	query := "SELECT id FROM user_album_likes WHERE user_id = ? AND album_id = ?"

	var id string
	err := r.db.QueryRowContext(ctx, query, userID, albumID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check album like: %w", err)
	}
	return true, nil
}

// Insert 新增一条点赞记录
// 并发点赞时另一个请求可能先落库，唯一约束兜底，映射为业务错误
func (r *MySQLLikeRepository) Insert(ctx context.Context, like *model.AlbumLike) error {
	query := `
		INSERT INTO user_album_likes (id, user_id, album_id, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, like.ID, like.UserID, like.AlbumID, time.Now())
	if err != nil {
		if isDuplicateEntry(err) {
			return apperror.Invariant("album already liked")
		}
		return fmt.Errorf("failed to insert album like: %w", err)
	}
	return nil
}

// isDuplicateEntry 判断是否违反唯一约束（MySQL错误码1062）
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// Delete 删除点赞记录
func (r *MySQLLikeRepository) Delete(ctx context.Context, userID, albumID string) (bool, error) {
	query := "DELETE FROM user_album_likes WHERE user_id = ? AND album_id = ?"

	result, err := r.db.ExecContext(ctx, query, userID, albumID)
	if err != nil {
		return false, fmt.Errorf("failed to delete album like: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Count 统计专辑的点赞数
func (r *MySQLLikeRepository) Count(ctx context.Context, albumID string) (int, error) {
	query := "SELECT COUNT(id) FROM user_album_likes WHERE album_id = ?"

	var count int
	if err := r.db.QueryRowContext(ctx, query, albumID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count album likes: %w", err)
	}
	return count, nil
}
