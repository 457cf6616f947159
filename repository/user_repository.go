package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"MeloList/model"
)

// UserRepository 定义用户相关的数据库操作接口
type UserRepository interface {
	// CreateUser 创建新用户
	CreateUser(ctx context.Context, user *model.User) error

	// GetUserByID 根据ID获取用户，不存在时返回 (nil, nil)
	GetUserByID(ctx context.Context, id string) (*model.User, error)

	// Exists 检查用户是否存在
	Exists(ctx context.Context, id string) (bool, error)
}

// MySQLUserRepository MySQL实现的用户仓库
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository 创建新的MySQL用户仓库实例
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

// CreateUser 创建新用户
func (r *MySQLUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, username, email, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	now := time.Now()
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.Email, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByID 根据ID获取用户
func (r *MySQLUserRepository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	return r.getUser(ctx, "SELECT id, username, email, created_at, updated_at FROM users WHERE id = ?", id)
}

func (r *MySQLUserRepository) getUser(ctx context.Context, query string, arg interface{}) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	return user, nil
}

// Exists 检查用户是否存在
func (r *MySQLUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	var userID string
	err := r.db.QueryRowContext(ctx, "SELECT id FROM users WHERE id = ?", id).Scan(&userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return true, nil
}
