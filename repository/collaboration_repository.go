package repository

import (
	"context"
	"errors"

	"MeloList/model"

	"gorm.io/gorm"
)

// CollaborationRepository 歌单协作数据访问接口
type CollaborationRepository interface {
	// Add 新增协作授权
	Add(ctx context.Context, collaboration *model.Collaboration) error

	// Remove 撤销协作授权，返回是否确有删除
	Remove(ctx context.Context, playlistID, userID string) (bool, error)

	// Exists 检查用户是否是歌单的协作者
	Exists(ctx context.Context, playlistID, userID string) (bool, error)
}

// gormCollaborationRepository GORM 实现
type gormCollaborationRepository struct {
	db *gorm.DB
}

// NewGormCollaborationRepository 创建 GORM 协作仓库
func NewGormCollaborationRepository(db *gorm.DB) CollaborationRepository {
	return &gormCollaborationRepository{db: db}
}

// Add 新增协作授权
func (r *gormCollaborationRepository) Add(ctx context.Context, collaboration *model.Collaboration) error {
	return r.db.WithContext(ctx).Create(collaboration).Error
}

// Remove 撤销协作授权
func (r *gormCollaborationRepository) Remove(ctx context.Context, playlistID, userID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("playlist_id = ? AND user_id = ?", playlistID, userID).
		Delete(&model.Collaboration{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists 检查用户是否是歌单的协作者
func (r *gormCollaborationRepository) Exists(ctx context.Context, playlistID, userID string) (bool, error) {
	var collaboration model.Collaboration
	err := r.db.WithContext(ctx).
		Where("playlist_id = ? AND user_id = ?", playlistID, userID).
		First(&collaboration).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
