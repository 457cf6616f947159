// Package album owns album persistence and the cache-aside like counter.
// The likes table is the source of truth; the cache entry is a disposable
// derived view that every mutation invalidates before returning.
package album

import (
	"context"
	"fmt"

	"MeloList/apperror"
	"MeloList/logger"
	"MeloList/model"
	"MeloList/repository"

	"github.com/google/uuid"
)

// LikeCountCache 点赞数缓存接口，由 cache.RedisLikeCache 实现
// 读取未命中（包括任何缓存后端错误）都按未命中处理
type LikeCountCache interface {
	GetCount(ctx context.Context, albumID string) (int, error)
	SetCount(ctx context.Context, albumID string, count int) error
	Invalidate(ctx context.Context, albumID string) error
}

// Service 专辑业务服务
type Service struct {
	albums repository.AlbumRepository
	likes  repository.LikeRepository
	cache  LikeCountCache
}

// NewService 创建专辑服务
func NewService(albums repository.AlbumRepository, likes repository.LikeRepository, cache LikeCountCache) *Service {
	return &Service{albums: albums, likes: likes, cache: cache}
}

// Create 创建专辑
func (s *Service) Create(ctx context.Context, name string, year int) (*model.Album, error) {
	album := &model.Album{
		ID:   fmt.Sprintf("album-%s", uuid.NewString()),
		Name: name,
		Year: year,
	}

	if err := s.albums.CreateAlbum(ctx, album); err != nil {
		return nil, fmt.Errorf("creating album: %w", err)
	}
	return album, nil
}

// Get 返回专辑及其收录的歌曲
func (s *Service) Get(ctx context.Context, id string) (*model.AlbumWithSongs, error) {
	album, err := s.albums.GetAlbumWithSongs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading album: %w", err)
	}
	if album == nil {
		return nil, apperror.NotFound("album not found")
	}
	return album, nil
}

// Update 更新专辑信息
func (s *Service) Update(ctx context.Context, id, name string, year int) error {
	updated, err := s.albums.UpdateAlbum(ctx, &model.Album{ID: id, Name: name, Year: year})
	if err != nil {
		return fmt.Errorf("updating album: %w", err)
	}
	if !updated {
		return apperror.NotFound("album not found")
	}
	return nil
}

// Delete 删除专辑
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.albums.DeleteAlbum(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting album: %w", err)
	}
	if !deleted {
		return apperror.NotFound("album not found")
	}
	return nil
}

// AddLike 用户点赞专辑
// 每个用户对一张专辑只能点赞一次；落库后删除缓存条目，
// 下一次读取回源重建（删除而不是更新，避免写写竞争）
func (s *Service) AddLike(ctx context.Context, userID, albumID string) error {
	exists, err := s.albums.Exists(ctx, albumID)
	if err != nil {
		return fmt.Errorf("checking album existence: %w", err)
	}
	if !exists {
		return apperror.NotFound("album not found")
	}

	liked, err := s.likes.Exists(ctx, userID, albumID)
	if err != nil {
		return fmt.Errorf("checking album like: %w", err)
	}
	if liked {
		return apperror.Invariant("album already liked")
	}

	like := &model.AlbumLike{
		ID:      fmt.Sprintf("like-%s", uuid.NewString()),
		UserID:  userID,
		AlbumID: albumID,
	}
	if err := s.likes.Insert(ctx, like); err != nil {
		return fmt.Errorf("inserting album like: %w", err)
	}

	s.invalidate(ctx, albumID)
	return nil
}

// RemoveLike 用户取消点赞
func (s *Service) RemoveLike(ctx context.Context, userID, albumID string) error {
	removed, err := s.likes.Delete(ctx, userID, albumID)
	if err != nil {
		return fmt.Errorf("deleting album like: %w", err)
	}
	if !removed {
		return apperror.NotFound("like not found")
	}

	s.invalidate(ctx, albumID)
	return nil
}

// invalidate 删除点赞数缓存
// 失效失败不影响写入结果，陈旧值最多存活到TTL过期
func (s *Service) invalidate(ctx context.Context, albumID string) {
	if err := s.cache.Invalidate(ctx, albumID); err != nil {
		logger.Warn("like cache invalidation failed",
			logger.String("albumId", albumID),
			logger.ErrorField(err),
		)
	}
}

// GetLikes 返回专辑点赞数
// 先读缓存；任何缓存错误都按未命中处理，回源计数并以默认TTL写回。
// 缓存永远不会成为读取失败的原因
func (s *Service) GetLikes(ctx context.Context, albumID string) (*model.LikeCount, error) {
	if count, err := s.cache.GetCount(ctx, albumID); err == nil {
		return &model.LikeCount{Likes: count, Cache: true}, nil
	}

	count, err := s.likes.Count(ctx, albumID)
	if err != nil {
		return nil, fmt.Errorf("counting album likes: %w", err)
	}

	if err := s.cache.SetCount(ctx, albumID, count); err != nil {
		logger.Warn("like cache repopulation failed",
			logger.String("albumId", albumID),
			logger.ErrorField(err),
		)
	}
	return &model.LikeCount{Likes: count, Cache: false}, nil
}
