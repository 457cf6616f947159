// Package playlist owns playlist and membership persistence and the
// activity ledger around it. All mutations pass through the access
// resolver before touching storage.
package playlist

import (
	"context"
	"fmt"
	"time"

	"MeloList/apperror"
	"MeloList/logger"
	"MeloList/model"
	"MeloList/repository"

	"github.com/google/uuid"
)

// AccessResolver 访问判定接口，由 core/access.Resolver 实现
type AccessResolver interface {
	VerifyOwner(ctx context.Context, playlistID, userID string) error
	VerifyAccess(ctx context.Context, playlistID, userID string) error
}

// Service 歌单业务服务
type Service struct {
	playlists  repository.PlaylistRepository
	songs      repository.SongRepository
	activities repository.ActivityRepository
	resolver   AccessResolver
}

// NewService 创建歌单服务
func NewService(
	playlists repository.PlaylistRepository,
	songs repository.SongRepository,
	activities repository.ActivityRepository,
	resolver AccessResolver,
) *Service {
	return &Service{
		playlists:  playlists,
		songs:      songs,
		activities: activities,
		resolver:   resolver,
	}
}

// Create 创建歌单
func (s *Service) Create(ctx context.Context, name, ownerID string) (*model.Playlist, error) {
	playlist := &model.Playlist{
		ID:      fmt.Sprintf("playlist-%s", uuid.NewString()),
		Name:    name,
		OwnerID: ownerID,
	}

	if err := s.playlists.CreatePlaylist(ctx, playlist); err != nil {
		return nil, fmt.Errorf("creating playlist: %w", err)
	}

	logger.Info("playlist created",
		logger.String("playlistId", playlist.ID),
		logger.String("ownerId", ownerID),
	)
	return playlist, nil
}

// List 返回用户拥有的歌单
func (s *Service) List(ctx context.Context, ownerID string) ([]*model.PlaylistSummary, error) {
	playlists, err := s.playlists.GetPlaylistsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing playlists: %w", err)
	}
	if playlists == nil {
		playlists = []*model.PlaylistSummary{}
	}
	return playlists, nil
}

// Delete 删除歌单，仅所有者可操作
// 成员和账目记录由外键级联删除
func (s *Service) Delete(ctx context.Context, playlistID, userID string) error {
	if err := s.resolver.VerifyOwner(ctx, playlistID, userID); err != nil {
		return err
	}

	deleted, err := s.playlists.DeletePlaylist(ctx, playlistID)
	if err != nil {
		return fmt.Errorf("deleting playlist: %w", err)
	}
	if !deleted {
		return apperror.NotFound("playlist not found")
	}

	logger.Info("playlist deleted", logger.String("playlistId", playlistID))
	return nil
}

// AddSong 添加歌曲到歌单，所有者和协作者均可操作
func (s *Service) AddSong(ctx context.Context, playlistID, songID, userID string) error {
	if err := s.resolver.VerifyAccess(ctx, playlistID, userID); err != nil {
		return err
	}

	exists, err := s.songs.Exists(ctx, songID)
	if err != nil {
		return fmt.Errorf("checking song existence: %w", err)
	}
	if !exists {
		return apperror.NotFound("song not found")
	}

	entryID := fmt.Sprintf("playlist-song-%s", uuid.NewString())
	if err := s.playlists.AddSong(ctx, entryID, playlistID, songID); err != nil {
		return fmt.Errorf("adding song to playlist: %w", err)
	}

	return s.record(ctx, playlistID, songID, userID, model.ActivityActionAdd)
}

// RemoveSong 从歌单中移除歌曲，所有者和协作者均可操作
func (s *Service) RemoveSong(ctx context.Context, playlistID, songID, userID string) error {
	if err := s.resolver.VerifyAccess(ctx, playlistID, userID); err != nil {
		return err
	}

	removed, err := s.playlists.RemoveSong(ctx, playlistID, songID)
	if err != nil {
		return fmt.Errorf("removing song from playlist: %w", err)
	}
	if !removed {
		return apperror.Invariant("song not found in playlist")
	}

	return s.record(ctx, playlistID, songID, userID, model.ActivityActionDelete)
}

// record 在成员变更落库之后追加账目记录
// 账目写入失败不回滚成员变更，这是已知的一致性缺口，只记录并上报
func (s *Service) record(ctx context.Context, playlistID, songID, userID, action string) error {
	activity := &model.PlaylistActivity{
		ID:         fmt.Sprintf("activity-%s", uuid.NewString()),
		PlaylistID: playlistID,
		SongID:     songID,
		UserID:     userID,
		Action:     action,
		Time:       time.Now(),
	}

	if err := s.activities.Record(ctx, activity); err != nil {
		logger.Warn("activity record failed after membership write",
			logger.String("playlistId", playlistID),
			logger.String("songId", songID),
			logger.String("action", action),
			logger.ErrorField(err),
		)
		return fmt.Errorf("recording playlist activity: %w", err)
	}
	return nil
}

// GetSongs 返回歌单详情视图，所有者和协作者均可读取
func (s *Service) GetSongs(ctx context.Context, playlistID, userID string) (*model.PlaylistWithSongs, error) {
	if err := s.resolver.VerifyAccess(ctx, playlistID, userID); err != nil {
		return nil, err
	}

	detail, err := s.playlists.GetPlaylistWithSongs(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("loading playlist detail: %w", err)
	}
	if detail == nil {
		return nil, apperror.NotFound("playlist not found")
	}
	return detail, nil
}

// Activities 返回歌单的账目记录，按时间倒序
func (s *Service) Activities(ctx context.Context, playlistID, userID string) ([]*model.ActivityRecord, error) {
	if err := s.resolver.VerifyAccess(ctx, playlistID, userID); err != nil {
		return nil, err
	}

	records, err := s.activities.ListByPlaylist(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("listing playlist activities: %w", err)
	}
	if records == nil {
		records = []*model.ActivityRecord{}
	}
	return records, nil
}
