package export

import (
	"context"
	"fmt"

	"MeloList/apperror"
	"MeloList/model"
)

// PlaylistStore 消费进程对歌单存储的只读依赖
type PlaylistStore interface {
	GetPlaylistWithSongs(ctx context.Context, id string) (*model.PlaylistWithSongs, error)
}

// PlaylistViewer 从歌单存储读取导出视图，不做访问校验
// 访问控制在任务入队时已经完成
type PlaylistViewer struct {
	playlists PlaylistStore
}

// NewPlaylistViewer 创建导出视图读取器
func NewPlaylistViewer(playlists PlaylistStore) *PlaylistViewer {
	return &PlaylistViewer{playlists: playlists}
}

// GetExportView 返回歌单导出视图
// 歌单在任务排队期间被删除是正常竞态，返回NotFound由消费者丢弃任务
func (v *PlaylistViewer) GetExportView(ctx context.Context, playlistID string) (*model.PlaylistWithSongs, error) {
	detail, err := v.playlists.GetPlaylistWithSongs(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("loading playlist export view: %w", err)
	}
	if detail == nil {
		return nil, apperror.NotFound("playlist not found")
	}
	return detail, nil
}
