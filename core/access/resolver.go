// Package access decides read/write eligibility for playlists.
// Ownership is checked first; delegated collaboration is consulted only
// when ownership is absent, never when the playlist itself is absent.
package access

import (
	"context"
	"fmt"

	"MeloList/apperror"
	"MeloList/model"
)

// PlaylistGetter 提供歌单查询，不存在时返回 (nil, nil)
type PlaylistGetter interface {
	GetPlaylistByID(ctx context.Context, id string) (*model.Playlist, error)
}

// CollaboratorVerifier 是协作判定方：不是协作者时返回错误，是则返回nil
// 本模块只消费这一个方法
type CollaboratorVerifier interface {
	VerifyCollaborator(ctx context.Context, playlistID, userID string) error
}

// Resolver 组合所有权检查和协作判定
type Resolver struct {
	playlists     PlaylistGetter
	collaborators CollaboratorVerifier
}

// NewResolver 创建访问判定器
func NewResolver(playlists PlaylistGetter, collaborators CollaboratorVerifier) *Resolver {
	return &Resolver{playlists: playlists, collaborators: collaborators}
}

// VerifyOwner 校验用户是歌单的所有者
// 歌单不存在返回NotFound，非所有者返回Authorization
func (r *Resolver) VerifyOwner(ctx context.Context, playlistID, userID string) error {
	playlist, err := r.playlists.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		return fmt.Errorf("failed to load playlist %s: %w", playlistID, err)
	}
	if playlist == nil {
		return apperror.NotFound("playlist not found")
	}
	if playlist.OwnerID != userID {
		return apperror.Authorization("you are not allowed to access this resource")
	}
	return nil
}

// VerifyAccess 校验用户可以读写歌单：所有者或协作者均可
//
// 所有权检查返回NotFound时立即透传——不存在的歌单不可能“协作可见”。
// 返回Authorization时才咨询协作判定方；判定失败时丢弃判定方自身的错误，
// 重新抛出最初捕获的Authorization错误，保证“无权限”只有一种错误形态。
func (r *Resolver) VerifyAccess(ctx context.Context, playlistID, userID string) error {
	ownerErr := r.VerifyOwner(ctx, playlistID, userID)
	if ownerErr == nil {
		return nil
	}
	if !apperror.IsAuthorization(ownerErr) {
		// NotFound 和基础设施错误都不回退到协作判定
		return ownerErr
	}

	if collabErr := r.collaborators.VerifyCollaborator(ctx, playlistID, userID); collabErr != nil {
		return ownerErr
	}
	return nil
}
