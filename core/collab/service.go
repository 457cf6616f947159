// Package collab manages delegated collaboration on playlists.
// Collaborators gain membership read/write through the access resolver;
// granting and revoking stays owner-only.
package collab

import (
	"context"
	"fmt"

	"MeloList/apperror"
	"MeloList/model"
	"MeloList/repository"

	"github.com/google/uuid"
)

// OwnerVerifier 所有权校验接口，由 core/access.Resolver 实现
type OwnerVerifier interface {
	VerifyOwner(ctx context.Context, playlistID, userID string) error
}

// Service 协作授权服务
type Service struct {
	collaborations repository.CollaborationRepository
	users          repository.UserRepository
	resolver       OwnerVerifier
}

// NewService 创建协作服务
func NewService(
	collaborations repository.CollaborationRepository,
	users repository.UserRepository,
	resolver OwnerVerifier,
) *Service {
	return &Service{
		collaborations: collaborations,
		users:          users,
		resolver:       resolver,
	}
}

// Add 授权用户协作歌单，仅所有者可操作
func (s *Service) Add(ctx context.Context, playlistID, collaboratorID, actorID string) (*model.Collaboration, error) {
	if err := s.resolver.VerifyOwner(ctx, playlistID, actorID); err != nil {
		return nil, err
	}

	exists, err := s.users.Exists(ctx, collaboratorID)
	if err != nil {
		return nil, fmt.Errorf("checking user existence: %w", err)
	}
	if !exists {
		return nil, apperror.NotFound("user not found")
	}

	collaboration := &model.Collaboration{
		ID:         fmt.Sprintf("collab-%s", uuid.NewString()),
		PlaylistID: playlistID,
		UserID:     collaboratorID,
	}
	if err := s.collaborations.Add(ctx, collaboration); err != nil {
		return nil, fmt.Errorf("adding collaboration: %w", err)
	}
	return collaboration, nil
}

// Remove 撤销协作授权，仅所有者可操作
func (s *Service) Remove(ctx context.Context, playlistID, collaboratorID, actorID string) error {
	if err := s.resolver.VerifyOwner(ctx, playlistID, actorID); err != nil {
		return err
	}

	removed, err := s.collaborations.Remove(ctx, playlistID, collaboratorID)
	if err != nil {
		return fmt.Errorf("removing collaboration: %w", err)
	}
	if !removed {
		return apperror.NotFound("collaboration not found")
	}
	return nil
}
