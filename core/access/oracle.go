package access

import (
	"context"
	"fmt"

	"MeloList/repository"
)

// CollaborationOracle 把协作仓库适配成 CollaboratorVerifier 契约：
// 不是协作者（或查询失败）时返回错误，是协作者返回nil
type CollaborationOracle struct {
	collaborations repository.CollaborationRepository
}

// NewCollaborationOracle 创建协作判定方
func NewCollaborationOracle(collaborations repository.CollaborationRepository) *CollaborationOracle {
	return &CollaborationOracle{collaborations: collaborations}
}

// VerifyCollaborator 检查用户是否是歌单的协作者
func (o *CollaborationOracle) VerifyCollaborator(ctx context.Context, playlistID, userID string) error {
	exists, err := o.collaborations.Exists(ctx, playlistID, userID)
	if err != nil {
		return fmt.Errorf("failed to verify collaborator: %w", err)
	}
	if !exists {
		return fmt.Errorf("user %s is not a collaborator on playlist %s", userID, playlistID)
	}
	return nil
}
