package usecases

import (
	"context"
	"fmt"

	"litrevu/internal/domain/follow"
	"litrevu/internal/domain/user"
	"litrevu/internal/shared/logger"
)

type ListFollowsCommand struct {
	UserID uint
}

// ListFollowsResult mirrors the two columns of the follows page: who the
// user follows and who follows them.
type ListFollowsResult struct {
	Following []*user.User
	Followers []*user.User
}

type ListFollowsUseCase struct {
	followRepo follow.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListFollowsUseCase(
	followRepo follow.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListFollowsUseCase {
	return &ListFollowsUseCase{
		followRepo: followRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListFollowsUseCase) Execute(ctx context.Context, cmd ListFollowsCommand) (*ListFollowsResult, error) {
	followedIDs, err := uc.followRepo.GetFollowedIDs(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followed users: %w", err)
	}

	followerIDs, err := uc.followRepo.GetFollowerIDs(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}

	following, err := uc.userRepo.GetByIDs(ctx, followedIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load followed users: %w", err)
	}

	followers, err := uc.userRepo.GetByIDs(ctx, followerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load followers: %w", err)
	}

	return &ListFollowsResult{
		Following: following,
		Followers: followers,
	}, nil
}
