package usecases

import (
	"context"
	"fmt"

	"litrevu/internal/domain/follow"
	"litrevu/internal/domain/user"
	apperrors "litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

// FollowUserCommand subscribes the actor to another user's posts, looked up
// by username the way the follow page submits it.
type FollowUserCommand struct {
	FollowerID uint
	Username   string
}

type FollowUserResult struct {
	Followed *user.User
}

type FollowUserUseCase struct {
	followRepo follow.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewFollowUserUseCase(
	followRepo follow.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *FollowUserUseCase {
	return &FollowUserUseCase{
		followRepo: followRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *FollowUserUseCase) Execute(ctx context.Context, cmd FollowUserCommand) (*FollowUserResult, error) {
	target, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to look up user to follow", "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if target == nil {
		return nil, apperrors.NewNotFoundError("no user with this username")
	}

	if target.ID() == cmd.FollowerID {
		return nil, apperrors.NewValidationError("you cannot follow yourself")
	}

	already, err := uc.followRepo.Exists(ctx, cmd.FollowerID, target.ID())
	if err != nil {
		uc.logger.Errorw("failed to check follow state", "error", err)
		return nil, fmt.Errorf("failed to check follow state: %w", err)
	}
	if already {
		return nil, apperrors.NewConflictError("you already follow this user")
	}

	edge, err := follow.NewEdge(cmd.FollowerID, target.ID())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	// A concurrent follow still bounces off the unique pair index as a conflict.
	if err := uc.followRepo.Save(ctx, edge); err != nil {
		return nil, err
	}

	uc.logger.Infow("user followed", "follower_id", cmd.FollowerID, "followed_id", target.ID())

	return &FollowUserResult{Followed: target}, nil
}
