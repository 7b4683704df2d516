package usecases

import (
	"context"

	"litrevu/internal/domain/follow"
	apperrors "litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type UnfollowUserCommand struct {
	FollowerID uint
	FollowedID uint
}

type UnfollowUserUseCase struct {
	followRepo follow.Repository
	logger     logger.Interface
}

func NewUnfollowUserUseCase(followRepo follow.Repository, logger logger.Interface) *UnfollowUserUseCase {
	return &UnfollowUserUseCase{
		followRepo: followRepo,
		logger:     logger,
	}
}

func (uc *UnfollowUserUseCase) Execute(ctx context.Context, cmd UnfollowUserCommand) error {
	existed, err := uc.followRepo.Delete(ctx, cmd.FollowerID, cmd.FollowedID)
	if err != nil {
		return err
	}
	if !existed {
		return apperrors.NewNotFoundError("not following this user")
	}

	uc.logger.Infow("user unfollowed", "follower_id", cmd.FollowerID, "followed_id", cmd.FollowedID)

	return nil
}
