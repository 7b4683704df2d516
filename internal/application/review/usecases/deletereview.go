package usecases

import (
	"context"

	"litrevu/internal/domain/review"
	apperrors "litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type DeleteReviewCommand struct {
	ReviewID uint
	ActorID  uint
}

type DeleteReviewUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewDeleteReviewUseCase(reviewRepo review.Repository, logger logger.Interface) *DeleteReviewUseCase {
	return &DeleteReviewUseCase{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (uc *DeleteReviewUseCase) Execute(ctx context.Context, cmd DeleteReviewCommand) error {
	rev, err := uc.reviewRepo.GetByID(ctx, cmd.ReviewID)
	if err != nil {
		return err
	}

	if !rev.IsOwnedBy(cmd.ActorID) {
		return apperrors.NewForbiddenError("you can only delete your own reviews")
	}

	if err := uc.reviewRepo.Delete(ctx, rev.ID()); err != nil {
		return err
	}

	uc.logger.Infow("review deleted", "review_id", rev.ID(), "actor_id", cmd.ActorID)

	return nil
}
