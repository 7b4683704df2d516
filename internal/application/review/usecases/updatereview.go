package usecases

import (
	"context"

	"litrevu/internal/domain/review"
	vo "litrevu/internal/domain/review/valueobjects"
	apperrors "litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type UpdateReviewCommand struct {
	ReviewID uint
	ActorID  uint
	Headline string
	Rating   int
	Body     string
}

type UpdateReviewResult struct {
	Review *review.Review
}

type UpdateReviewUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewUpdateReviewUseCase(reviewRepo review.Repository, logger logger.Interface) *UpdateReviewUseCase {
	return &UpdateReviewUseCase{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (uc *UpdateReviewUseCase) Execute(ctx context.Context, cmd UpdateReviewCommand) (*UpdateReviewResult, error) {
	rev, err := uc.reviewRepo.GetByID(ctx, cmd.ReviewID)
	if err != nil {
		return nil, err
	}

	if !rev.IsOwnedBy(cmd.ActorID) {
		return nil, apperrors.NewForbiddenError("you can only edit your own reviews")
	}

	rating, err := vo.NewRating(cmd.Rating)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := rev.UpdateContent(cmd.Headline, rating, cmd.Body); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Update(ctx, rev); err != nil {
		return nil, err
	}

	uc.logger.Infow("review updated", "review_id", rev.ID(), "actor_id", cmd.ActorID)

	return &UpdateReviewResult{Review: rev}, nil
}
