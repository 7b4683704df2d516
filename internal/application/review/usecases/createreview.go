package usecases

import (
	"context"
	"fmt"

	"litrevu/internal/domain/review"
	vo "litrevu/internal/domain/review/valueobjects"
	"litrevu/internal/domain/ticket"
	apperrors "litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type CreateReviewCommand struct {
	TicketID uint
	Headline string
	Rating   int
	Body     string
	OwnerID  uint
}

type CreateReviewResult struct {
	Review *review.Review
	Ticket *ticket.Ticket
}

type CreateReviewUseCase struct {
	reviewRepo review.Repository
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCreateReviewUseCase(
	reviewRepo review.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *CreateReviewUseCase {
	return &CreateReviewUseCase{
		reviewRepo: reviewRepo,
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateReviewUseCase) Execute(ctx context.Context, cmd CreateReviewCommand) (*CreateReviewResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	exists, err := uc.reviewRepo.ExistsByTicketID(ctx, t.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("this ticket already has a review")
	}

	rating, err := vo.NewRating(cmd.Rating)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	rev, err := review.NewReview(cmd.Headline, rating, cmd.Body, cmd.OwnerID, t.ID())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	// The unique index on ticket_id closes the race between the exists
	// check and the insert.
	if err := uc.reviewRepo.Save(ctx, rev); err != nil {
		return nil, err
	}

	uc.logger.Infow("review created", "review_id", rev.ID(), "ticket_id", t.ID(), "owner_id", cmd.OwnerID)

	return &CreateReviewResult{Review: rev, Ticket: t}, nil
}
