package usecases

import (
	"context"
	"fmt"

	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/shared/logger"
)

type GetReviewCommand struct {
	ReviewID uint
}

// GetReviewResult carries the review alongside the ticket it answers.
type GetReviewResult struct {
	Review *review.Review
	Ticket *ticket.Ticket
}

type GetReviewUseCase struct {
	reviewRepo review.Repository
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetReviewUseCase(
	reviewRepo review.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *GetReviewUseCase {
	return &GetReviewUseCase{
		reviewRepo: reviewRepo,
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetReviewUseCase) Execute(ctx context.Context, cmd GetReviewCommand) (*GetReviewResult, error) {
	rev, err := uc.reviewRepo.GetByID(ctx, cmd.ReviewID)
	if err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, rev.TicketID())
	if err != nil {
		return nil, fmt.Errorf("failed to load reviewed ticket: %w", err)
	}

	return &GetReviewResult{Review: rev, Ticket: t}, nil
}
