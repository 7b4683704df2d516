package usecases

import (
	"context"

	"litrevu/internal/domain/review"
	vo "litrevu/internal/domain/review/valueobjects"
	"litrevu/internal/domain/ticket"
	apperrors "litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

// CreateTicketWithReviewCommand creates a ticket and reviews it in one go,
// for reviewing a work nobody asked about yet.
type CreateTicketWithReviewCommand struct {
	Title       string
	Description string
	Headline    string
	Rating      int
	Body        string
	OwnerID     uint
}

type CreateTicketWithReviewResult struct {
	Ticket *ticket.Ticket
	Review *review.Review
}

type CreateTicketWithReviewUseCase struct {
	ticketRepo ticket.Repository
	reviewRepo review.Repository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewCreateTicketWithReviewUseCase(
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateTicketWithReviewUseCase {
	return &CreateTicketWithReviewUseCase{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *CreateTicketWithReviewUseCase) Execute(ctx context.Context, cmd CreateTicketWithReviewCommand) (*CreateTicketWithReviewResult, error) {
	t, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.OwnerID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	rating, err := vo.NewRating(cmd.Rating)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	var rev *review.Review

	// Both rows land together or not at all: a review must never exist
	// without its ticket.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, t); err != nil {
			return err
		}

		rev, err = review.NewReview(cmd.Headline, rating, cmd.Body, cmd.OwnerID, t.ID())
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}

		return uc.reviewRepo.Save(txCtx, rev)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket and review created",
		"ticket_id", t.ID(),
		"review_id", rev.ID(),
		"owner_id", cmd.OwnerID)

	return &CreateTicketWithReviewResult{Ticket: t, Review: rev}, nil
}
