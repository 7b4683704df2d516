package usecases

import (
	"context"
	"fmt"

	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/domain/user"
	"litrevu/internal/shared/logger"
)

type GetTicketCommand struct {
	TicketID uint
}

// GetTicketResult carries the ticket, its owner and the attached review,
// if any, so the detail page renders from a single call.
type GetTicketResult struct {
	Ticket   *ticket.Ticket
	Owner    *user.User
	Review   *review.Review
	Reviewer *user.User
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	reviewRepo review.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	owner, err := uc.userRepo.GetByID(ctx, t.OwnerID())
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket owner: %w", err)
	}

	rev, err := uc.reviewRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket review: %w", err)
	}

	var reviewer *user.User
	if rev != nil {
		reviewer, err = uc.userRepo.GetByID(ctx, rev.OwnerID())
		if err != nil {
			return nil, fmt.Errorf("failed to load review author: %w", err)
		}
	}

	return &GetTicketResult{
		Ticket:   t,
		Owner:    owner,
		Review:   rev,
		Reviewer: reviewer,
	}, nil
}
