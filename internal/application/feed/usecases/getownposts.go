package usecases

import (
	"context"
	"fmt"

	"litrevu/internal/domain/feed"
	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/domain/user"
	"litrevu/internal/shared/logger"
)

type GetOwnPostsCommand struct {
	UserID uint
}

// GetOwnPostsResult lists everything the user posted, newest first, for
// the posts page where entries can be edited or deleted.
type GetOwnPostsResult struct {
	Posts   []feed.Post
	Users   map[uint]*user.User
	Tickets map[uint]*ticket.Ticket
}

type GetOwnPostsUseCase struct {
	ticketRepo ticket.Repository
	reviewRepo review.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetOwnPostsUseCase(
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetOwnPostsUseCase {
	return &GetOwnPostsUseCase{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *GetOwnPostsUseCase) Execute(ctx context.Context, cmd GetOwnPostsCommand) (*GetOwnPostsResult, error) {
	ownIDs := []uint{cmd.UserID}

	tickets, err := uc.ticketRepo.GetByOwnerIDs(ctx, ownIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load own tickets: %w", err)
	}

	reviews, err := uc.reviewRepo.GetByOwnerIDs(ctx, ownIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load own reviews: %w", err)
	}

	ticketPosts := make([]feed.Post, 0, len(tickets))
	ticketsByID := make(map[uint]*ticket.Ticket, len(tickets))
	for _, t := range tickets {
		ticketPosts = append(ticketPosts, feed.NewTicketPost(t))
		ticketsByID[t.ID()] = t
	}

	reviewPosts := make([]feed.Post, 0, len(reviews))
	var missingTicketIDs []uint
	for _, r := range reviews {
		reviewPosts = append(reviewPosts, feed.NewReviewPost(r))
		if _, ok := ticketsByID[r.TicketID()]; !ok {
			missingTicketIDs = append(missingTicketIDs, r.TicketID())
		}
	}

	if len(missingTicketIDs) > 0 {
		parents, err := uc.ticketRepo.GetByIDs(ctx, missingTicketIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load parent tickets: %w", err)
		}
		for _, t := range parents {
			ticketsByID[t.ID()] = t
		}
	}

	userIDSet := map[uint]struct{}{cmd.UserID: {}}
	for _, t := range ticketsByID {
		userIDSet[t.OwnerID()] = struct{}{}
	}

	userIDs := make([]uint, 0, len(userIDSet))
	for id := range userIDSet {
		userIDs = append(userIDs, id)
	}

	userList, err := uc.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load authors: %w", err)
	}

	users := make(map[uint]*user.User, len(userList))
	for _, u := range userList {
		users[u.ID()] = u
	}

	return &GetOwnPostsResult{
		Posts:   feed.Merge(ticketPosts, reviewPosts),
		Users:   users,
		Tickets: ticketsByID,
	}, nil
}
