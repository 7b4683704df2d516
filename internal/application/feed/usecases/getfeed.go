package usecases

import (
	"context"
	"fmt"

	"litrevu/internal/domain/feed"
	"litrevu/internal/domain/follow"
	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/domain/user"
	"litrevu/internal/shared/logger"
)

type GetFeedCommand struct {
	UserID uint
}

// GetFeedResult carries the merged posts plus lookup tables for the users
// and tickets they refer to, so rendering needs no further queries.
type GetFeedResult struct {
	Posts   []feed.Post
	Users   map[uint]*user.User
	Tickets map[uint]*ticket.Ticket
}

type GetFeedUseCase struct {
	followRepo follow.Repository
	ticketRepo ticket.Repository
	reviewRepo review.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetFeedUseCase(
	followRepo follow.Repository,
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetFeedUseCase {
	return &GetFeedUseCase{
		followRepo: followRepo,
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Execute assembles the feed: the user's own posts, posts of followed
// users, and reviews written by anyone in response to the user's tickets.
// Each entity type is loaded in one batched query.
func (uc *GetFeedUseCase) Execute(ctx context.Context, cmd GetFeedCommand) (*GetFeedResult, error) {
	followedIDs, err := uc.followRepo.GetFollowedIDs(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followed users: %w", err)
	}

	visibleOwnerIDs := append([]uint{cmd.UserID}, followedIDs...)

	tickets, err := uc.ticketRepo.GetByOwnerIDs(ctx, visibleOwnerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load feed tickets: %w", err)
	}

	reviews, err := uc.reviewRepo.GetByOwnerIDs(ctx, visibleOwnerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load feed reviews: %w", err)
	}

	responses, err := uc.reviewRepo.GetByTicketOwnerID(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load responses to own tickets: %w", err)
	}

	ticketPosts := make([]feed.Post, 0, len(tickets))
	for _, t := range tickets {
		ticketPosts = append(ticketPosts, feed.NewTicketPost(t))
	}

	reviewPosts := make([]feed.Post, 0, len(reviews)+len(responses))
	for _, r := range reviews {
		reviewPosts = append(reviewPosts, feed.NewReviewPost(r))
	}
	for _, r := range responses {
		reviewPosts = append(reviewPosts, feed.NewReviewPost(r))
	}

	posts := feed.Merge(ticketPosts, reviewPosts)

	users, ticketsByID, err := uc.loadReferences(ctx, posts, tickets)
	if err != nil {
		return nil, err
	}

	return &GetFeedResult{
		Posts:   posts,
		Users:   users,
		Tickets: ticketsByID,
	}, nil
}

// loadReferences resolves every user and parent ticket the merged posts
// mention. Reviews may answer tickets from users outside the feed, so
// missing parents are fetched in one extra batch.
func (uc *GetFeedUseCase) loadReferences(
	ctx context.Context,
	posts []feed.Post,
	knownTickets []*ticket.Ticket,
) (map[uint]*user.User, map[uint]*ticket.Ticket, error) {
	ticketsByID := make(map[uint]*ticket.Ticket, len(knownTickets))
	for _, t := range knownTickets {
		ticketsByID[t.ID()] = t
	}

	userIDSet := make(map[uint]struct{})
	var missingTicketIDs []uint

	for _, p := range posts {
		switch p.Kind {
		case feed.KindTicket:
			userIDSet[p.Ticket.OwnerID()] = struct{}{}
		case feed.KindReview:
			userIDSet[p.Review.OwnerID()] = struct{}{}
			if _, ok := ticketsByID[p.Review.TicketID()]; !ok {
				missingTicketIDs = append(missingTicketIDs, p.Review.TicketID())
			}
		}
	}

	if len(missingTicketIDs) > 0 {
		parents, err := uc.ticketRepo.GetByIDs(ctx, missingTicketIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load parent tickets: %w", err)
		}
		for _, t := range parents {
			ticketsByID[t.ID()] = t
			userIDSet[t.OwnerID()] = struct{}{}
		}
	}

	userIDs := make([]uint, 0, len(userIDSet))
	for id := range userIDSet {
		userIDs = append(userIDs, id)
	}

	userList, err := uc.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load post authors: %w", err)
	}

	users := make(map[uint]*user.User, len(userList))
	for _, u := range userList {
		users[u.ID()] = u
	}

	return users, ticketsByID, nil
}
