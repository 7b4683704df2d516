package usecases

import (
	"context"
	"sort"

	"litrevu/internal/domain/follow"
	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/domain/user"
	uservo "litrevu/internal/domain/user/valueobjects"
	apperrors "litrevu/internal/shared/errors"
)

type fakeFollowRepo struct {
	followed map[uint][]uint
}

func (r *fakeFollowRepo) Save(ctx context.Context, e *follow.Edge) error { return nil }

func (r *fakeFollowRepo) Delete(ctx context.Context, followerID, followedID uint) (bool, error) {
	return false, nil
}

func (r *fakeFollowRepo) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	return false, nil
}

func (r *fakeFollowRepo) GetFollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	return r.followed[followerID], nil
}

func (r *fakeFollowRepo) GetFollowerIDs(ctx context.Context, followedID uint) ([]uint, error) {
	return nil, nil
}

type fakeTicketRepo struct {
	tickets map[uint]*ticket.Ticket
}

func (r *fakeTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (r *fakeTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (r *fakeTicketRepo) Delete(ctx context.Context, id uint) error          { return nil }

func (r *fakeTicketRepo) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	t, ok := r.tickets[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}
	return t, nil
}

func (r *fakeTicketRepo) GetByIDs(ctx context.Context, ids []uint) ([]*ticket.Ticket, error) {
	result := []*ticket.Ticket{}
	for _, id := range ids {
		if t, ok := r.tickets[id]; ok {
			result = append(result, t)
		}
	}
	return result, nil
}

func (r *fakeTicketRepo) GetByOwnerIDs(ctx context.Context, ownerIDs []uint) ([]*ticket.Ticket, error) {
	result := []*ticket.Ticket{}
	for _, t := range r.tickets {
		for _, owner := range ownerIDs {
			if t.OwnerID() == owner {
				result = append(result, t)
				break
			}
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result, nil
}

type fakeReviewRepo struct {
	reviews map[uint]*review.Review
	tickets *fakeTicketRepo
}

func (r *fakeReviewRepo) Save(ctx context.Context, rev *review.Review) error   { return nil }
func (r *fakeReviewRepo) Update(ctx context.Context, rev *review.Review) error { return nil }
func (r *fakeReviewRepo) Delete(ctx context.Context, id uint) error            { return nil }

func (r *fakeReviewRepo) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	rev, ok := r.reviews[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("review not found")
	}
	return rev, nil
}

func (r *fakeReviewRepo) GetByTicketID(ctx context.Context, ticketID uint) (*review.Review, error) {
	for _, rev := range r.reviews {
		if rev.TicketID() == ticketID {
			return rev, nil
		}
	}
	return nil, nil
}

func (r *fakeReviewRepo) ExistsByTicketID(ctx context.Context, ticketID uint) (bool, error) {
	rev, _ := r.GetByTicketID(ctx, ticketID)
	return rev != nil, nil
}

func (r *fakeReviewRepo) GetByOwnerIDs(ctx context.Context, ownerIDs []uint) ([]*review.Review, error) {
	result := []*review.Review{}
	for _, rev := range r.reviews {
		for _, owner := range ownerIDs {
			if rev.OwnerID() == owner {
				result = append(result, rev)
				break
			}
		}
	}
	return result, nil
}

func (r *fakeReviewRepo) GetByTicketOwnerID(ctx context.Context, ticketOwnerID uint) ([]*review.Review, error) {
	result := []*review.Review{}
	for _, rev := range r.reviews {
		t, ok := r.tickets.tickets[rev.TicketID()]
		if ok && t.OwnerID() == ticketOwnerID {
			result = append(result, rev)
		}
	}
	return result, nil
}

func (r *fakeReviewRepo) DeleteByTicketID(ctx context.Context, ticketID uint) error { return nil }

type fakeUserRepo struct {
	users map[uint]*user.User
}

func newFakeUserRepo(names map[uint]string) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uint]*user.User{}}
	for id, name := range names {
		username, err := uservo.NewUsername(name)
		if err != nil {
			panic(err)
		}
		u, err := user.NewUser(username, "hash")
		if err != nil {
			panic(err)
		}
		if err := u.SetID(id); err != nil {
			panic(err)
		}
		repo.users[id] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return u, nil
}

func (r *fakeUserRepo) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	result := []*user.User{}
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			result = append(result, u)
		}
	}
	return result, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }

func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}
