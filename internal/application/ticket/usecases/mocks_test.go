package usecases

import (
	"context"
	"fmt"
	"io"

	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/domain/user"
	apperrors "litrevu/internal/shared/errors"
)

type fakeTicketRepo struct {
	tickets map[uint]*ticket.Ticket
	nextID  uint
	saveErr error
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: map[uint]*ticket.Ticket{}, nextID: 1}
}

func (r *fakeTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if err := t.SetID(r.nextID); err != nil {
		return err
	}
	r.tickets[r.nextID] = t
	r.nextID++
	return nil
}

func (r *fakeTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error {
	if _, ok := r.tickets[t.ID()]; !ok {
		return apperrors.NewNotFoundError("ticket not found")
	}
	r.tickets[t.ID()] = t
	return nil
}

func (r *fakeTicketRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.tickets[id]; !ok {
		return apperrors.NewNotFoundError("ticket not found")
	}
	delete(r.tickets, id)
	return nil
}

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
	return result, nil
}

type fakeReviewRepo struct {
	reviews map[uint]*review.Review
	nextID  uint
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[uint]*review.Review{}, nextID: 1}
}

func (r *fakeReviewRepo) Save(ctx context.Context, rev *review.Review) error {
	if err := rev.SetID(r.nextID); err != nil {
		return err
	}
	r.reviews[r.nextID] = rev
	r.nextID++
	return nil
}

func (r *fakeReviewRepo) Update(ctx context.Context, rev *review.Review) error {
	r.reviews[rev.ID()] = rev
	return nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id uint) error {
	delete(r.reviews, id)
	return nil
}

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
	return []*review.Review{}, nil
}

func (r *fakeReviewRepo) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	for id, rev := range r.reviews {
		if rev.TicketID() == ticketID {
			delete(r.reviews, id)
		}
	}
	return nil
}

type fakeUserRepo struct {
	users map[uint]*user.User
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

type fakeImageStore struct {
	saved   []string
	deleted []string
	saveErr error
	nextID  int
}

func (s *fakeImageStore) Save(originalName string, rd io.Reader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.nextID++
	path := fmt.Sprintf("tickets/img%d.png", s.nextID)
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *fakeImageStore) Delete(relPath string) error {
	s.deleted = append(s.deleted, relPath)
	return nil
}

type fakeTxManager struct {
	runs int
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.runs++
	return fn(ctx)
}
