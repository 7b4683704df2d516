package usecases

import (
	"context"

	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	apperrors "litrevu/internal/shared/errors"
)

type fakeTicketRepo struct {
	tickets map[uint]*ticket.Ticket
	nextID  uint
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: map[uint]*ticket.Ticket{}, nextID: 1}
}

func (r *fakeTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error {
	if err := t.SetID(r.nextID); err != nil {
		return err
	}
	r.tickets[r.nextID] = t
	r.nextID++
	return nil
}

func (r *fakeTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error {
	r.tickets[t.ID()] = t
	return nil
}

func (r *fakeTicketRepo) Delete(ctx context.Context, id uint) error {
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
	return []*ticket.Ticket{}, nil
}

// fakeReviewRepo enforces the one-review-per-ticket rule the way the
// database unique index does.
type fakeReviewRepo struct {
	reviews map[uint]*review.Review
	nextID  uint
	saveErr error
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[uint]*review.Review{}, nextID: 1}
}

func (r *fakeReviewRepo) Save(ctx context.Context, rev *review.Review) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	for _, existing := range r.reviews {
		if existing.TicketID() == rev.TicketID() {
			return apperrors.NewConflictError("this ticket already has a review")
		}
	}
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
	if _, ok := r.reviews[id]; !ok {
		return apperrors.NewNotFoundError("review not found")
	}
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
	return []*review.Review{}, nil
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

type fakeTxManager struct {
	runs int
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.runs++
	return fn(ctx)
}
