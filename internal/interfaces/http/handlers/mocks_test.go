package handlers

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	authUsecases "litrevu/internal/application/auth/usecases"
	"litrevu/internal/domain/follow"
	"litrevu/internal/domain/review"
	reviewvo "litrevu/internal/domain/review/valueobjects"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/domain/user"
	uservo "litrevu/internal/domain/user/valueobjects"
	apperrors "litrevu/internal/shared/errors"
)

type fakeUserRepo struct {
	users  map[uint]*user.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*user.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Username().String() == u.Username().String() {
			return apperrors.NewConflictError("username is already taken")
		}
	}
	u.SetID(r.nextID)
	r.users[r.nextID] = u
	r.nextID++
	return nil
}

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
	for _, u := range r.users {
		if u.Username().String() == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	u, _ := r.GetByUsername(ctx, username)
	return u != nil, nil
}

type fakeTicketRepo struct {
	tickets map[uint]*ticket.Ticket
	nextID  uint
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: map[uint]*ticket.Ticket{}, nextID: 1}
}

func (r *fakeTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error {
	t.SetID(r.nextID)
	r.tickets[r.nextID] = t
	r.nextID++
	return nil
}

func (r *fakeTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error {
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
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result, nil
}

type fakeReviewRepo struct {
	reviews map[uint]*review.Review
	tickets *fakeTicketRepo
	nextID  uint
}

func newFakeReviewRepo(tickets *fakeTicketRepo) *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[uint]*review.Review{}, tickets: tickets, nextID: 1}
}

func (r *fakeReviewRepo) Save(ctx context.Context, rev *review.Review) error {
	for _, existing := range r.reviews {
		if existing.TicketID() == rev.TicketID() {
			return apperrors.NewConflictError("this ticket already has a review")
		}
	}
	rev.SetID(r.nextID)
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
		if t, ok := r.tickets.tickets[rev.TicketID()]; ok && t.OwnerID() == ticketOwnerID {
			result = append(result, rev)
		}
	}
	return result, nil
}

func (r *fakeReviewRepo) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	for id, rev := range r.reviews {
		if rev.TicketID() == ticketID {
			delete(r.reviews, id)
		}
	}
	return nil
}

type followKey struct {
	follower uint
	followed uint
}

type fakeFollowRepo struct {
	edges map[followKey]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: map[followKey]bool{}}
}

func (r *fakeFollowRepo) Save(ctx context.Context, e *follow.Edge) error {
	key := followKey{e.FollowerID(), e.FollowedID()}
	if r.edges[key] {
		return apperrors.NewConflictError("already following this user")
	}
	r.edges[key] = true
	return nil
}

func (r *fakeFollowRepo) Delete(ctx context.Context, followerID, followedID uint) (bool, error) {
	key := followKey{followerID, followedID}
	existed := r.edges[key]
	delete(r.edges, key)
	return existed, nil
}

func (r *fakeFollowRepo) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	return r.edges[followKey{followerID, followedID}], nil
}

func (r *fakeFollowRepo) GetFollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	ids := []uint{}
	for key := range r.edges {
		if key.follower == followerID {
			ids = append(ids, key.followed)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *fakeFollowRepo) GetFollowerIDs(ctx context.Context, followedID uint) ([]uint, error) {
	ids := []uint{}
	for key := range r.edges {
		if key.followed == followedID {
			ids = append(ids, key.follower)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

type fakeHasher struct{}

func (h *fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (h *fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type fakeJWTService struct{}

func (s *fakeJWTService) Generate(userID uint, username string, rememberMe bool) (*authUsecases.TokenPair, error) {
	return &authUsecases.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", userID),
		RefreshToken: fmt.Sprintf("refresh-%d", userID),
		ExpiresIn:    900,
	}, nil
}

func (s *fakeJWTService) Refresh(refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", fmt.Errorf("empty token")
	}
	return "refreshed-access", nil
}

type fakeImageStore struct {
	saved   map[string][]byte
	deleted []string
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{saved: map[string][]byte{}}
}

func (s *fakeImageStore) Save(originalName string, data io.Reader) (string, error) {
	content, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	path := "tickets/" + originalName
	s.saved[path] = content
	return path, nil
}

func (s *fakeImageStore) Delete(relPath string) error {
	s.deleted = append(s.deleted, relPath)
	delete(s.saved, relPath)
	return nil
}

type fakeTxManager struct{}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func seedUser(r *fakeUserRepo, id uint, name string) *user.User {
	username, _ := uservo.NewUsername(name)
	now := time.Now().UTC()
	u, _ := user.ReconstructUser(id, username, "hashed:secret123", now, now)
	r.users[id] = u
	if id >= r.nextID {
		r.nextID = id + 1
	}
	return u
}

func seedTicket(r *fakeTicketRepo, id uint, title string, ownerID uint) *ticket.Ticket {
	now := time.Now().UTC()
	t, _ := ticket.ReconstructTicket(id, title, "a description", "", ownerID, now, now)
	r.tickets[id] = t
	if id >= r.nextID {
		r.nextID = id + 1
	}
	return t
}

func seedReview(r *fakeReviewRepo, id uint, ticketID, ownerID uint) *review.Review {
	rating, _ := reviewvo.NewRating(4)
	now := time.Now().UTC()
	rev, _ := review.ReconstructReview(id, "a headline", rating, "a body", ownerID, ticketID, now, now)
	r.reviews[id] = rev
	if id >= r.nextID {
		r.nextID = id + 1
	}
	return rev
}
