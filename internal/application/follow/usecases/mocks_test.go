package usecases

import (
	"context"

	"litrevu/internal/domain/follow"
	"litrevu/internal/domain/user"
	uservo "litrevu/internal/domain/user/valueobjects"
	apperrors "litrevu/internal/shared/errors"
)

type pair struct {
	follower uint
	followed uint
}

type fakeFollowRepo struct {
	edges  map[pair]*follow.Edge
	nextID uint
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: map[pair]*follow.Edge{}, nextID: 1}
}

func (r *fakeFollowRepo) Save(ctx context.Context, e *follow.Edge) error {
	key := pair{e.FollowerID(), e.FollowedID()}
	if _, ok := r.edges[key]; ok {
		return apperrors.NewConflictError("already following this user")
	}
	if err := e.SetID(r.nextID); err != nil {
		return err
	}
	r.edges[key] = e
	r.nextID++
	return nil
}

func (r *fakeFollowRepo) Delete(ctx context.Context, followerID, followedID uint) (bool, error) {
	key := pair{followerID, followedID}
	if _, ok := r.edges[key]; !ok {
		return false, nil
	}
	delete(r.edges, key)
	return true, nil
}

func (r *fakeFollowRepo) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	_, ok := r.edges[pair{followerID, followedID}]
	return ok, nil
}

func (r *fakeFollowRepo) GetFollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	var ids []uint
	for key := range r.edges {
		if key.follower == followerID {
			ids = append(ids, key.followed)
		}
	}
	return ids, nil
}

func (r *fakeFollowRepo) GetFollowerIDs(ctx context.Context, followedID uint) ([]uint, error) {
	var ids []uint
	for key := range r.edges {
		if key.followed == followedID {
			ids = append(ids, key.follower)
		}
	}
	return ids, nil
}

// countingFollowRepo records how many writes reach the underlying repo.
type countingFollowRepo struct {
	*fakeFollowRepo
	saves int
}

func (r *countingFollowRepo) Save(ctx context.Context, e *follow.Edge) error {
	r.saves++
	return r.fakeFollowRepo.Save(ctx, e)
}

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
	for _, u := range r.users {
		if u.Username().String() == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }

func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	u, _ := r.GetByUsername(ctx, username)
	return u != nil, nil
}
