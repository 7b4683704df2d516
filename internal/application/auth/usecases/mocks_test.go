package usecases

import (
	"context"
	"fmt"

	"litrevu/internal/domain/user"
)

type fakeUserRepo struct {
	users  map[uint]*user.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*user.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if err := u.SetID(r.nextID); err != nil {
		return err
	}
	r.users[r.nextID] = u
	r.nextID++
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user not found")
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

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type fakeJWTService struct {
	generateErr error
	refreshErr  error
}

func (s *fakeJWTService) Generate(userID uint, username string, rememberMe bool) (*TokenPair, error) {
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	return &TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", userID),
		RefreshToken: fmt.Sprintf("refresh-%d", userID),
		ExpiresIn:    900,
	}, nil
}

func (s *fakeJWTService) Refresh(refreshToken string) (string, error) {
	if s.refreshErr != nil {
		return "", s.refreshErr
	}
	if refreshToken != "valid-refresh" {
		return "", fmt.Errorf("invalid token")
	}
	return "new-access", nil
}
