package user

import (
	"fmt"
	"time"

	vo "litrevu/internal/domain/user/valueobjects"
)

// PasswordHasher abstracts the password hashing algorithm.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// User is the account aggregate. Every ticket, review, and follow edge
// references a user by its internal ID.
type User struct {
	id           uint
	username     vo.Username
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a user with an already-hashed password credential.
func NewUser(username vo.Username, passwordHash string) (*User, error) {
	if username.IsZero() {
		return nil, fmt.Errorf("username is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &User{
		username:     username,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rehydrates a user from persistence.
func ReconstructUser(
	id uint,
	username vo.Username,
	passwordHash string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username.IsZero() {
		return nil, fmt.Errorf("username is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() vo.Username {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// VerifyPassword checks a plaintext password against the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if err := hasher.Verify(password, u.passwordHash); err != nil {
		return fmt.Errorf("invalid credentials")
	}
	return nil
}

// ChangePassword replaces the stored credential with a new hash.
func (u *User) ChangePassword(newHash string) error {
	if len(newHash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = newHash
	u.updatedAt = time.Now()
	return nil
}
