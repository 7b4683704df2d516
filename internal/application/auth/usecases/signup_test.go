package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

func TestSignUpUseCase_Execute(t *testing.T) {
	t.Run("creates user and logs in", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewSignUpUseCase(repo, fakeHasher{}, &fakeJWTService{}, logger.NewLogger())

		result, err := uc.Execute(context.Background(), SignUpCommand{
			Username: "alice",
			Password: "s3cretpass",
		})

		require.NoError(t, err)
		assert.NotZero(t, result.User.ID())
		assert.Equal(t, "alice", result.User.Username().String())
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)

		stored, err := repo.GetByUsername(context.Background(), "alice")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "hashed:s3cretpass", stored.PasswordHash())
	})

	t.Run("taken username is a conflict", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewSignUpUseCase(repo, fakeHasher{}, &fakeJWTService{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), SignUpCommand{Username: "bob", Password: "s3cretpass"})
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), SignUpCommand{Username: "bob", Password: "otherpass"})
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("invalid username is rejected", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewSignUpUseCase(repo, fakeHasher{}, &fakeJWTService{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), SignUpCommand{Username: "no spaces", Password: "s3cretpass"})
		assert.True(t, apperrors.IsValidationError(err))
	})
}
