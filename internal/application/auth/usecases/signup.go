package usecases

import (
	"context"
	"fmt"

	"litrevu/internal/domain/user"
	vo "litrevu/internal/domain/user/valueobjects"
	apperrors "litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type SignUpCommand struct {
	Username string
	Password string
}

// SignUpResult carries the created user together with a fresh token pair:
// signing up logs the user straight in.
type SignUpResult struct {
	User         *user.User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type SignUpUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	jwtService     JWTService
	logger         logger.Interface
}

func NewSignUpUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *SignUpUseCase {
	return &SignUpUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (uc *SignUpUseCase) Execute(ctx context.Context, cmd SignUpCommand) (*SignUpResult, error) {
	username, err := vo.NewUsername(cmd.Username)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, username.String())
	if err != nil {
		uc.logger.Errorw("failed to check username availability", "error", err)
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("username is already taken")
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(username, hash)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	// The unique index still catches a concurrent signup with the same name.
	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	tokens, err := uc.jwtService.Generate(newUser.ID(), newUser.Username().String(), false)
	if err != nil {
		uc.logger.Errorw("failed to generate tokens after signup", "error", err, "user_id", newUser.ID())
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("user signed up", "user_id", newUser.ID(), "username", newUser.Username().String())

	return &SignUpResult{
		User:         newUser,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
