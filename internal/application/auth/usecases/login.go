package usecases

import (
	"context"
	"fmt"

	"litrevu/internal/domain/user"
	apperrors "litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type LoginCommand struct {
	Username   string
	Password   string
	RememberMe bool
}

type LoginResult struct {
	User         *user.User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	jwtService     JWTService
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existingUser, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Same error for unknown username and wrong password, so the response
	// does not reveal which usernames exist.
	if existingUser == nil {
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Infow("failed login attempt", "username", cmd.Username)
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	tokens, err := uc.jwtService.Generate(existingUser.ID(), existingUser.Username().String(), cmd.RememberMe)
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", existingUser.ID())
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginResult{
		User:         existingUser,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
