package usecases

import (
	"context"

	apperrors "litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	AccessToken string
}

type RefreshTokenUseCase struct {
	jwtService JWTService
	logger     logger.Interface
}

func NewRefreshTokenUseCase(jwtService JWTService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	if cmd.RefreshToken == "" {
		return nil, apperrors.NewUnauthorizedError("refresh token is required")
	}

	accessToken, err := uc.jwtService.Refresh(cmd.RefreshToken)
	if err != nil {
		uc.logger.Infow("refresh token rejected", "error", err)
		return nil, apperrors.NewUnauthorizedError("invalid refresh token")
	}

	return &RefreshTokenResult{AccessToken: accessToken}, nil
}
