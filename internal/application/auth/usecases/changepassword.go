package usecases

import (
	"context"
	"fmt"

	"litrevu/internal/domain/user"
	apperrors "litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
}

type ChangePasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	if err := u.VerifyPassword(cmd.CurrentPassword, uc.passwordHasher); err != nil {
		return apperrors.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := uc.passwordHasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash new password", "error", err, "user_id", cmd.UserID)
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := u.ChangePassword(hash); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to store new password", "error", err, "user_id", cmd.UserID)
		return fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("password changed", "user_id", cmd.UserID)

	return nil
}
