package usecases

import (
	"context"

	"reinkjet/internal/domain/account"
	vo "reinkjet/internal/domain/account/value_objects"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

type ChangePasswordCommand struct {
	AccountID       uint
	CurrentPassword string
	NewPassword     string
}

type ChangePasswordUseCase struct {
	accountRepo account.AccountRepository
	hasher      PasswordHasher
	logger      logger.Interface
}

func NewChangePasswordUseCase(
	accountRepo account.AccountRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	if cmd.AccountID == 0 {
		return errors.NewValidationError("account ID is required")
	}
	if cmd.CurrentPassword == "" {
		return errors.NewValidationError("current password is required")
	}

	newPassword, err := vo.NewPassword(cmd.NewPassword)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	acc, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to load account", "account_id", cmd.AccountID, "error", err)
		return errors.NewInternalError("failed to change password")
	}

	if err := uc.hasher.Verify(acc.PasswordHash(), cmd.CurrentPassword); err != nil {
		return errors.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := uc.hasher.Hash(newPassword.String())
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return errors.NewInternalError("failed to change password")
	}

	if err := acc.ChangePasswordHash(hash); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.accountRepo.Update(ctx, acc); err != nil {
		uc.logger.Errorw("failed to update account", "account_id", acc.ID(), "error", err)
		return errors.NewInternalError("failed to change password")
	}

	uc.logger.Infow("password changed", "account_id", acc.ID())

	return nil
}
