package usecases

import (
	"context"

	"reinkjet/internal/application/account/dto"
	"reinkjet/internal/domain/account"
	vo "reinkjet/internal/domain/account/value_objects"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

type UpdateProfileCommand struct {
	AccountID      uint
	FullName       *string
	Phone          *string
	Email          *string
	CompanyName    *string
	CompanyCNPJ    *string
	CompanyAddress *string
	CompanyCity    *string
	CompanyState   *string
	CompanyZip     *string
}

type UpdateProfileUseCase struct {
	accountRepo account.AccountRepository
	logger      logger.Interface
}

func NewUpdateProfileUseCase(accountRepo account.AccountRepository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.AccountDTO, error) {
	if cmd.AccountID == 0 {
		return nil, errors.NewValidationError("account ID is required")
	}

	acc, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load account", "account_id", cmd.AccountID, "error", err)
		return nil, errors.NewInternalError("failed to update profile")
	}

	if cmd.Email != nil {
		email, err := vo.NewEmail(*cmd.Email)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if !email.Equals(acc.Email()) {
			taken, err := uc.accountRepo.ExistsByEmailExcluding(ctx, email.String(), acc.ID())
			if err != nil {
				uc.logger.Errorw("failed to check email uniqueness", "error", err)
				return nil, errors.NewInternalError("failed to update profile")
			}
			if taken {
				return nil, errors.NewConflictError("email is already registered")
			}
			if err := acc.ChangeEmail(email); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
		}
	}

	acc.UpdateProfile(account.ProfileUpdate{
		FullName:       cmd.FullName,
		Phone:          cmd.Phone,
		CompanyName:    cmd.CompanyName,
		CompanyCNPJ:    cmd.CompanyCNPJ,
		CompanyAddress: cmd.CompanyAddress,
		CompanyCity:    cmd.CompanyCity,
		CompanyState:   cmd.CompanyState,
		CompanyZip:     cmd.CompanyZip,
	})

	if err := uc.accountRepo.Update(ctx, acc); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to update account", "account_id", acc.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update profile")
	}

	uc.logger.Infow("profile updated", "account_id", acc.ID())

	return dto.ToAccountDTO(acc), nil
}
