package usecases

import (
	"context"

	"reinkjet/internal/application/account/dto"
	"reinkjet/internal/domain/account"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

type GetProfileQuery struct {
	AccountID uint
}

type GetProfileUseCase struct {
	accountRepo account.AccountRepository
	logger      logger.Interface
}

func NewGetProfileUseCase(accountRepo account.AccountRepository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*dto.AccountDTO, error) {
	if query.AccountID == 0 {
		return nil, errors.NewValidationError("account ID is required")
	}

	acc, err := uc.accountRepo.GetByID(ctx, query.AccountID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load account", "account_id", query.AccountID, "error", err)
		return nil, errors.NewInternalError("failed to load profile")
	}

	return dto.ToAccountDTO(acc), nil
}
