package usecases

import (
	"context"

	"reinkjet/internal/application/account/dto"
	"reinkjet/internal/domain/account"
	vo "reinkjet/internal/domain/account/value_objects"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

type RegisterAccountCommand struct {
	Username       string
	Email          string
	Password       string
	FullName       string
	Phone          string
	CompanyName    string
	CompanyCNPJ    string
	CompanyAddress string
	CompanyCity    string
	CompanyState   string
	CompanyZip     string
	ContractNumber string
	ContractType   string
}

type RegisterAccountResult struct {
	Account     *dto.AccountDTO
	AccessToken string
}

type RegisterAccountUseCase struct {
	accountRepo account.AccountRepository
	hasher      PasswordHasher
	tokens      TokenService
	logger      logger.Interface
}

func NewRegisterAccountUseCase(
	accountRepo account.AccountRepository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *RegisterAccountUseCase {
	return &RegisterAccountUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger,
	}
}

func (uc *RegisterAccountUseCase) Execute(ctx context.Context, cmd RegisterAccountCommand) (*RegisterAccountResult, error) {
	uc.logger.Infow("executing register account use case", "username", cmd.Username)

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if exists, err := uc.accountRepo.ExistsByUsername(ctx, cmd.Username); err != nil {
		uc.logger.Errorw("failed to check username uniqueness", "error", err)
		return nil, errors.NewInternalError("failed to register account")
	} else if exists {
		return nil, errors.NewConflictError("username is already taken")
	}

	if exists, err := uc.accountRepo.ExistsByEmail(ctx, email.String()); err != nil {
		uc.logger.Errorw("failed to check email uniqueness", "error", err)
		return nil, errors.NewInternalError("failed to register account")
	} else if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(password.String())
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to register account")
	}

	newAccount, err := account.NewAccount(cmd.Username, email, hash, cmd.FullName, account.CompanyProfile{
		Name:    cmd.CompanyName,
		CNPJ:    cmd.CompanyCNPJ,
		Address: cmd.CompanyAddress,
		City:    cmd.CompanyCity,
		State:   cmd.CompanyState,
		Zip:     cmd.CompanyZip,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Phone != "" {
		newAccount.UpdateProfile(account.ProfileUpdate{Phone: &cmd.Phone})
	}
	if cmd.ContractNumber != "" {
		newAccount.SetContractNumber(cmd.ContractNumber)
	}
	if cmd.ContractType != "" {
		if err := newAccount.ChangeContractType(cmd.ContractType); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.accountRepo.Save(ctx, newAccount); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username or email is already registered")
		}
		uc.logger.Errorw("failed to save account", "error", err)
		return nil, errors.NewInternalError("failed to register account")
	}

	token, err := uc.tokens.GenerateAccessToken(newAccount.ID(), newAccount.Username())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "account_id", newAccount.ID(), "error", err)
		return nil, errors.NewInternalError("failed to register account")
	}

	uc.logger.Infow("account registered", "account_id", newAccount.ID(), "username", newAccount.Username())

	return &RegisterAccountResult{
		Account:     dto.ToAccountDTO(newAccount),
		AccessToken: token,
	}, nil
}
