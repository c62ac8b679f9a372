package usecases

import (
	"context"

	"reinkjet/internal/application/account/dto"
	"reinkjet/internal/domain/account"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

// invalidCredentialsMsg is shared by every authentication failure so the
// response does not reveal whether the account exists or is disabled.
const invalidCredentialsMsg = "invalid credentials"

type AuthenticateAccountCommand struct {
	// Identifier is a username or an email address.
	Identifier string
	Password   string
}

type AuthenticateAccountResult struct {
	Account     *dto.AccountDTO
	AccessToken string
}

type AuthenticateAccountUseCase struct {
	accountRepo account.AccountRepository
	hasher      PasswordHasher
	tokens      TokenService
	logger      logger.Interface
}

func NewAuthenticateAccountUseCase(
	accountRepo account.AccountRepository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *AuthenticateAccountUseCase {
	return &AuthenticateAccountUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger,
	}
}

func (uc *AuthenticateAccountUseCase) Execute(ctx context.Context, cmd AuthenticateAccountCommand) (*AuthenticateAccountResult, error) {
	if cmd.Identifier == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("identifier and password are required")
	}

	acc, err := uc.accountRepo.GetByIdentifier(ctx, cmd.Identifier)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError(invalidCredentialsMsg)
		}
		uc.logger.Errorw("failed to look up account", "error", err)
		return nil, errors.NewInternalError("failed to authenticate")
	}

	if err := uc.hasher.Verify(acc.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("authentication failed", "identifier", cmd.Identifier)
		return nil, errors.NewUnauthorizedError(invalidCredentialsMsg)
	}

	if !acc.IsActive() {
		uc.logger.Warnw("authentication attempt on inactive account", "account_id", acc.ID())
		return nil, errors.NewUnauthorizedError(invalidCredentialsMsg)
	}

	acc.RecordLogin()
	if err := uc.accountRepo.Update(ctx, acc); err != nil {
		// A failed last_login stamp should not block the login itself.
		uc.logger.Warnw("failed to record last login", "account_id", acc.ID(), "error", err)
	}

	token, err := uc.tokens.GenerateAccessToken(acc.ID(), acc.Username())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "account_id", acc.ID(), "error", err)
		return nil, errors.NewInternalError("failed to authenticate")
	}

	uc.logger.Infow("account authenticated", "account_id", acc.ID())

	return &AuthenticateAccountResult{
		Account:     dto.ToAccountDTO(acc),
		AccessToken: token,
	}, nil
}
