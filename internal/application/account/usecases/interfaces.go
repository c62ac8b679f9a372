package usecases

import (
	"context"

	"reinkjet/internal/application/account/dto"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) error
}

// TokenService issues access tokens for authenticated accounts.
type TokenService interface {
	GenerateAccessToken(accountID uint, username string) (string, error)
}

type RegisterAccountExecutor interface {
	Execute(ctx context.Context, cmd RegisterAccountCommand) (*RegisterAccountResult, error)
}

type AuthenticateAccountExecutor interface {
	Execute(ctx context.Context, cmd AuthenticateAccountCommand) (*AuthenticateAccountResult, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*dto.AccountDTO, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.AccountDTO, error)
}

type ChangePasswordExecutor interface {
	Execute(ctx context.Context, cmd ChangePasswordCommand) error
}
