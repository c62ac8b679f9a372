package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reinkjet/internal/domain/account"
	"reinkjet/internal/shared/constants"
	"reinkjet/internal/shared/errors"
)

func TestAuthenticateAccountUseCase_Execute_Success(t *testing.T) {
	acc := newStoredAccount(t)
	var updated *account.Account
	mockRepo := &mockAccountRepository{
		GetByIdentifierFunc: func(ctx context.Context, identifier string) (*account.Account, error) {
			assert.Equal(t, "joao.silva", identifier)
			return acc, nil
		},
		UpdateFunc: func(ctx context.Context, a *account.Account) error {
			updated = a
			return nil
		},
	}

	uc := NewAuthenticateAccountUseCase(mockRepo, &mockPasswordHasher{}, &mockTokenService{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), AuthenticateAccountCommand{
		Identifier: "joao.silva",
		Password:   "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "test-token", result.AccessToken)
	assert.Equal(t, uint(1), result.Account.ID)

	// The last login stamp is persisted.
	require.NotNil(t, updated)
	assert.NotNil(t, updated.LastLogin())
}

func TestAuthenticateAccountUseCase_Execute_WrongPassword(t *testing.T) {
	acc := newStoredAccount(t)
	mockRepo := &mockAccountRepository{
		GetByIdentifierFunc: func(ctx context.Context, identifier string) (*account.Account, error) {
			return acc, nil
		},
	}

	uc := NewAuthenticateAccountUseCase(mockRepo, &mockPasswordHasher{}, &mockTokenService{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), AuthenticateAccountCommand{
		Identifier: "joao.silva",
		Password:   "wrong",
	})

	assert.Nil(t, result)
	requireUnauthorized(t, err)
}

func TestAuthenticateAccountUseCase_Execute_UnknownIdentifier(t *testing.T) {
	mockRepo := &mockAccountRepository{
		GetByIdentifierFunc: func(ctx context.Context, identifier string) (*account.Account, error) {
			return nil, errors.NewNotFoundError(constants.ErrMsgResourceNotFound)
		},
	}

	uc := NewAuthenticateAccountUseCase(mockRepo, &mockPasswordHasher{}, &mockTokenService{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), AuthenticateAccountCommand{
		Identifier: "who",
		Password:   "secret123",
	})

	// An unknown identifier and a wrong password must be indistinguishable.
	assert.Nil(t, result)
	requireUnauthorized(t, err)
}

func TestAuthenticateAccountUseCase_Execute_InactiveAccount(t *testing.T) {
	acc := newStoredAccount(t)
	acc.Deactivate()
	mockRepo := &mockAccountRepository{
		GetByIdentifierFunc: func(ctx context.Context, identifier string) (*account.Account, error) {
			return acc, nil
		},
	}

	uc := NewAuthenticateAccountUseCase(mockRepo, &mockPasswordHasher{}, &mockTokenService{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), AuthenticateAccountCommand{
		Identifier: "joao.silva",
		Password:   "secret123",
	})

	assert.Nil(t, result)
	requireUnauthorized(t, err)
}

func TestAuthenticateAccountUseCase_Execute_LastLoginUpdateFailureIsTolerated(t *testing.T) {
	acc := newStoredAccount(t)
	mockRepo := &mockAccountRepository{
		GetByIdentifierFunc: func(ctx context.Context, identifier string) (*account.Account, error) {
			return acc, nil
		},
		UpdateFunc: func(ctx context.Context, a *account.Account) error {
			return errDatabase
		},
	}

	uc := NewAuthenticateAccountUseCase(mockRepo, &mockPasswordHasher{}, &mockTokenService{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), AuthenticateAccountCommand{
		Identifier: "joao.silva",
		Password:   "secret123",
	})

	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestAuthenticateAccountUseCase_Execute_MissingFields(t *testing.T) {
	uc := NewAuthenticateAccountUseCase(&mockAccountRepository{}, &mockPasswordHasher{}, &mockTokenService{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), AuthenticateAccountCommand{Identifier: "joao"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), AuthenticateAccountCommand{Password: "secret123"})
	assert.True(t, errors.IsValidationError(err))
}

func requireUnauthorized(t *testing.T, err error) {
	t.Helper()
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	assert.Equal(t, "invalid credentials", appErr.Message)
}
