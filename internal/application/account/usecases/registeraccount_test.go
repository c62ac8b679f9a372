package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reinkjet/internal/domain/account"
	"reinkjet/internal/shared/errors"
)

func validRegisterCommand() RegisterAccountCommand {
	return RegisterAccountCommand{
		Username:     "joao.silva",
		Email:        "Joao@Empresa.com.br",
		Password:     "secret123",
		FullName:     "João Silva",
		CompanyName:  "Empresa LTDA",
		ContractType: "both",
	}
}

func TestRegisterAccountUseCase_Execute_Success(t *testing.T) {
	var saved *account.Account
	mockRepo := &mockAccountRepository{
		SaveFunc: func(ctx context.Context, a *account.Account) error {
			saved = a
			return a.SetID(10)
		},
	}

	uc := NewRegisterAccountUseCase(mockRepo, &mockPasswordHasher{}, &mockTokenService{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), validRegisterCommand())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(10), result.Account.ID)
	assert.Equal(t, "test-token", result.AccessToken)
	// Email is normalized to lowercase.
	assert.Equal(t, "joao@empresa.com.br", result.Account.Email)
	assert.Equal(t, "both", result.Account.ContractType)

	require.NotNil(t, saved)
	assert.Equal(t, "hashed:secret123", saved.PasswordHash())
	assert.True(t, saved.IsActive())
}

func TestRegisterAccountUseCase_Execute_InvalidEmail(t *testing.T) {
	cmd := validRegisterCommand()
	cmd.Email = "not-an-email"

	uc := NewRegisterAccountUseCase(&mockAccountRepository{}, &mockPasswordHasher{}, &mockTokenService{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), cmd)

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestRegisterAccountUseCase_Execute_ShortPassword(t *testing.T) {
	cmd := validRegisterCommand()
	cmd.Password = "abc"

	uc := NewRegisterAccountUseCase(&mockAccountRepository{}, &mockPasswordHasher{}, &mockTokenService{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), cmd)

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestRegisterAccountUseCase_Execute_UsernameTaken(t *testing.T) {
	mockRepo := &mockAccountRepository{
		ExistsByUsernameFunc: func(ctx context.Context, username string) (bool, error) {
			return true, nil
		},
	}

	uc := NewRegisterAccountUseCase(mockRepo, &mockPasswordHasher{}, &mockTokenService{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), validRegisterCommand())

	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterAccountUseCase_Execute_EmailTaken(t *testing.T) {
	mockRepo := &mockAccountRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			assert.Equal(t, "joao@empresa.com.br", email)
			return true, nil
		},
	}

	uc := NewRegisterAccountUseCase(mockRepo, &mockPasswordHasher{}, &mockTokenService{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), validRegisterCommand())

	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterAccountUseCase_Execute_InvalidContractType(t *testing.T) {
	cmd := validRegisterCommand()
	cmd.ContractType = "leasing"

	uc := NewRegisterAccountUseCase(&mockAccountRepository{}, &mockPasswordHasher{}, &mockTokenService{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), cmd)

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestRegisterAccountUseCase_Execute_DuplicateOnSave(t *testing.T) {
	// A concurrent registration can slip between the uniqueness check
	// and the insert; the unique index violation maps to a conflict.
	mockRepo := &mockAccountRepository{
		SaveFunc: func(ctx context.Context, a *account.Account) error {
			return fmt.Errorf("Error 1062 (23000): Duplicate entry 'joao.silva' for key 'accounts.username'")
		},
	}

	uc := NewRegisterAccountUseCase(mockRepo, &mockPasswordHasher{}, &mockTokenService{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), validRegisterCommand())

	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
}
