package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reinkjet/internal/domain/account"
	"reinkjet/internal/shared/errors"
)

func TestUpdateProfileUseCase_Execute_Success(t *testing.T) {
	acc := newStoredAccount(t)
	mockRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, accountID uint) (*account.Account, error) {
			return acc, nil
		},
	}

	uc := NewUpdateProfileUseCase(mockRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateProfileCommand{
		AccountID:   1,
		FullName:    strPtr("João S. Silva"),
		Phone:       strPtr("+55 11 98888-0000"),
		CompanyCity: strPtr("São Paulo"),
	})

	require.NoError(t, err)
	assert.Equal(t, "João S. Silva", result.FullName)
	assert.Equal(t, "+55 11 98888-0000", result.Phone)
	assert.Equal(t, "São Paulo", result.CompanyCity)
	// Fields not present in the command are unchanged.
	assert.Equal(t, "Empresa LTDA", result.CompanyName)
	assert.Equal(t, "joao@empresa.com.br", result.Email)
}

func TestUpdateProfileUseCase_Execute_ChangeEmail(t *testing.T) {
	acc := newStoredAccount(t)
	var checkedEmail string
	mockRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, accountID uint) (*account.Account, error) {
			return acc, nil
		},
		ExistsByEmailExcludingFunc: func(ctx context.Context, email string, accountID uint) (bool, error) {
			checkedEmail = email
			assert.Equal(t, uint(1), accountID)
			return false, nil
		},
	}

	uc := NewUpdateProfileUseCase(mockRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateProfileCommand{
		AccountID: 1,
		Email:     strPtr("Novo@Empresa.com.br"),
	})

	require.NoError(t, err)
	assert.Equal(t, "novo@empresa.com.br", result.Email)
	assert.Equal(t, "novo@empresa.com.br", checkedEmail)
}

func TestUpdateProfileUseCase_Execute_SameEmailSkipsUniquenessCheck(t *testing.T) {
	acc := newStoredAccount(t)
	mockRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, accountID uint) (*account.Account, error) {
			return acc, nil
		},
		ExistsByEmailExcludingFunc: func(ctx context.Context, email string, accountID uint) (bool, error) {
			t.Fatal("uniqueness check should not run for an unchanged email")
			return false, nil
		},
	}

	uc := NewUpdateProfileUseCase(mockRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), UpdateProfileCommand{
		AccountID: 1,
		Email:     strPtr("JOAO@empresa.com.br"),
	})

	require.NoError(t, err)
}

func TestUpdateProfileUseCase_Execute_EmailTaken(t *testing.T) {
	acc := newStoredAccount(t)
	mockRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, accountID uint) (*account.Account, error) {
			return acc, nil
		},
		ExistsByEmailExcludingFunc: func(ctx context.Context, email string, accountID uint) (bool, error) {
			return true, nil
		},
	}

	uc := NewUpdateProfileUseCase(mockRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateProfileCommand{
		AccountID: 1,
		Email:     strPtr("taken@empresa.com.br"),
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
	// The aggregate keeps its original email on conflict.
	assert.Equal(t, "joao@empresa.com.br", acc.Email().String())
}

func TestUpdateProfileUseCase_Execute_InvalidEmail(t *testing.T) {
	acc := newStoredAccount(t)
	mockRepo := &mockAccountRepository{
		GetByIDFunc: func(ctx context.Context, accountID uint) (*account.Account, error) {
			return acc, nil
		},
	}

	uc := NewUpdateProfileUseCase(mockRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateProfileCommand{
		AccountID: 1,
		Email:     strPtr("not-an-email"),
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateProfileUseCase_Execute_MissingAccountID(t *testing.T) {
	uc := NewUpdateProfileUseCase(&mockAccountRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateProfileCommand{})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}
