package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"reinkjet/internal/domain/account"
	vo "reinkjet/internal/domain/account/value_objects"
	"reinkjet/internal/shared/logger"
)

var errDatabase = errors.New("database error")

type mockAccountRepository struct {
	SaveFunc                   func(ctx context.Context, a *account.Account) error
	UpdateFunc                 func(ctx context.Context, a *account.Account) error
	GetByIDFunc                func(ctx context.Context, accountID uint) (*account.Account, error)
	GetByUsernameFunc          func(ctx context.Context, username string) (*account.Account, error)
	GetByEmailFunc             func(ctx context.Context, email string) (*account.Account, error)
	GetByIdentifierFunc        func(ctx context.Context, identifier string) (*account.Account, error)
	ExistsByUsernameFunc       func(ctx context.Context, username string) (bool, error)
	ExistsByEmailFunc          func(ctx context.Context, email string) (bool, error)
	ExistsByEmailExcludingFunc func(ctx context.Context, email string, accountID uint) (bool, error)
}

func (m *mockAccountRepository) Save(ctx context.Context, a *account.Account) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAccountRepository) GetByID(ctx context.Context, accountID uint) (*account.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetByIdentifier(ctx context.Context, identifier string) (*account.Account, error) {
	if m.GetByIdentifierFunc != nil {
		return m.GetByIdentifierFunc(ctx, identifier)
	}
	return nil, nil
}

func (m *mockAccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockAccountRepository) ExistsByEmailExcluding(ctx context.Context, email string, accountID uint) (bool, error) {
	if m.ExistsByEmailExcludingFunc != nil {
		return m.ExistsByEmailExcludingFunc(ctx, email, accountID)
	}
	return false, nil
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(hashedPassword, password string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	if hashedPassword != "hashed:"+password {
		return errors.New("password verification failed")
	}
	return nil
}

type mockTokenService struct {
	GenerateAccessTokenFunc func(accountID uint, username string) (string, error)
}

func (m *mockTokenService) GenerateAccessToken(accountID uint, username string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(accountID, username)
	}
	return "test-token", nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any) {}
func (m *mockLogger) Warn(msg string, args ...any) {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) Fatal(msg string, args ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func strPtr(s string) *string { return &s }

// newStoredAccount builds an account that looks like it was loaded from
// the database, with the password "secret123" already hashed.
func newStoredAccount(t *testing.T) *account.Account {
	t.Helper()
	email, err := vo.NewEmail("joao@empresa.com.br")
	require.NoError(t, err)
	acc, err := account.NewAccount("joao.silva", email, "hashed:secret123", "João Silva", account.CompanyProfile{Name: "Empresa LTDA"})
	require.NoError(t, err)
	require.NoError(t, acc.SetID(1))
	return acc
}
