package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"reinkjet/internal/domain/account"
	vo "reinkjet/internal/domain/account/value_objects"
	apperrors "reinkjet/internal/shared/errors"
)

func createTestAccount(t *testing.T, db *gorm.DB, username, emailAddr string) *account.Account {
	t.Helper()

	email, err := vo.NewEmail(emailAddr)
	require.NoError(t, err)

	acc, err := account.NewAccount(username, email, "hashed:secret123", "João Silva", account.CompanyProfile{
		Name: "Empresa LTDA",
		City: "São Paulo",
	})
	require.NoError(t, err)

	require.NoError(t, NewAccountRepository(db).Save(context.Background(), acc))
	return acc
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("SaveAssignsID", func(t *testing.T) {
		db := setupTestDB(t)
		acc := createTestAccount(t, db, "joao.silva", "joao@empresa.com.br")

		assert.NotZero(t, acc.ID())
	})

	t.Run("SaveDuplicateUsername", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAccountRepository(db)
		createTestAccount(t, db, "joao.silva", "joao@empresa.com.br")

		email, err := vo.NewEmail("outro@empresa.com.br")
		require.NoError(t, err)
		dup, err := account.NewAccount("joao.silva", email, "hashed:secret123", "Outro", account.CompanyProfile{Name: "Outra LTDA"})
		require.NoError(t, err)

		err = repo.Save(ctx, dup)
		require.Error(t, err)
		assert.True(t, apperrors.IsDuplicateError(err))
	})

	t.Run("GetByID", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAccountRepository(db)
		acc := createTestAccount(t, db, "joao.silva", "joao@empresa.com.br")

		found, err := repo.GetByID(ctx, acc.ID())
		require.NoError(t, err)
		assert.Equal(t, "joao.silva", found.Username())
		assert.Equal(t, "joao@empresa.com.br", found.Email().String())
		assert.Equal(t, "Empresa LTDA", found.Company().Name)
		assert.True(t, found.IsActive())
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAccountRepository(db)

		found, err := repo.GetByID(ctx, 999)
		assert.Nil(t, found)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("GetByIdentifier", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAccountRepository(db)
		acc := createTestAccount(t, db, "joao.silva", "joao@empresa.com.br")

		byUsername, err := repo.GetByIdentifier(ctx, "joao.silva")
		require.NoError(t, err)
		assert.Equal(t, acc.ID(), byUsername.ID())

		byEmail, err := repo.GetByIdentifier(ctx, "joao@empresa.com.br")
		require.NoError(t, err)
		assert.Equal(t, acc.ID(), byEmail.ID())

		_, err = repo.GetByIdentifier(ctx, "nobody")
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("Exists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAccountRepository(db)
		createTestAccount(t, db, "joao.silva", "joao@empresa.com.br")

		exists, err := repo.ExistsByUsername(ctx, "joao.silva")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByUsername(ctx, "maria")
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.ExistsByEmail(ctx, "joao@empresa.com.br")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("ExistsByEmailExcluding", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAccountRepository(db)
		acc := createTestAccount(t, db, "joao.silva", "joao@empresa.com.br")
		other := createTestAccount(t, db, "maria", "maria@empresa.com.br")

		// An account's own email does not count as taken.
		exists, err := repo.ExistsByEmailExcluding(ctx, "joao@empresa.com.br", acc.ID())
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.ExistsByEmailExcluding(ctx, "maria@empresa.com.br", acc.ID())
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByEmailExcluding(ctx, "maria@empresa.com.br", other.ID())
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("UpdatePersistsChanges", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAccountRepository(db)
		acc := createTestAccount(t, db, "joao.silva", "joao@empresa.com.br")

		acc.UpdateProfile(account.ProfileUpdate{Phone: strPtr("+55 11 97777-0000")})
		acc.RecordLogin()
		require.NoError(t, repo.Update(ctx, acc))

		found, err := repo.GetByID(ctx, acc.ID())
		require.NoError(t, err)
		assert.Equal(t, "+55 11 97777-0000", found.Phone())
		require.NotNil(t, found.LastLogin())
	})

	t.Run("UpdatePersistsZeroValues", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAccountRepository(db)
		acc := createTestAccount(t, db, "joao.silva", "joao@empresa.com.br")

		acc.UpdateProfile(account.ProfileUpdate{Phone: strPtr("+55 11 97777-0000")})
		require.NoError(t, repo.Update(ctx, acc))

		// Clearing the phone and deactivating must survive the round trip.
		acc.UpdateProfile(account.ProfileUpdate{Phone: strPtr("")})
		acc.Deactivate()
		require.NoError(t, repo.Update(ctx, acc))

		found, err := repo.GetByID(ctx, acc.ID())
		require.NoError(t, err)
		assert.Empty(t, found.Phone())
		assert.False(t, found.IsActive())
	})
}

func strPtr(s string) *string { return &s }
