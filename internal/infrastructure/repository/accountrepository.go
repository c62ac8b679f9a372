package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"reinkjet/internal/domain/account"
	"reinkjet/internal/infrastructure/persistence/mappers"
	"reinkjet/internal/infrastructure/persistence/models"
	db "reinkjet/internal/shared/db"
	apperrors "reinkjet/internal/shared/errors"
)

type AccountRepository struct {
	db     *gorm.DB
	mapper mappers.AccountMapper
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{
		db:     db,
		mapper: mappers.NewAccountMapper(),
	}
}

func (r *AccountRepository) Save(ctx context.Context, a *account.Account) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AccountRepository) Update(ctx context.Context, a *account.Account) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AccountModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}

	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, accountID uint) (*account.Account, error) {
	var model models.AccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("account not found")
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	return r.getByCondition(ctx, "username = ?", username)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	return r.getByCondition(ctx, "email = ?", email)
}

func (r *AccountRepository) GetByIdentifier(ctx context.Context, identifier string) (*account.Account, error) {
	return r.getByCondition(ctx, "username = ? OR email = ?", identifier, identifier)
}

func (r *AccountRepository) getByCondition(ctx context.Context, query string, args ...interface{}) (*account.Account, error) {
	var model models.AccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("account not found")
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.existsByCondition(ctx, "username = ?", username)
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.existsByCondition(ctx, "email = ?", email)
}

func (r *AccountRepository) ExistsByEmailExcluding(ctx context.Context, email string, accountID uint) (bool, error) {
	return r.existsByCondition(ctx, "email = ? AND id <> ?", email, accountID)
}

func (r *AccountRepository) existsByCondition(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.AccountModel{}).Where(query, args...).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count accounts: %w", err)
	}

	return count > 0, nil
}
