package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"reinkjet/internal/domain/ticket"
	"reinkjet/internal/infrastructure/persistence/mappers"
	"reinkjet/internal/infrastructure/persistence/models"
	"reinkjet/internal/shared/constants"
	db "reinkjet/internal/shared/db"
	apperrors "reinkjet/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

// Save persists the ticket and its pending history entries in one
// transaction. Under an outer transaction gorm falls back to a
// savepoint, so callers composing larger units of work stay atomic.
func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		model := r.mapper.ToModel(t)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save ticket: %w", err)
		}
		if err := t.SetID(model.ID); err != nil {
			return err
		}

		return r.savePendingHistory(tx, t)
	})
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		model := r.mapper.ToModel(t)

		result := tx.
			Model(&models.TicketModel{}).
			Where("id = ?", model.ID).
			Select("*").
			Omit("id", "created_at").
			Updates(model)

		if result.Error != nil {
			return fmt.Errorf("failed to update ticket: %w", result.Error)
		}
		// RowsAffected may be 0 when the updated values are identical,
		// so it is not checked here.

		return r.savePendingHistory(tx, t)
	})
}

func (r *TicketRepository) savePendingHistory(tx *gorm.DB, t *ticket.Ticket) error {
	for _, entry := range t.PullPendingHistory() {
		entry.SetTicketID(t.ID())
		model := r.mapper.HistoryToModel(entry)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save ticket history: %w", err)
		}
		entry.SetID(model.ID)
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(constants.ErrMsgResourceNotFound)
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})

	if filter.AccountID != nil {
		tx = tx.Where("account_id = ?", *filter.AccountID)
	}
	if filter.Status != nil {
		tx = tx.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		tx = tx.Where("priority = ?", filter.Priority.String())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		tx = tx.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rows []models.TicketModel
	if err := tx.Order("created_at desc, id desc").Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	items := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		item, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}

	return items, total, nil
}

func (r *TicketRepository) GetStats(ctx context.Context, accountID uint, recentSince time.Time) (*ticket.StatsResult, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	stats := &ticket.StatsResult{
		ByStatus:   make(map[string]int64),
		ByPriority: make(map[string]int64),
	}

	if err := tx.Model(&models.TicketModel{}).
		Where("account_id = ?", accountID).
		Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	if err := r.countBy(tx, accountID, "status", stats.ByStatus); err != nil {
		return nil, err
	}
	if err := r.countBy(tx, accountID, "priority", stats.ByPriority); err != nil {
		return nil, err
	}

	if err := tx.Model(&models.TicketModel{}).
		Where("account_id = ? AND created_at >= ?", accountID, recentSince).
		Count(&stats.Recent).Error; err != nil {
		return nil, fmt.Errorf("failed to count recent tickets: %w", err)
	}

	return stats, nil
}

func (r *TicketRepository) countBy(tx *gorm.DB, accountID uint, column string, dest map[string]int64) error {
	var rows []struct {
		Key   string
		Count int64
	}
	if err := tx.Model(&models.TicketModel{}).
		Select(column+" AS `key`, COUNT(*) AS count").
		Where("account_id = ?", accountID).
		Group(column).
		Scan(&rows).Error; err != nil {
		return fmt.Errorf("failed to group tickets by %s: %w", column, err)
	}
	for _, row := range rows {
		dest[row.Key] = row.Count
	}
	return nil
}

func (r *TicketRepository) GetHistory(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TicketHistoryModel
	if err := tx.Where("ticket_id = ?", ticketID).
		Order("created_at asc, id asc").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket history: %w", err)
	}

	entries := make([]*ticket.HistoryEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, r.mapper.HistoryToDomain(&rows[i]))
	}

	return entries, nil
}
