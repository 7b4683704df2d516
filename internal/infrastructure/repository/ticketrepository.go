package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"litrevu/internal/domain/ticket"
	"litrevu/internal/infrastructure/persistence/mappers"
	"litrevu/internal/infrastructure/persistence/models"
	"litrevu/internal/shared/db"
	apperrors "litrevu/internal/shared/errors"
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

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select lists every mutable column so that clearing the image
	// persists the zero value instead of being skipped by Updates.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "image", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByIDs(ctx context.Context, ticketIDs []uint) ([]*ticket.Ticket, error) {
	if len(ticketIDs) == 0 {
		return []*ticket.Ticket{}, nil
	}

	var list []*models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ticketIDs).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find tickets: %w", err)
	}

	return r.mapper.ToDomainList(list)
}

func (r *TicketRepository) GetByOwnerIDs(ctx context.Context, ownerIDs []uint) ([]*ticket.Ticket, error) {
	if len(ownerIDs) == 0 {
		return []*ticket.Ticket{}, nil
	}

	var list []*models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("owner_id IN ?", ownerIDs).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find tickets by owners: %w", err)
	}

	return r.mapper.ToDomainList(list)
}
