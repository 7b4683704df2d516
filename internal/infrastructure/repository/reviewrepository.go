package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"litrevu/internal/domain/review"
	"litrevu/internal/infrastructure/persistence/mappers"
	"litrevu/internal/infrastructure/persistence/models"
	"litrevu/internal/shared/constants"
	"litrevu/internal/shared/db"
	apperrors "litrevu/internal/shared/errors"
)

type ReviewRepository struct {
	db     *gorm.DB
	mapper mappers.ReviewMapper
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		db:     db,
		mapper: mappers.NewReviewMapper(),
	}
}

func (r *ReviewRepository) Save(ctx context.Context, rev *review.Review) error {
	model := r.mapper.ToModel(rev)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("this ticket already has a review")
		}
		return fmt.Errorf("failed to save review: %w", err)
	}

	return rev.SetID(model.ID)
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	model := r.mapper.ToModel(rev)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ReviewModel{}).
		Where("id = ?", model.ID).
		Select("headline", "rating", "body", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update review: %w", result.Error)
	}

	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, reviewID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ReviewModel{}, reviewID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("review not found")
	}

	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, reviewID uint) (*review.Review, error) {
	var model models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("review not found")
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ReviewRepository) GetByTicketID(ctx context.Context, ticketID uint) (*review.Review, error) {
	var model models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", ticketID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find review by ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ReviewRepository) ExistsByTicketID(ctx context.Context, ticketID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ReviewModel{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count reviews by ticket: %w", err)
	}

	return count > 0, nil
}

func (r *ReviewRepository) GetByOwnerIDs(ctx context.Context, ownerIDs []uint) ([]*review.Review, error) {
	if len(ownerIDs) == 0 {
		return []*review.Review{}, nil
	}

	var list []*models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("owner_id IN ?", ownerIDs).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find reviews by owners: %w", err)
	}

	return r.mapper.ToDomainList(list)
}

func (r *ReviewRepository) GetByTicketOwnerID(ctx context.Context, ticketOwnerID uint) ([]*review.Review, error) {
	var list []*models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	// Single join against tickets instead of fetching ticket ids first.
	if err := tx.
		Joins(fmt.Sprintf("JOIN %s ON %s.ticket_id = %s.id",
			constants.TableTickets, constants.TableReviews, constants.TableTickets)).
		Where(fmt.Sprintf("%s.owner_id = ?", constants.TableTickets), ticketOwnerID).
		Order(fmt.Sprintf("%s.created_at DESC", constants.TableReviews)).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find reviews by ticket owner: %w", err)
	}

	return r.mapper.ToDomainList(list)
}

func (r *ReviewRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.ReviewModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete reviews by ticket: %w", err)
	}

	return nil
}
