package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"litrevu/internal/domain/follow"
	"litrevu/internal/infrastructure/persistence/mappers"
	"litrevu/internal/infrastructure/persistence/models"
	"litrevu/internal/shared/db"
	apperrors "litrevu/internal/shared/errors"
)

type FollowRepository struct {
	db     *gorm.DB
	mapper mappers.FollowMapper
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{
		db:     db,
		mapper: mappers.NewFollowMapper(),
	}
}

func (r *FollowRepository) Save(ctx context.Context, e *follow.Edge) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	// The composite unique index turns concurrent duplicate follows into a
	// conflict instead of a second edge.
	if err := tx.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("already following this user")
		}
		return fmt.Errorf("failed to save follow edge: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *FollowRepository) Delete(ctx context.Context, followerID, followedID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.FollowModel{})

	if result.Error != nil {
		return false, fmt.Errorf("failed to delete follow edge: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.FollowModel{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count follow edges: %w", err)
	}

	return count > 0, nil
}

func (r *FollowRepository) GetFollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.FollowModel{}).
		Where("follower_id = ?", followerID).
		Order("created_at ASC").
		Pluck("followed_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list followed users: %w", err)
	}

	return ids, nil
}

func (r *FollowRepository) GetFollowerIDs(ctx context.Context, followedID uint) ([]uint, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.FollowModel{}).
		Where("followed_id = ?", followedID).
		Order("created_at ASC").
		Pluck("follower_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}

	return ids, nil
}
