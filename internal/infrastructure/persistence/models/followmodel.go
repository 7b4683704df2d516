package models

import "litrevu/internal/shared/constants"

// FollowModel represents the database persistence model for follow edges.
// The composite unique index rejects duplicate edges at the database level.
type FollowModel struct {
	ID         uint  `gorm:"primaryKey"`
	FollowerID uint  `gorm:"not null;index;uniqueIndex:idx_follows_pair"`
	FollowedID uint  `gorm:"not null;index;uniqueIndex:idx_follows_pair"`
	CreatedAt  int64 `gorm:"autoCreateTime:milli;not null"`
}

func (FollowModel) TableName() string {
	return constants.TableFollows
}
