package models

import "litrevu/internal/shared/constants"

// ReviewModel represents the database persistence model for reviews.
// The unique index on TicketID enforces at most one review per ticket
// at the database level.
type ReviewModel struct {
	ID        uint   `gorm:"primaryKey"`
	Headline  string `gorm:"size:128;not null"`
	Rating    int    `gorm:"not null"`
	Body      string `gorm:"type:text"`
	OwnerID   uint   `gorm:"not null;index"`
	TicketID  uint   `gorm:"not null;uniqueIndex"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ReviewModel) TableName() string {
	return constants.TableReviews
}
