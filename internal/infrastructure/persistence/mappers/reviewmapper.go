package mappers

import (
	"fmt"

	"litrevu/internal/domain/review"
	vo "litrevu/internal/domain/review/valueobjects"
	"litrevu/internal/infrastructure/persistence/models"
)

// ReviewMapper handles the conversion between Review domain entities and persistence models.
type ReviewMapper interface {
	// ToModel converts a review domain entity to a persistence model.
	ToModel(r *review.Review) *models.ReviewModel

	// ToDomain converts a review persistence model to a domain entity.
	ToDomain(model *models.ReviewModel) (*review.Review, error)

	// ToDomainList converts multiple persistence models to domain entities.
	ToDomainList(models []*models.ReviewModel) ([]*review.Review, error)
}

// ReviewMapperImpl is the concrete implementation of ReviewMapper.
type ReviewMapperImpl struct{}

// NewReviewMapper creates a new ReviewMapper.
func NewReviewMapper() ReviewMapper {
	return &ReviewMapperImpl{}
}

func (m *ReviewMapperImpl) ToModel(r *review.Review) *models.ReviewModel {
	return &models.ReviewModel{
		ID:        r.ID(),
		Headline:  r.Headline(),
		Rating:    r.Rating().Int(),
		Body:      r.Body(),
		OwnerID:   r.OwnerID(),
		TicketID:  r.TicketID(),
		CreatedAt: r.CreatedAt().UnixMilli(),
		UpdatedAt: r.UpdatedAt().UnixMilli(),
	}
}

func (m *ReviewMapperImpl) ToDomain(model *models.ReviewModel) (*review.Review, error) {
	if model == nil {
		return nil, nil
	}

	rating, err := vo.NewRating(model.Rating)
	if err != nil {
		return nil, fmt.Errorf("failed to create rating value object (id=%d): %w", model.ID, err)
	}

	return review.ReconstructReview(
		model.ID,
		model.Headline,
		rating,
		model.Body,
		model.OwnerID,
		model.TicketID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *ReviewMapperImpl) ToDomainList(list []*models.ReviewModel) ([]*review.Review, error) {
	reviews := make([]*review.Review, 0, len(list))
	for _, model := range list {
		r, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, nil
}
