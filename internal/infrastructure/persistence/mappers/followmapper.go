package mappers

import (
	"litrevu/internal/domain/follow"
	"litrevu/internal/infrastructure/persistence/models"
)

// FollowMapper handles the conversion between follow edges and persistence models.
type FollowMapper interface {
	// ToModel converts a follow edge to a persistence model.
	ToModel(e *follow.Edge) *models.FollowModel

	// ToDomain converts a follow persistence model to a domain entity.
	ToDomain(model *models.FollowModel) (*follow.Edge, error)
}

// FollowMapperImpl is the concrete implementation of FollowMapper.
type FollowMapperImpl struct{}

// NewFollowMapper creates a new FollowMapper.
func NewFollowMapper() FollowMapper {
	return &FollowMapperImpl{}
}

func (m *FollowMapperImpl) ToModel(e *follow.Edge) *models.FollowModel {
	return &models.FollowModel{
		ID:         e.ID(),
		FollowerID: e.FollowerID(),
		FollowedID: e.FollowedID(),
		CreatedAt:  e.CreatedAt().UnixMilli(),
	}
}

func (m *FollowMapperImpl) ToDomain(model *models.FollowModel) (*follow.Edge, error) {
	if model == nil {
		return nil, nil
	}

	return follow.ReconstructEdge(
		model.ID,
		model.FollowerID,
		model.FollowedID,
		millisToTime(model.CreatedAt),
	)
}
