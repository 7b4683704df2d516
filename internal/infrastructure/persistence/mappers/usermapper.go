package mappers

import (
	"fmt"

	"litrevu/internal/domain/user"
	vo "litrevu/internal/domain/user/valueobjects"
	"litrevu/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	// ToModel converts a user domain entity to a persistence model.
	ToModel(u *user.User) *models.UserModel

	// ToDomain converts a user persistence model to a domain entity.
	ToDomain(model *models.UserModel) (*user.User, error)

	// ToDomainList converts multiple persistence models to domain entities.
	ToDomainList(models []*models.UserModel) ([]*user.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper.
type UserMapperImpl struct{}

// NewUserMapper creates a new UserMapper.
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username().String(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	username, err := vo.NewUsername(model.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to create username value object (id=%d): %w", model.ID, err)
	}

	return user.ReconstructUser(
		model.ID,
		username,
		model.PasswordHash,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *UserMapperImpl) ToDomainList(list []*models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, 0, len(list))
	for _, model := range list {
		u, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
