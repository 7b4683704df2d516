package migration

import (
	"litrevu/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model the schema is built from.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
		&models.ReviewModel{},
		&models.FollowModel{},
	}
}
