package migration

import (
	"modportal/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ModernizationTypeModel{},
		&models.AssigneeModel{},
		&models.TicketModel{},
	}
}
