package migration

import (
	"fmt"

	"gorm.io/gorm"

	"modportal/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy for the configured database driver: the
// embedded goose scripts for sqlite, GORM AutoMigrate otherwise.
func NewManager(driver string) *Manager {
	var strategy Strategy
	switch driver {
	case "sqlite", "sqlite3", "":
		strategy = NewGooseStrategy()
	default:
		strategy = NewGormAutoMigrateStrategy()
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	m.logger.Infow("database migration completed",
		"strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) Strategy() Strategy {
	return m.strategy
}
