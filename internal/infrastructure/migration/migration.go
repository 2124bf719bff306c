package migration

import (
	"fmt"

	"gorm.io/gorm"

	"leafsmp/internal/shared/logger"
)

// Manager runs schema migrations through a Strategy.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager builds a manager backed by the goose scripts for driver.
func NewManager(driver string, log logger.Interface) (*Manager, error) {
	strategy, err := NewGooseStrategy(driver, log)
	if err != nil {
		return nil, err
	}
	return NewManagerWithStrategy(strategy, log), nil
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate applies every pending migration.
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) Rollback(db *gorm.DB, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("rollback steps must be positive, got %d", steps)
	}
	return m.strategy.MigrateDown(db, steps)
}

func (m *Manager) Version(db *gorm.DB) (int64, error) {
	return m.strategy.GetVersion(db)
}

// Status prints the applied/pending state of each script to the goose logger.
func (m *Manager) Status(db *gorm.DB) error {
	return m.strategy.Status(db)
}
