package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"leafsmp/internal/domain/ticket"
	"leafsmp/internal/infrastructure/database"
	"leafsmp/internal/infrastructure/migration"
	"leafsmp/internal/shared/config"
	"leafsmp/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.StorageDriverSQLite, &config.DatabaseConfig{SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	manager, err := migration.NewManager(config.StorageDriverSQLite, logger.NewDiscard())
	require.NoError(t, err)
	require.NoError(t, manager.Migrate(db))

	return db
}

type ticketRepoFactory struct {
	name string
	new  func(t *testing.T) ticket.TicketRepository
}

func ticketRepoFactories() []ticketRepoFactory {
	return []ticketRepoFactory{
		{name: "memory", new: func(t *testing.T) ticket.TicketRepository { return NewMemoryTicketRepository() }},
		{name: "gorm", new: func(t *testing.T) ticket.TicketRepository { return NewTicketRepository(setupTestDB(t)) }},
	}
}

func saveTicket(t *testing.T, repo ticket.TicketRepository, seq int64, mc, discord string) *ticket.Ticket {
	t.Helper()

	tk, err := ticket.NewTicket(mc, discord, "ninja", "")
	require.NoError(t, err)
	require.NoError(t, tk.SetNumber(ticket.FormatNumber("LEAF", seq)))
	require.NoError(t, repo.Save(context.Background(), tk))
	return tk
}
