package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"leafsmp/internal/domain/ticket"
	vo "leafsmp/internal/domain/ticket/valueobjects"
	"leafsmp/internal/infrastructure/persistence/mappers"
	"leafsmp/internal/infrastructure/persistence/models"
	"leafsmp/internal/shared/db"
	apperrors "leafsmp/internal/shared/errors"
)

// TicketRepository is the gorm-backed ticket store used by the sqlite and
// mysql storage drivers.
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return fmt.Errorf("failed to map ticket: %w", err)
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

// Update writes the admin-editable columns.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return fmt.Errorf("failed to map ticket: %w", err)
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("status", "priority", "admin_notes", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Ticket not found")
	}

	return nil
}

// byIDQuery locks the row for the rest of the transaction when ctx carries
// one, so concurrent admin edits of the same ticket serialise on MySQL.
// SQLite ignores the clause and serialises writers on its own.
func (r *TicketRepository) byIDQuery(ctx context.Context) *gorm.DB {
	tx := db.GetTxFromContext(ctx, r.db)
	if db.InTransaction(ctx) {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.byIDQuery(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) FindByIdentity(ctx context.Context, minecraftUsername, discordUsername string) ([]*ticket.Ticket, error) {
	var list []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("minecraft_username = ? AND discord_username = ?", minecraftUsername, discordUsername).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find tickets: %w", err)
	}

	return r.mapper.ToDomainList(list)
}

// List filters in SQL and sorts in Go so every driver orders ties the same
// way.
func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	var list []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(
			db.WhereIfSet("status", statusValue(filter.Status)),
			db.WhereIfSet("priority", priorityValue(filter.Priority)),
		).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, err
	}
	ticket.SortTickets(tickets, filter.SortBy)
	return tickets, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context) (map[vo.TicketStatus]int64, error) {
	var rows []models.TicketStatusCount
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TicketModel{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	counts := make(map[vo.TicketStatus]int64, len(vo.AllStatuses()))
	for _, s := range vo.AllStatuses() {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[vo.TicketStatus(row.Status)] = row.Total
	}
	return counts, nil
}

func (r *TicketRepository) LastSequence(ctx context.Context) (int64, error) {
	var last int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TicketModel{}).
		Select("COALESCE(MAX(sequence), 0)").
		Scan(&last).Error; err != nil {
		return 0, fmt.Errorf("failed to read last ticket sequence: %w", err)
	}
	return last, nil
}

func statusValue(s *vo.TicketStatus) string {
	if s == nil {
		return ""
	}
	return s.String()
}

func priorityValue(p *vo.Priority) string {
	if p == nil {
		return ""
	}
	return p.String()
}
