package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"leafsmp/internal/domain/chat"
	"leafsmp/internal/infrastructure/persistence/mappers"
	"leafsmp/internal/infrastructure/persistence/models"
	"leafsmp/internal/shared/db"
)

// MessageRepository is the gorm-backed, append-only chat store.
type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.MessageMapper
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewMessageMapper(),
	}
}

func (r *MessageRepository) Append(ctx context.Context, m *chat.Message) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *MessageRepository) ListByTicket(ctx context.Context, ticketID uint, afterID uint) ([]*chat.Message, error) {
	var list []models.MessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Where("ticket_id = ?", ticketID)
	if afterID > 0 {
		query = query.Where("id > ?", afterID)
	}

	if err := query.
		Order("created_at ASC").
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*chat.Message, 0, len(list))
	for i := range list {
		m, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}
