package mappers

import (
	"fmt"
	"time"

	"leafsmp/internal/domain/ticket"
	vo "leafsmp/internal/domain/ticket/valueobjects"
	"leafsmp/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) (*models.TicketModel, error)
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ToDomainList(list []models.TicketModel) ([]*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	seq, err := ticket.ParseSequence(t.Number())
	if err != nil {
		return nil, err
	}

	return &models.TicketModel{
		ID:                t.ID(),
		Number:            t.Number(),
		Sequence:          seq,
		MinecraftUsername: t.MinecraftUsername(),
		DiscordUsername:   t.DiscordUsername(),
		SelectedRank:      t.SelectedRank(),
		Status:            t.Status().String(),
		Priority:          t.Priority().String(),
		Category:          t.Category().String(),
		AdminNotes:        t.AdminNotes(),
		CreatedAt:         t.CreatedAt().UnixMicro(),
		UpdatedAt:         t.UpdatedAt().UnixMicro(),
	}, nil
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	t, err := ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.MinecraftUsername,
		model.DiscordUsername,
		model.SelectedRank,
		vo.TicketStatus(model.Status),
		vo.Priority(model.Priority),
		vo.Category(model.Category),
		model.AdminNotes,
		time.UnixMicro(model.CreatedAt),
		time.UnixMicro(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %d: %w", model.ID, err)
	}
	return t, nil
}

func (m *TicketMapperImpl) ToDomainList(list []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(list))
	for i := range list {
		t, err := m.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
