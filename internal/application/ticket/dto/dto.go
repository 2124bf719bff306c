package dto

import (
	"time"

	"leafsmp/internal/domain/ticket"
	vo "leafsmp/internal/domain/ticket/valueobjects"
)

// TicketDTO is the public JSON shape of a ticket.
type TicketDTO struct {
	ID                uint      `json:"id"`
	TicketNumber      string    `json:"ticketNumber"`
	MinecraftUsername string    `json:"minecraftUsername"`
	DiscordUsername   string    `json:"discordUsername"`
	SelectedRank      string    `json:"selectedRank"`
	Status            string    `json:"status"`
	Priority          string    `json:"priority"`
	Category          string    `json:"category"`
	AdminNotes        *string   `json:"adminNotes"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type TicketStatsDTO struct {
	Total      int64 `json:"total"`
	Open       int64 `json:"open"`
	InProgress int64 `json:"inProgress"`
	Closed     int64 `json:"closed"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:                t.ID(),
		TicketNumber:      t.Number(),
		MinecraftUsername: t.MinecraftUsername(),
		DiscordUsername:   t.DiscordUsername(),
		SelectedRank:      t.SelectedRank(),
		Status:            t.Status().String(),
		Priority:          t.Priority().String(),
		Category:          t.Category().String(),
		AdminNotes:        t.AdminNotes(),
		CreatedAt:         t.CreatedAt(),
		UpdatedAt:         t.UpdatedAt(),
	}
}

// ToTicketDTOs never returns nil so empty results encode as [].
func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	out := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ToTicketDTO(t))
	}
	return out
}

func ToTicketStatsDTO(counts map[vo.TicketStatus]int64) *TicketStatsDTO {
	stats := &TicketStatsDTO{
		Open:       counts[vo.StatusOpen],
		InProgress: counts[vo.StatusInProgress],
		Closed:     counts[vo.StatusClosed],
	}
	stats.Total = stats.Open + stats.InProgress + stats.Closed
	return stats
}
