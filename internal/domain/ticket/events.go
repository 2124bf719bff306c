package ticket

import (
	"time"
)

// CreatedEvent is handed to staff notifiers once a ticket is stored.
type CreatedEvent struct {
	TicketID          uint
	Number            string
	MinecraftUsername string
	DiscordUsername   string
	SelectedRank      string
	Category          string
	Timestamp         time.Time
}

func NewCreatedEvent(t *Ticket) CreatedEvent {
	return CreatedEvent{
		TicketID:          t.ID(),
		Number:            t.Number(),
		MinecraftUsername: t.MinecraftUsername(),
		DiscordUsername:   t.DiscordUsername(),
		SelectedRank:      t.SelectedRank(),
		Category:          t.Category().String(),
		Timestamp:         t.CreatedAt(),
	}
}
