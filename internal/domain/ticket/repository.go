package ticket

import (
	"context"

	vo "leafsmp/internal/domain/ticket/valueobjects"
)

// TicketRepository stores tickets. GetByID returns a not-found AppError for
// unknown ids.
type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// FindByIdentity returns matches in insertion order.
	FindByIdentity(ctx context.Context, minecraftUsername, discordUsername string) ([]*Ticket, error)
	// List applies the filter and the sort key in f.
	List(ctx context.Context, f TicketFilter) ([]*Ticket, error)
	CountByStatus(ctx context.Context) (map[vo.TicketStatus]int64, error)
	// LastSequence is the highest ticket number sequence persisted, 0 if none.
	LastSequence(ctx context.Context) (int64, error)
}

type TicketFilter struct {
	Status   *vo.TicketStatus
	Priority *vo.Priority
	SortBy   SortKey
}
