package usecases

import (
	"context"

	"leafsmp/internal/application/ticket/dto"
	"leafsmp/internal/domain/ticket"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetUserTicketsExecutor interface {
	Execute(ctx context.Context, query GetUserTicketsQuery) ([]*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketStatsExecutor interface {
	Execute(ctx context.Context) (*dto.TicketStatsDTO, error)
}

// TicketNotifier tells staff about new tickets. Failures are logged only.
type TicketNotifier interface {
	NotifyTicketCreated(ctx context.Context, event ticket.CreatedEvent) error
}

// TicketMetrics records ticket workflow counters.
type TicketMetrics interface {
	TicketCreated(category string)
	TicketUpdated(status string)
}

// BackgroundRunner runs best-effort work off the request path.
type BackgroundRunner interface {
	Go(name string, fn func())
}
