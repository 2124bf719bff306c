package usecases

import (
	"context"

	"leafsmp/internal/application/ticket/dto"
	"leafsmp/internal/domain/ticket"
	vo "leafsmp/internal/domain/ticket/valueobjects"
	"leafsmp/internal/shared/errors"
	"leafsmp/internal/shared/logger"
)

// ListTicketsQuery holds the raw admin dashboard query string values. Empty
// means "all" for the filters and created_date for Sort.
type ListTicketsQuery struct {
	Status   string
	Priority string
	Sort     string
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	uc.logger.Debugw("listed tickets", "count", len(tickets), "sort", filter.SortBy)
	return dto.ToTicketDTOs(tickets), nil
}

func buildFilter(query ListTicketsQuery) (ticket.TicketFilter, error) {
	var filter ticket.TicketFilter

	// "all" is what the dashboard select sends for no filter.
	if query.Status != "" && query.Status != "all" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return filter, errors.NewValidationError("Validation failed", err.Error())
		}
		filter.Status = &status
	}

	if query.Priority != "" && query.Priority != "all" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return filter, errors.NewValidationError("Validation failed", err.Error())
		}
		filter.Priority = &priority
	}

	sortBy, err := ticket.ParseSortKey(query.Sort)
	if err != nil {
		return filter, errors.NewValidationError("Validation failed", err.Error())
	}
	filter.SortBy = sortBy

	return filter, nil
}
