package repository

import (
	"context"
	"fmt"
	"sync"

	"leafsmp/internal/domain/ticket"
	vo "leafsmp/internal/domain/ticket/valueobjects"
	apperrors "leafsmp/internal/shared/errors"
)

// MemoryTicketRepository keeps tickets in process memory, in insertion order.
// Stored tickets are clones; callers never share pointers with the store.
type MemoryTicketRepository struct {
	mu       sync.RWMutex
	nextID   uint
	tickets  []*ticket.Ticket
	index    map[uint]int
	byNumber map[string]uint
}

func NewMemoryTicketRepository() *MemoryTicketRepository {
	return &MemoryTicketRepository{
		index:    make(map[uint]int),
		byNumber: make(map[string]uint),
	}
}

func (r *MemoryTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byNumber[t.Number()]; exists {
		return fmt.Errorf("failed to save ticket: duplicate number %s", t.Number())
	}

	r.nextID++
	if err := t.SetID(r.nextID); err != nil {
		r.nextID--
		return err
	}

	r.index[t.ID()] = len(r.tickets)
	r.byNumber[t.Number()] = t.ID()
	r.tickets = append(r.tickets, t.Clone())
	return nil
}

func (r *MemoryTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[t.ID()]
	if !ok {
		return apperrors.NewNotFoundError("Ticket not found")
	}
	r.tickets[i] = t.Clone()
	return nil
}

func (r *MemoryTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("Ticket not found")
	}
	return r.tickets[i].Clone(), nil
}

func (r *MemoryTicketRepository) FindByIdentity(ctx context.Context, minecraftUsername, discordUsername string) ([]*ticket.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*ticket.Ticket, 0)
	for _, t := range r.tickets {
		if t.OwnedBy(minecraftUsername, discordUsername) {
			result = append(result, t.Clone())
		}
	}
	return result, nil
}

func (r *MemoryTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	r.mu.RLock()
	matched := ticket.FilterTickets(r.tickets, filter)
	result := make([]*ticket.Ticket, len(matched))
	for i, t := range matched {
		result[i] = t.Clone()
	}
	r.mu.RUnlock()

	ticket.SortTickets(result, filter.SortBy)
	return result, nil
}

func (r *MemoryTicketRepository) CountByStatus(ctx context.Context) (map[vo.TicketStatus]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[vo.TicketStatus]int64, len(vo.AllStatuses()))
	for _, s := range vo.AllStatuses() {
		counts[s] = 0
	}
	for _, t := range r.tickets {
		counts[t.Status()]++
	}
	return counts, nil
}

func (r *MemoryTicketRepository) LastSequence(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var last int64
	for number := range r.byNumber {
		seq, err := ticket.ParseSequence(number)
		if err != nil {
			continue
		}
		last = max(last, seq)
	}
	return last, nil
}
