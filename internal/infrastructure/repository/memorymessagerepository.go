package repository

import (
	"context"
	"sync"

	"leafsmp/internal/domain/chat"
	"leafsmp/internal/shared/biztime"
)

// MemoryMessageRepository is an append-only in-process chat log. Ids and
// createdAt are assigned together under the lock, so both increase in append
// order.
type MemoryMessageRepository struct {
	mu       sync.RWMutex
	nextID   uint
	clock    *biztime.Monotonic
	byTicket map[uint][]*chat.Message
}

func NewMemoryMessageRepository() *MemoryMessageRepository {
	return &MemoryMessageRepository{
		clock:    biztime.NewMonotonic(nil),
		byTicket: make(map[uint][]*chat.Message),
	}
}

func (r *MemoryMessageRepository) Append(ctx context.Context, m *chat.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	if err := m.SetID(r.nextID); err != nil {
		r.nextID--
		return err
	}
	m.SetCreatedAt(r.clock.Now())

	r.byTicket[m.TicketID()] = append(r.byTicket[m.TicketID()], m.Clone())
	return nil
}

func (r *MemoryMessageRepository) ListByTicket(ctx context.Context, ticketID uint, afterID uint) ([]*chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byTicket[ticketID]
	result := make([]*chat.Message, 0, len(stored))
	for _, m := range stored {
		if m.ID() > afterID {
			result = append(result, m.Clone())
		}
	}
	return result, nil
}
