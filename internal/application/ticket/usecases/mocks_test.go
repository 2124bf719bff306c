package usecases

import (
	"context"
	"sync"

	"leafsmp/internal/domain/ticket"
	vo "leafsmp/internal/domain/ticket/valueobjects"
	"leafsmp/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc           func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc         func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc        func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	FindByIdentityFunc func(ctx context.Context, mc, discord string) ([]*ticket.Ticket, error)
	ListFunc           func(ctx context.Context, f ticket.TicketFilter) ([]*ticket.Ticket, error)
	CountByStatusFunc  func(ctx context.Context) (map[vo.TicketStatus]int64, error)
	LastSequenceFunc   func(ctx context.Context) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByIdentity(ctx context.Context, mc, discord string) ([]*ticket.Ticket, error) {
	if m.FindByIdentityFunc != nil {
		return m.FindByIdentityFunc(ctx, mc, discord)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, f ticket.TicketFilter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context) (map[vo.TicketStatus]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return map[vo.TicketStatus]int64{}, nil
}

func (m *mockTicketRepository) LastSequence(ctx context.Context) (int64, error) {
	if m.LastSequenceFunc != nil {
		return m.LastSequenceFunc(ctx)
	}
	return 0, nil
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "LEAF-0001", nil
}

type mockNotifier struct {
	mu     sync.Mutex
	events []ticket.CreatedEvent
	err    error
}

func (m *mockNotifier) NotifyTicketCreated(ctx context.Context, event ticket.CreatedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return m.err
}

type mockMetrics struct {
	mu      sync.Mutex
	created []string
	updated []string
}

func (m *mockMetrics) TicketCreated(category string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, category)
}

func (m *mockMetrics) TicketUpdated(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updated = append(m.updated, status)
}

// syncRunner runs background work inline so tests can assert on it.
type syncRunner struct{}

func (syncRunner) Go(name string, fn func()) { fn() }

type passthroughTransactor struct {
	calls int
}

func (p *passthroughTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)           {}
func (m *mockLogger) Info(msg string, args ...any)            {}
func (m *mockLogger) Warn(msg string, args ...any)            {}
func (m *mockLogger) Error(msg string, args ...any)           {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Named(name string) logger.Interface      { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
