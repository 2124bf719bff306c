package usecases

import (
	"context"
	"sync"

	"leafsmp/internal/application/chat/dto"
	"leafsmp/internal/domain/chat"
	"leafsmp/internal/shared/logger"
)

type mockMessageRepository struct {
	AppendFunc       func(ctx context.Context, m *chat.Message) error
	ListByTicketFunc func(ctx context.Context, ticketID, afterID uint) ([]*chat.Message, error)
}

func (m *mockMessageRepository) Append(ctx context.Context, msg *chat.Message) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) ListByTicket(ctx context.Context, ticketID, afterID uint) ([]*chat.Message, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID, afterID)
	}
	return nil, nil
}

type mockBus struct {
	mu         sync.Mutex
	published  []*dto.MessageDTO
	publishErr error
	live       chan *dto.MessageDTO
	subscribed chan struct{}
}

func newMockBus() *mockBus {
	return &mockBus{
		live:       make(chan *dto.MessageDTO, 16),
		subscribed: make(chan struct{}, 1),
	}
}

func (b *mockBus) Publish(ctx context.Context, m *dto.MessageDTO) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, m)
	return b.publishErr
}

func (b *mockBus) Subscribe(ctx context.Context, ticketID uint) (<-chan *dto.MessageDTO, error) {
	b.subscribed <- struct{}{}
	return b.live, nil
}

type mockChatMetrics struct {
	senders []string
}

func (m *mockChatMetrics) ChatMessageSent(sender string) {
	m.senders = append(m.senders, sender)
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
