package pubsub

import (
	"context"
	"sync"

	"leafsmp/internal/application/chat/dto"
	"leafsmp/internal/shared/logger"
)

// DefaultSubscriberBuffer is how many undelivered messages a stream may lag
// behind before it is dropped.
const DefaultSubscriberBuffer = 64

type subscriber struct {
	ticketID uint
	ch       chan *dto.MessageDTO
	once     sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.ch) })
}

// LocalChatBus fans chat messages out to subscribers in this process.
type LocalChatBus struct {
	mu     sync.RWMutex
	subs   map[uint]map[*subscriber]struct{}
	buffer int
	logger logger.Interface
}

func NewLocalChatBus(buffer int, log logger.Interface) *LocalChatBus {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	return &LocalChatBus{
		subs:   make(map[uint]map[*subscriber]struct{}),
		buffer: buffer,
		logger: log,
	}
}

func (b *LocalChatBus) Publish(ctx context.Context, message *dto.MessageDTO) error {
	b.dispatch(message)
	return nil
}

// Subscribe registers for messages of ticketID until ctx ends.
func (b *LocalChatBus) Subscribe(ctx context.Context, ticketID uint) (<-chan *dto.MessageDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sub := &subscriber{
		ticketID: ticketID,
		ch:       make(chan *dto.MessageDTO, b.buffer),
	}

	b.mu.Lock()
	if b.subs[ticketID] == nil {
		b.subs[ticketID] = make(map[*subscriber]struct{})
	}
	b.subs[ticketID][sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.remove(sub)
	}()

	return sub.ch, nil
}

// SubscriberCount reports live subscriptions for ticketID.
func (b *LocalChatBus) SubscriberCount(ticketID uint) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[ticketID])
}

func (b *LocalChatBus) dispatch(message *dto.MessageDTO) {
	if message == nil {
		return
	}

	var overflowed []*subscriber

	b.mu.RLock()
	for sub := range b.subs[message.TicketID] {
		copied := *message
		select {
		case sub.ch <- &copied:
		default:
			overflowed = append(overflowed, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range overflowed {
		b.logger.Warnw("chat subscriber fell behind, closing stream",
			"ticket_id", sub.ticketID,
		)
		b.remove(sub)
	}
}

// remove closes sub while holding the write lock, so dispatch never sends on
// a closed channel.
func (b *LocalChatBus) remove(sub *subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if set, ok := b.subs[sub.ticketID]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(b.subs, sub.ticketID)
		}
	}
	sub.close()
}
