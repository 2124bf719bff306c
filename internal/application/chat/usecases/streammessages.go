package usecases

import (
	"context"

	"leafsmp/internal/application/chat/dto"
	"leafsmp/internal/domain/chat"
	"leafsmp/internal/shared/logger"
)

const streamBuffer = 32

type StreamMessagesQuery struct {
	TicketID uint
	AfterID  uint
}

// StreamMessagesUseCase pushes a ticket's messages as they arrive. It
// subscribes before reading the backlog, so a message appended in between is
// seen at least once; duplicates are dropped by id.
type StreamMessagesUseCase struct {
	messageRepo chat.MessageRepository
	bus         ChatEventBus
	logger      logger.Interface
}

func NewStreamMessagesUseCase(
	messageRepo chat.MessageRepository,
	bus ChatEventBus,
	logger logger.Interface,
) *StreamMessagesUseCase {
	return &StreamMessagesUseCase{
		messageRepo: messageRepo,
		bus:         bus,
		logger:      logger,
	}
}

// Execute returns a channel that is closed when ctx ends or the live
// subscription drops.
func (uc *StreamMessagesUseCase) Execute(ctx context.Context, query StreamMessagesQuery) (<-chan *dto.MessageDTO, error) {
	ctx, cancel := context.WithCancel(ctx)

	live, err := uc.bus.Subscribe(ctx, query.TicketID)
	if err != nil {
		cancel()
		uc.logger.Errorw("failed to subscribe to chat events", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	backlog, err := uc.messageRepo.ListByTicket(ctx, query.TicketID, query.AfterID)
	if err != nil {
		cancel()
		uc.logger.Errorw("failed to load chat backlog", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	out := make(chan *dto.MessageDTO, streamBuffer)
	go func() {
		defer cancel()
		defer close(out)

		seen := make(map[uint]struct{}, len(backlog))
		send := func(m *dto.MessageDTO) bool {
			if _, dup := seen[m.ID]; dup || m.ID <= query.AfterID {
				return true
			}
			seen[m.ID] = struct{}{}
			select {
			case out <- m:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for _, m := range backlog {
			if !send(dto.ToMessageDTO(m)) {
				return
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-live:
				if !ok {
					uc.logger.Debugw("chat subscription closed", "ticket_id", query.TicketID)
					return
				}
				if m.TicketID != query.TicketID {
					continue
				}
				if !send(m) {
					return
				}
			}
		}
	}()

	return out, nil
}
