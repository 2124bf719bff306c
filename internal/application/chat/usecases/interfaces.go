package usecases

import (
	"context"

	"leafsmp/internal/application/chat/dto"
)

type SendMessageExecutor interface {
	Execute(ctx context.Context, cmd SendMessageCommand) (*dto.MessageDTO, error)
}

type ListMessagesExecutor interface {
	Execute(ctx context.Context, query ListMessagesQuery) ([]*dto.MessageDTO, error)
}

type StreamMessagesExecutor interface {
	Execute(ctx context.Context, query StreamMessagesQuery) (<-chan *dto.MessageDTO, error)
}

// ChatEventBus fans new messages out to stream subscribers. A subscription
// channel is closed when ctx ends or when the subscriber falls too far behind;
// a closed channel means "reconnect with after=<last id>".
type ChatEventBus interface {
	Publish(ctx context.Context, message *dto.MessageDTO) error
	Subscribe(ctx context.Context, ticketID uint) (<-chan *dto.MessageDTO, error)
}

type ChatMetrics interface {
	ChatMessageSent(sender string)
}
