package chat

import "context"

// MessageRepository is append-only. ListByTicket returns messages ordered by
// createdAt then id, restricted to ids greater than afterID (0 for all).
type MessageRepository interface {
	Append(ctx context.Context, message *Message) error
	ListByTicket(ctx context.Context, ticketID uint, afterID uint) ([]*Message, error)
}
