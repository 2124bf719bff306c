package dto

import (
	"time"

	"leafsmp/internal/domain/chat"
)

type MessageDTO struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticketId"`
	Sender     string    `json:"sender"`
	SenderName string    `json:"senderName"`
	Message    *string   `json:"message"`
	ImageURL   *string   `json:"imageUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ToMessageDTO(m *chat.Message) *MessageDTO {
	if m == nil {
		return nil
	}
	return &MessageDTO{
		ID:         m.ID(),
		TicketID:   m.TicketID(),
		Sender:     m.Sender().String(),
		SenderName: m.SenderName(),
		Message:    m.Message(),
		ImageURL:   m.ImageURL(),
		CreatedAt:  m.CreatedAt(),
	}
}

func ToMessageDTOs(messages []*chat.Message) []*MessageDTO {
	out := make([]*MessageDTO, 0, len(messages))
	for _, m := range messages {
		out = append(out, ToMessageDTO(m))
	}
	return out
}
