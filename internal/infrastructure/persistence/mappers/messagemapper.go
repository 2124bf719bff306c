package mappers

import (
	"fmt"
	"time"

	"leafsmp/internal/domain/chat"
	vo "leafsmp/internal/domain/chat/valueobjects"
	"leafsmp/internal/infrastructure/persistence/models"
)

type MessageMapper interface {
	ToModel(m *chat.Message) *models.MessageModel
	ToDomain(model *models.MessageModel) (*chat.Message, error)
}

type MessageMapperImpl struct{}

func NewMessageMapper() MessageMapper {
	return &MessageMapperImpl{}
}

func (m *MessageMapperImpl) ToModel(msg *chat.Message) *models.MessageModel {
	return &models.MessageModel{
		ID:         msg.ID(),
		TicketID:   msg.TicketID(),
		Sender:     msg.Sender().String(),
		SenderName: msg.SenderName(),
		Message:    msg.Message(),
		ImageURL:   msg.ImageURL(),
		CreatedAt:  msg.CreatedAt().UnixMicro(),
	}
}

func (m *MessageMapperImpl) ToDomain(model *models.MessageModel) (*chat.Message, error) {
	msg, err := chat.ReconstructMessage(
		model.ID,
		model.TicketID,
		vo.Sender(model.Sender),
		model.SenderName,
		model.Message,
		model.ImageURL,
		time.UnixMicro(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct message %d: %w", model.ID, err)
	}
	return msg, nil
}
