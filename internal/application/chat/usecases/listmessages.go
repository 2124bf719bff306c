package usecases

import (
	"context"

	"leafsmp/internal/application/chat/dto"
	"leafsmp/internal/domain/chat"
	"leafsmp/internal/shared/logger"
)

// ListMessagesQuery returns the full history when AfterID is 0, otherwise
// only messages newer than AfterID (incremental polling).
type ListMessagesQuery struct {
	TicketID uint
	AfterID  uint
}

type ListMessagesUseCase struct {
	messageRepo chat.MessageRepository
	logger      logger.Interface
}

func NewListMessagesUseCase(
	messageRepo chat.MessageRepository,
	logger logger.Interface,
) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, query ListMessagesQuery) ([]*dto.MessageDTO, error) {
	messages, err := uc.messageRepo.ListByTicket(ctx, query.TicketID, query.AfterID)
	if err != nil {
		uc.logger.Errorw("failed to list chat messages", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}
	return dto.ToMessageDTOs(messages), nil
}
