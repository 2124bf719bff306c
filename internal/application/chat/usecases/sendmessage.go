package usecases

import (
	"context"
	"strings"

	"leafsmp/internal/application/chat/dto"
	"leafsmp/internal/domain/chat"
	vo "leafsmp/internal/domain/chat/valueobjects"
	"leafsmp/internal/shared/errors"
	"leafsmp/internal/shared/logger"
)

type SendMessageCommand struct {
	TicketID   uint
	Sender     string
	SenderName string
	Message    *string
	ImageURL   *string
	// AdminUsername is set when the request carried a valid admin token.
	AdminUsername string
}

type SendMessageUseCase struct {
	messageRepo chat.MessageRepository
	bus         ChatEventBus
	metrics     ChatMetrics
	logger      logger.Interface
}

func NewSendMessageUseCase(
	messageRepo chat.MessageRepository,
	bus ChatEventBus,
	metrics ChatMetrics,
	logger logger.Interface,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		messageRepo: messageRepo,
		bus:         bus,
		metrics:     metrics,
		logger:      logger,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (*dto.MessageDTO, error) {
	sender, err := vo.NewSender(cmd.Sender)
	if err != nil {
		return nil, errors.NewValidationError("Validation failed", "sender must be one of [user admin]")
	}

	senderName := cmd.SenderName
	if sender.IsAdmin() && strings.TrimSpace(senderName) == "" {
		senderName = cmd.AdminUsername
	}

	msg, err := chat.NewMessage(cmd.TicketID, sender, senderName, cmd.Message, cmd.ImageURL)
	if err != nil {
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}
	if msg.IsEmpty() {
		uc.logger.Debugw("empty chat message accepted", "ticket_id", cmd.TicketID)
	}

	if err := uc.messageRepo.Append(ctx, msg); err != nil {
		uc.logger.Errorw("failed to append chat message", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	result := dto.ToMessageDTO(msg)

	if uc.bus != nil {
		if err := uc.bus.Publish(ctx, result); err != nil {
			uc.logger.Warnw("failed to publish chat message", "message_id", result.ID, "error", err)
		}
	}
	if uc.metrics != nil {
		uc.metrics.ChatMessageSent(sender.String())
	}

	uc.logger.Debugw("chat message appended",
		"ticket_id", result.TicketID,
		"message_id", result.ID,
		"sender", result.Sender,
	)
	return result, nil
}
