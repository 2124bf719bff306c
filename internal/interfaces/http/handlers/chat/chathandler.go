package chat

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"leafsmp/internal/application/chat/dto"
	"leafsmp/internal/application/chat/usecases"
	"leafsmp/internal/interfaces/http/handlers/common"
	"leafsmp/internal/interfaces/http/middleware"
	"leafsmp/internal/shared/logger"
	"leafsmp/internal/shared/utils"
)

const messageEvent = "message"

type SendMessageRequest struct {
	Sender     string  `json:"sender" validate:"required,oneof=user admin"`
	SenderName string  `json:"senderName" validate:"max=100"`
	Message    *string `json:"message,omitempty" validate:"omitempty,max=5000"`
	ImageURL   *string `json:"imageUrl,omitempty" validate:"omitempty,max=512"`
}

type ChatHandler struct {
	sendMessageUC    usecases.SendMessageExecutor
	listMessagesUC   usecases.ListMessagesExecutor
	streamMessagesUC usecases.StreamMessagesExecutor
	sse              *common.SSEHandlerBase
	logger           logger.Interface
}

func NewChatHandler(
	sendMessageUC usecases.SendMessageExecutor,
	listMessagesUC usecases.ListMessagesExecutor,
	streamMessagesUC usecases.StreamMessagesExecutor,
	sse *common.SSEHandlerBase,
	logger logger.Interface,
) *ChatHandler {
	return &ChatHandler{
		sendMessageUC:    sendMessageUC,
		listMessagesUC:   listMessagesUC,
		streamMessagesUC: streamMessagesUC,
		sse:              sse,
		logger:           logger,
	}
}

// SendMessage handles POST /api/tickets/:id/messages
// @Summary Post a chat message
// @Description Append a text and/or image message to a ticket's conversation
// @Tags chat
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body SendMessageRequest true "Message"
// @Success 201 {object} dto.MessageDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /api/tickets/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	ticketID, err := common.ParseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for send message", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SendMessageCommand{
		TicketID:      ticketID,
		Sender:        req.Sender,
		SenderName:    req.SenderName,
		Message:       req.Message,
		ImageURL:      req.ImageURL,
		AdminUsername: middleware.AdminUsername(c),
	}

	result, err := h.sendMessageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListMessages handles GET /api/tickets/:id/messages?after=
// @Summary List chat messages
// @Description Messages of a ticket in creation order, optionally only those after a message ID
// @Tags chat
// @Produce json
// @Param id path int true "Ticket ID"
// @Param after query int false "Return messages with a greater ID"
// @Success 200 {array} dto.MessageDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /api/tickets/{id}/messages [get]
func (h *ChatHandler) ListMessages(c *gin.Context) {
	ticketID, err := common.ParseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	afterID, err := common.ParseAfterID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listMessagesUC.Execute(c.Request.Context(), usecases.ListMessagesQuery{
		TicketID: ticketID,
		AfterID:  afterID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// StreamMessages handles GET /api/tickets/:id/messages/stream as server-sent
// events. A reconnecting browser sends Last-Event-ID, which takes precedence
// over ?after=.
// @Summary Stream chat messages
// @Description Server-sent events carrying new messages of a ticket
// @Tags chat
// @Produce text/event-stream
// @Param id path int true "Ticket ID"
// @Param after query int false "Replay messages with a greater ID first"
// @Param Last-Event-ID header string false "Resume point sent by reconnecting browsers"
// @Success 200 {object} dto.MessageDTO "One event per message"
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /api/tickets/{id}/messages/stream [get]
func (h *ChatHandler) StreamMessages(c *gin.Context) {
	ticketID, err := common.ParseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	afterID, err := common.ParseAfterID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if lastEventID := c.GetHeader("Last-Event-ID"); lastEventID != "" {
		if id, err := strconv.ParseUint(lastEventID, 10, 32); err == nil {
			afterID = uint(id)
		}
	}

	events, err := h.streamMessagesUC.Execute(c.Request.Context(), usecases.StreamMessagesQuery{
		TicketID: ticketID,
		AfterID:  afterID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.sse.SetupSSEResponse(c)
	if !h.sse.SendInitialConnection(c) {
		h.logger.Warnw("chat stream initial write failed", "ticket_id", ticketID)
		return
	}

	h.logger.Debugw("chat stream opened", "ticket_id", ticketID, "after", afterID)

	common.RunEventLoop(h.sse, c, events, func(m *dto.MessageDTO) error {
		return h.sse.WriteEvent(c, strconv.FormatUint(uint64(m.ID), 10), messageEvent, m)
	}, "chat stream")
}
