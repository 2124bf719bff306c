package ticket

import (
	"github.com/gin-gonic/gin"

	"leafsmp/internal/application/ticket/usecases"
	"leafsmp/internal/interfaces/http/handlers/common"
	"leafsmp/internal/interfaces/http/middleware"
	"leafsmp/internal/shared/logger"
	"leafsmp/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC   usecases.CreateTicketExecutor
	getUserTicketsUC usecases.GetUserTicketsExecutor
	listTicketsUC    usecases.ListTicketsExecutor
	updateTicketUC   usecases.UpdateTicketExecutor
	ticketStatsUC    usecases.GetTicketStatsExecutor
	logger           logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getUserTicketsUC usecases.GetUserTicketsExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	ticketStatsUC usecases.GetTicketStatsExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:   createTicketUC,
		getUserTicketsUC: getUserTicketsUC,
		listTicketsUC:    listTicketsUC,
		updateTicketUC:   updateTicketUC,
		ticketStatsUC:    ticketStatsUC,
		logger:           logger,
	}
}

// CreateTicket handles POST /api/tickets
// @Summary Open a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body CreateTicketRequest true "Ticket details"
// @Success 201 {object} dto.TicketDTO
// @Failure 400 {object} utils.ErrorBody
// @Router /api/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// GetUserTickets handles GET /api/user-tickets?minecraft=&discord=
// @Summary List a player's tickets
// @Description Tickets matching both the Minecraft and Discord username, newest first
// @Tags tickets
// @Produce json
// @Param minecraft query string true "Minecraft username"
// @Param discord query string true "Discord username"
// @Success 200 {array} dto.TicketDTO
// @Failure 400 {object} utils.ErrorBody
// @Router /api/user-tickets [get]
func (h *TicketHandler) GetUserTickets(c *gin.Context) {
	query := usecases.GetUserTicketsQuery{
		MinecraftUsername: c.Query("minecraft"),
		DiscordUsername:   c.Query("discord"),
	}

	result, err := h.getUserTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListTickets handles GET /api/admin/tickets?status=&priority=&sort=
// @Summary List all tickets
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "open, in_progress or closed"
// @Param priority query string false "low, normal, high or urgent"
// @Param sort query string false "created_date, priority or status"
// @Success 200 {array} dto.TicketDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Router /api/admin/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	query := usecases.ListTicketsQuery{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Sort:     c.Query("sort"),
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetTicketStats handles GET /api/admin/tickets/stats
// @Summary Ticket counts by status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TicketStatsDTO
// @Failure 401 {object} utils.ErrorBody
// @Router /api/admin/tickets/stats [get]
func (h *TicketHandler) GetTicketStats(c *gin.Context) {
	result, err := h.ticketStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// UpdateTicket handles PATCH /api/admin/tickets/:id
// @Summary Update a ticket
// @Description Partial edit of status, priority and admin notes
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param request body UpdateTicketRequest true "Fields to change"
// @Success 200 {object} dto.TicketDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /api/admin/tickets/{id} [patch]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := common.ParseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID, middleware.AdminUsername(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
