package server

import (
	"context"

	"github.com/gin-gonic/gin"

	domain "leafsmp/internal/domain/serverstatus"
	"leafsmp/internal/shared/logger"
	"leafsmp/internal/shared/utils"
)

// StatusService is the part of serverstatus.Service the handler needs.
type StatusService interface {
	Get(ctx context.Context) (*domain.Snapshot, error)
	Refresh(ctx context.Context) *domain.Snapshot
}

type StatusHandler struct {
	service StatusService
	logger  logger.Interface
}

func NewStatusHandler(service StatusService, logger logger.Interface) *StatusHandler {
	return &StatusHandler{
		service: service,
		logger:  logger,
	}
}

// GetStatus handles GET /api/server/status
// @Summary Cached server status
// @Description Last known Minecraft server status snapshot
// @Tags server
// @Produce json
// @Success 200 {object} serverstatus.Snapshot
// @Failure 500 {object} utils.ErrorBody
// @Router /api/server/status [get]
func (h *StatusHandler) GetStatus(c *gin.Context) {
	snapshot, err := h.service.Get(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, snapshot)
}

// GetLiveStatus handles GET /api/server/live-status. It always answers 200.
// @Summary Live server status
// @Description Query the Minecraft server now, falling back to the last snapshot
// @Tags server
// @Produce json
// @Success 200 {object} serverstatus.Snapshot
// @Router /api/server/live-status [get]
func (h *StatusHandler) GetLiveStatus(c *gin.Context) {
	utils.OKResponse(c, h.service.Refresh(c.Request.Context()))
}
