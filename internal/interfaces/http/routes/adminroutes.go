package routes

import (
	"github.com/gin-gonic/gin"

	adminhandlers "leafsmp/internal/interfaces/http/handlers/admin"
	tickethandlers "leafsmp/internal/interfaces/http/handlers/ticket"
	"leafsmp/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	AuthHandler    *adminhandlers.AuthHandler
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/api/admin")

	admin.POST("/login", config.AuthHandler.Login)

	tickets := admin.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAdmin())
	{
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.GET("/stats", config.TicketHandler.GetTicketStats)
		tickets.PATCH("/:id", config.TicketHandler.UpdateTicket)
	}
}
