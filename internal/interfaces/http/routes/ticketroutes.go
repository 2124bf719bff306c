package routes

import (
	"github.com/gin-gonic/gin"

	chathandlers "leafsmp/internal/interfaces/http/handlers/chat"
	tickethandlers "leafsmp/internal/interfaces/http/handlers/ticket"
	"leafsmp/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	ChatHandler    *chathandlers.ChatHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes registers the public ticket and chat endpoints. Ticket
// owners are identified only by their username pair; staff may send a token
// to chat under their own name.
func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	api := engine.Group("/api")
	{
		api.POST("/tickets", config.TicketHandler.CreateTicket)
		api.GET("/user-tickets", config.TicketHandler.GetUserTickets)
	}

	messages := api.Group("/tickets/:id/messages")
	messages.Use(config.AuthMiddleware.OptionalAuth())
	{
		messages.GET("/stream", config.ChatHandler.StreamMessages)
		messages.GET("", config.ChatHandler.ListMessages)
		messages.POST("", config.ChatHandler.SendMessage)
	}
}
