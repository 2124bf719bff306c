package http

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "leafsmp/docs"
	"leafsmp/internal/interfaces/http/middleware"
	"leafsmp/internal/interfaces/http/routes"
)

// setupRoutes configures the middleware chain and all HTTP routes.
func (c *Container) setupRoutes() {
	engine := c.engine
	log := c.log.Named("http")

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.Metrics(c.metrics))

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupPublicRoutes(engine, &routes.PublicRouteConfig{
		StatusHandler:  c.hdlrs.statusHandler,
		RankHandler:    c.hdlrs.rankHandler,
		UploadHandler:  c.hdlrs.uploadHandler,
		HealthHandler:  c.hdlrs.healthHandler,
		MetricsHandler: c.metrics.Handler(),
	})

	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  c.hdlrs.ticketHandler,
		ChatHandler:    c.hdlrs.chatHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		AuthHandler:    c.hdlrs.authHandler,
		TicketHandler:  c.hdlrs.ticketHandler,
		AuthMiddleware: c.authMiddleware,
	})
}
