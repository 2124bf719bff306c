package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	healthhandlers "leafsmp/internal/interfaces/http/handlers/health"
	rankhandlers "leafsmp/internal/interfaces/http/handlers/rank"
	serverhandlers "leafsmp/internal/interfaces/http/handlers/server"
	uploadhandlers "leafsmp/internal/interfaces/http/handlers/upload"
)

type PublicRouteConfig struct {
	StatusHandler  *serverhandlers.StatusHandler
	RankHandler    *rankhandlers.RankHandler
	UploadHandler  *uploadhandlers.UploadHandler
	HealthHandler  *healthhandlers.HealthHandler
	MetricsHandler http.Handler
}

func SetupPublicRoutes(engine *gin.Engine, config *PublicRouteConfig) {
	engine.GET("/health", config.HealthHandler.HealthCheck)
	if config.MetricsHandler != nil {
		engine.GET("/metrics", gin.WrapH(config.MetricsHandler))
	}

	api := engine.Group("/api")
	{
		api.GET("/server/status", config.StatusHandler.GetStatus)
		api.GET("/server/live-status", config.StatusHandler.GetLiveStatus)
		api.GET("/ranks", config.RankHandler.ListRanks)
		api.POST("/upload-image", config.UploadHandler.UploadImage)
	}
}
