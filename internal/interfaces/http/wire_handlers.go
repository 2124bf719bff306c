package http

import (
	"context"
	"fmt"

	adminUsecases "leafsmp/internal/application/admin/usecases"
	uploadUsecases "leafsmp/internal/application/upload/usecases"
	"leafsmp/internal/infrastructure/auth"
	"leafsmp/internal/infrastructure/rank"
	adminHandlers "leafsmp/internal/interfaces/http/handlers/admin"
	chatHandlers "leafsmp/internal/interfaces/http/handlers/chat"
	"leafsmp/internal/interfaces/http/handlers/common"
	healthHandlers "leafsmp/internal/interfaces/http/handlers/health"
	rankHandlers "leafsmp/internal/interfaces/http/handlers/rank"
	serverHandlers "leafsmp/internal/interfaces/http/handlers/server"
	ticketHandlers "leafsmp/internal/interfaces/http/handlers/ticket"
	uploadHandlers "leafsmp/internal/interfaces/http/handlers/upload"
	"leafsmp/internal/shared/services/markdown"
)

type allHandlers struct {
	ticketHandler *ticketHandlers.TicketHandler
	chatHandler   *chatHandlers.ChatHandler
	statusHandler *serverHandlers.StatusHandler
	rankHandler   *rankHandlers.RankHandler
	authHandler   *adminHandlers.AuthHandler
	uploadHandler *uploadHandlers.UploadHandler
	healthHandler *healthHandlers.HealthHandler
}

// ============================================================
// Section 3: Handlers
// ============================================================

func (c *Container) initHandlers() error {
	cfg := c.cfg
	log := c.log
	ucs := c.ucs

	catalog, err := rank.NewDefaultCatalog(markdown.NewMarkdownService())
	if err != nil {
		return fmt.Errorf("failed to load rank catalog: %w", err)
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	credentials := auth.NewCredentialStore(cfg.Auth.Admins, hasher)
	if credentials.Len() == 0 {
		log.Warnw("no admin credentials configured, staff login is disabled")
	}
	loginUC := adminUsecases.NewAdminLoginUseCase(credentials, c.jwtSvc, c.metrics, log.Named("admin.login"))

	uploadUC := uploadUsecases.NewUploadImageUseCase(cfg.Upload.MaxBytes, cfg.Upload.PublicPrefix, log.Named("upload"))

	c.hdlrs = &allHandlers{
		ticketHandler: ticketHandlers.NewTicketHandler(
			ucs.createTicket,
			ucs.getUserTickets,
			ucs.listTickets,
			ucs.updateTicket,
			ucs.ticketStats,
			log.Named("ticket.handler"),
		),
		chatHandler: chatHandlers.NewChatHandler(
			ucs.sendMessage,
			ucs.listMessages,
			ucs.streamMessages,
			common.NewSSEHandlerBase(log.Named("sse")).WithKeepalive(cfg.Server.SSEKeepalive()),
			log.Named("chat.handler"),
		),
		statusHandler: serverHandlers.NewStatusHandler(c.statusService, log.Named("status.handler")),
		rankHandler:   rankHandlers.NewRankHandler(catalog),
		authHandler:   adminHandlers.NewAuthHandler(loginUC, log.Named("admin.handler")),
		uploadHandler: uploadHandlers.NewUploadHandler(uploadUC, cfg.Upload.MaxBytes, log.Named("upload.handler")),
		healthHandler: healthHandlers.NewHealthHandler(c.healthChecks()),
	}

	return nil
}

func (c *Container) healthChecks() map[string]healthHandlers.Checker {
	checks := map[string]healthHandlers.Checker{}

	if c.db != nil {
		checks["database"] = func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	}
	if c.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}
	}

	return checks
}
