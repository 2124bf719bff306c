package http

import (
	"context"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"leafsmp/internal/application/serverstatus"
	"leafsmp/internal/domain/ticket"
	"leafsmp/internal/infrastructure/auth"
	"leafsmp/internal/infrastructure/config"
	"leafsmp/internal/infrastructure/metrics"
	"leafsmp/internal/infrastructure/pubsub"
	"leafsmp/internal/interfaces/http/middleware"
	"leafsmp/internal/shared/goroutine"
	"leafsmp/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases and
// handlers, wires them together and owns their lifecycle.
type Container struct {
	// Core infrastructure
	engine  *gin.Engine
	db      *gorm.DB
	cfg     *config.Config
	log     logger.Interface
	redis   *redis.Client
	metrics *metrics.Metrics

	// Background work (staff notifications, Redis relay)
	workers *goroutine.Group

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	jwtSvc         *auth.JWTService
	authMiddleware *middleware.AuthMiddleware

	numberGen     *ticket.SequentialNumberGenerator
	statusService *serverstatus.Service

	// Chat fan-out; redisBus is nil unless Redis is enabled.
	localBus  *pubsub.LocalChatBus
	redisBus  *pubsub.RedisChatBus
	busCancel context.CancelFunc
	busMu     sync.Mutex
}

// NewContainer wires every component. db is nil when the memory storage
// driver is selected.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine:  gin.New(),
		db:      db,
		cfg:     cfg,
		log:     log,
		metrics: metrics.New(),
		workers: goroutine.NewGroup(log),
	}

	// Section 1: Infrastructure - Redis, Repositories, Auth
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Use cases
	c.initUseCases()

	// Section 3: Handlers and routes
	if err := c.initHandlers(); err != nil {
		return nil, err
	}
	c.setupRoutes()

	return c, nil
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Start restores state that lives outside the process (ticket numbering,
// the status snapshot) and starts the cross-instance chat relay.
func (c *Container) Start(ctx context.Context) error {
	last, err := c.repos.ticketRepo.LastSequence(ctx)
	if err != nil {
		return fmt.Errorf("failed to read last ticket sequence: %w", err)
	}
	c.numberGen.Seed(last)
	c.log.Infow("ticket numbering restored", "last_sequence", last)

	if err := c.statusService.Seed(ctx); err != nil {
		return fmt.Errorf("failed to seed server status: %w", err)
	}

	if c.redisBus != nil {
		busCtx, cancel := context.WithCancel(context.Background())
		c.busMu.Lock()
		c.busCancel = cancel
		c.busMu.Unlock()

		c.workers.Go("chat-event-relay", func() {
			if err := c.redisBus.Run(busCtx); err != nil && busCtx.Err() == nil {
				c.log.Errorw("chat event relay stopped", "error", err)
			}
		})
	}

	return nil
}

// Shutdown stops background work and closes Redis. The database is owned by
// the caller.
func (c *Container) Shutdown() {
	c.busMu.Lock()
	if c.busCancel != nil {
		c.busCancel()
		c.busCancel = nil
	}
	c.busMu.Unlock()

	c.workers.Wait()

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close Redis client", "error", err)
		}
	}
}
