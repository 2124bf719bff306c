package http

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	chatUsecases "leafsmp/internal/application/chat/usecases"
	"leafsmp/internal/application/serverstatus"
	ticketUsecases "leafsmp/internal/application/ticket/usecases"
	"leafsmp/internal/domain/chat"
	statusDomain "leafsmp/internal/domain/serverstatus"
	"leafsmp/internal/domain/ticket"
	"leafsmp/internal/infrastructure/auth"
	"leafsmp/internal/infrastructure/cache"
	"leafsmp/internal/infrastructure/config"
	"leafsmp/internal/infrastructure/email"
	"leafsmp/internal/infrastructure/mcstatus"
	"leafsmp/internal/infrastructure/pubsub"
	"leafsmp/internal/infrastructure/repository"
	"leafsmp/internal/interfaces/http/middleware"
	"leafsmp/internal/shared/db"
	"leafsmp/internal/shared/logger"
)

// repositories holds the storage selected by storage.driver.
type repositories struct {
	ticketRepo    ticket.TicketRepository
	messageRepo   chat.MessageRepository
	snapshotStore statusDomain.SnapshotStore
	transactor    db.Transactor
}

// ============================================================
// Section 1: Infrastructure - Redis, Repositories, Auth
// ============================================================

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	if cfg.Redis.Enabled {
		client, err := initRedis(cfg, log)
		if err != nil {
			return err
		}
		c.redis = client
	}

	repos, err := newRepositories(cfg, c.db, c.redis)
	if err != nil {
		return err
	}
	c.repos = repos

	c.localBus = pubsub.NewLocalChatBus(pubsub.DefaultSubscriberBuffer, log.Named("chat.bus"))
	if c.redis != nil {
		c.redisBus = pubsub.NewRedisChatBus(c.redis, c.localBus, log.Named("chat.bus.redis"))
	}

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.TTL())
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log.Named("auth"))

	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}

func newRepositories(cfg *config.Config, database *gorm.DB, redisClient *redis.Client) (*repositories, error) {
	repos := &repositories{}

	if cfg.Storage.UsesDatabase() {
		if database == nil {
			return nil, fmt.Errorf("storage driver %q needs a database connection", cfg.Storage.Driver)
		}
		repos.ticketRepo = repository.NewTicketRepository(database)
		repos.messageRepo = repository.NewMessageRepository(database)
		repos.transactor = db.NewTransactionManager(database)
	} else {
		repos.ticketRepo = repository.NewMemoryTicketRepository()
		repos.messageRepo = repository.NewMemoryMessageRepository()
		repos.transactor = db.NewLocalTransactor()
	}

	if redisClient != nil {
		repos.snapshotStore = cache.NewRedisSnapshotStore(redisClient)
	} else {
		repos.snapshotStore = cache.NewMemorySnapshotStore()
	}

	return repos, nil
}

// ============================================================
// Section 2: Use cases
// ============================================================

type allUseCases struct {
	createTicket   *ticketUsecases.CreateTicketUseCase
	getUserTickets *ticketUsecases.GetUserTicketsUseCase
	listTickets    *ticketUsecases.ListTicketsUseCase
	updateTicket   *ticketUsecases.UpdateTicketUseCase
	ticketStats    *ticketUsecases.GetTicketStatsUseCase

	sendMessage    *chatUsecases.SendMessageUseCase
	listMessages   *chatUsecases.ListMessagesUseCase
	streamMessages *chatUsecases.StreamMessagesUseCase
}

func (c *Container) initUseCases() {
	cfg := c.cfg
	log := c.log
	repos := c.repos

	c.numberGen = ticket.NewSequentialNumberGenerator(cfg.Ticket.NumberPrefix)

	var notifier ticketUsecases.TicketNotifier
	if cfg.Email.Enabled {
		notifier = email.NewSMTPTicketNotifier(cfg.Email, log.Named("email"))
		log.Infow("staff ticket notifications enabled", "staff_address", cfg.Email.StaffAddress)
	}

	var bus chatUsecases.ChatEventBus = c.localBus
	if c.redisBus != nil {
		bus = c.redisBus
	}

	c.ucs = &allUseCases{
		createTicket:   ticketUsecases.NewCreateTicketUseCase(repos.ticketRepo, c.numberGen, notifier, c.metrics, c.workers, log),
		getUserTickets: ticketUsecases.NewGetUserTicketsUseCase(repos.ticketRepo, log),
		listTickets:    ticketUsecases.NewListTicketsUseCase(repos.ticketRepo, log),
		updateTicket:   ticketUsecases.NewUpdateTicketUseCase(repos.ticketRepo, repos.transactor, c.metrics, log),
		ticketStats:    ticketUsecases.NewGetTicketStatsUseCase(repos.ticketRepo, log),

		sendMessage:    chatUsecases.NewSendMessageUseCase(repos.messageRepo, bus, c.metrics, log),
		listMessages:   chatUsecases.NewListMessagesUseCase(repos.messageRepo, log),
		streamMessages: chatUsecases.NewStreamMessagesUseCase(repos.messageRepo, bus, log),
	}

	provider := mcstatus.NewMCSrvStatProvider(mcstatus.Options{
		APIURL:         cfg.Minecraft.StatusAPIURL,
		Timeout:        cfg.Minecraft.Timeout(),
		DefaultVersion: cfg.Minecraft.DefaultVersion,
		DefaultMax:     cfg.Minecraft.DefaultMax,
	}, log.Named("mcstatus"))

	c.statusService = serverstatus.NewService(provider, repos.snapshotStore, serverstatus.Target{
		Host:    cfg.Minecraft.Host,
		Port:    cfg.Minecraft.Port,
		Timeout: cfg.Minecraft.Timeout(),
	}, c.metrics, log.Named("serverstatus"))
}
