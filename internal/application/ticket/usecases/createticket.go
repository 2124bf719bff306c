package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"leafsmp/internal/application/ticket/dto"
	"leafsmp/internal/domain/ticket"
	vo "leafsmp/internal/domain/ticket/valueobjects"
	"leafsmp/internal/shared/errors"
	"leafsmp/internal/shared/logger"
	"leafsmp/internal/shared/utils"
)

const notifyTimeout = 30 * time.Second

type CreateTicketCommand struct {
	MinecraftUsername string
	DiscordUsername   string
	SelectedRank      string
	Category          string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	numberGen  ticket.NumberGenerator
	notifier   TicketNotifier
	metrics    TicketMetrics
	runner     BackgroundRunner
	logger     logger.Interface

	// mu keeps number order equal to creation order.
	mu sync.Mutex
}

// NewCreateTicketUseCase wires the use case. notifier may be nil.
func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	numberGen ticket.NumberGenerator,
	notifier TicketNotifier,
	metrics TicketMetrics,
	runner BackgroundRunner,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		numberGen:  numberGen,
		notifier:   notifier,
		metrics:    metrics,
		runner:     runner,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case",
		"minecraft_username", cmd.MinecraftUsername,
		"selected_rank", cmd.SelectedRank,
	)

	if err := utils.ValidateRequired(
		utils.RequiredField{Name: "minecraftUsername", Value: cmd.MinecraftUsername},
		utils.RequiredField{Name: "discordUsername", Value: cmd.DiscordUsername},
		utils.RequiredField{Name: "selectedRank", Value: cmd.SelectedRank},
	); err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		cmd.MinecraftUsername,
		cmd.DiscordUsername,
		cmd.SelectedRank,
		vo.Category(cmd.Category),
	)
	if err != nil {
		uc.logger.Warnw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}

	if err := uc.store(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully",
		"ticket_id", newTicket.ID(),
		"ticket_number", newTicket.Number(),
	)

	if uc.metrics != nil {
		uc.metrics.TicketCreated(newTicket.Category().String())
	}
	uc.notify(ticket.NewCreatedEvent(newTicket))

	return dto.ToTicketDTO(newTicket), nil
}

func (uc *CreateTicketUseCase) store(ctx context.Context, t *ticket.Ticket) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	number, err := uc.numberGen.Generate(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate ticket number: %w", err)
	}
	if err := t.SetNumber(number); err != nil {
		return err
	}
	return uc.ticketRepo.Save(ctx, t)
}

func (uc *CreateTicketUseCase) notify(event ticket.CreatedEvent) {
	if uc.notifier == nil || uc.runner == nil {
		return
	}

	uc.runner.Go("notify-ticket-created", func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := uc.notifier.NotifyTicketCreated(ctx, event); err != nil {
			uc.logger.Warnw("failed to notify staff about new ticket",
				"ticket_number", event.Number,
				"error", err,
			)
		}
	})
}
