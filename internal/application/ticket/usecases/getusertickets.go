package usecases

import (
	"context"
	"strings"

	"leafsmp/internal/application/ticket/dto"
	"leafsmp/internal/domain/ticket"
	"leafsmp/internal/shared/logger"
	"leafsmp/internal/shared/utils"
)

type GetUserTicketsQuery struct {
	MinecraftUsername string
	DiscordUsername   string
}

// GetUserTicketsUseCase is the "my tickets" lookup. Both identity fields
// must match exactly.
type GetUserTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetUserTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetUserTicketsUseCase {
	return &GetUserTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetUserTicketsUseCase) Execute(ctx context.Context, query GetUserTicketsQuery) ([]*dto.TicketDTO, error) {
	// Stored names were trimmed on create.
	query.MinecraftUsername = strings.TrimSpace(query.MinecraftUsername)
	query.DiscordUsername = strings.TrimSpace(query.DiscordUsername)

	if err := utils.ValidateRequired(
		utils.RequiredField{Name: "minecraft", Value: query.MinecraftUsername},
		utils.RequiredField{Name: "discord", Value: query.DiscordUsername},
	); err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.FindByIdentity(ctx, query.MinecraftUsername, query.DiscordUsername)
	if err != nil {
		uc.logger.Errorw("failed to find user tickets",
			"minecraft_username", query.MinecraftUsername,
			"error", err,
		)
		return nil, err
	}

	return dto.ToTicketDTOs(tickets), nil
}
