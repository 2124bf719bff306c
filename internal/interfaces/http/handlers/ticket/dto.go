package ticket

import (
	"leafsmp/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	MinecraftUsername string `json:"minecraftUsername" validate:"required,max=100"`
	DiscordUsername   string `json:"discordUsername" validate:"required,max=100"`
	SelectedRank      string `json:"selectedRank" validate:"required,max=64"`
	Category          string `json:"category,omitempty"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		MinecraftUsername: r.MinecraftUsername,
		DiscordUsername:   r.DiscordUsername,
		SelectedRank:      r.SelectedRank,
		Category:          r.Category,
	}
}

// UpdateTicketRequest is a partial edit; omitted fields keep their value.
type UpdateTicketRequest struct {
	Status     *string `json:"status,omitempty"`
	Priority   *string `json:"priority,omitempty"`
	AdminNotes *string `json:"adminNotes,omitempty" validate:"omitempty,max=5000"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint, updatedBy string) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:   ticketID,
		Status:     r.Status,
		Priority:   r.Priority,
		AdminNotes: r.AdminNotes,
		UpdatedBy:  updatedBy,
	}
}
