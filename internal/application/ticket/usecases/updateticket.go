package usecases

import (
	"context"

	"leafsmp/internal/application/ticket/dto"
	"leafsmp/internal/domain/ticket"
	vo "leafsmp/internal/domain/ticket/valueobjects"
	"leafsmp/internal/shared/db"
	"leafsmp/internal/shared/errors"
	"leafsmp/internal/shared/logger"
)

// UpdateTicketCommand is a partial staff edit; nil fields stay as they are.
type UpdateTicketCommand struct {
	TicketID   uint
	Status     *string
	Priority   *string
	AdminNotes *string
	UpdatedBy  string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	txMgr      db.Transactor
	metrics    TicketMetrics
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	txMgr db.Transactor,
	metrics TicketMetrics,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		metrics:    metrics,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case",
		"ticket_id", cmd.TicketID,
		"updated_by", cmd.UpdatedBy,
	)

	update, err := toTicketUpdate(cmd)
	if err != nil {
		return nil, err
	}

	var updated *ticket.Ticket
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		if err := t.ApplyUpdate(update); err != nil {
			return errors.NewValidationError("Validation failed", err.Error())
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("ticket not found for update", "ticket_id", cmd.TicketID)
		} else {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully",
		"ticket_id", updated.ID(),
		"ticket_number", updated.Number(),
		"status", updated.Status(),
	)
	if uc.metrics != nil {
		uc.metrics.TicketUpdated(updated.Status().String())
	}

	return dto.ToTicketDTO(updated), nil
}

func toTicketUpdate(cmd UpdateTicketCommand) (ticket.TicketUpdate, error) {
	var update ticket.TicketUpdate

	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return update, errors.NewValidationError("Validation failed", err.Error())
		}
		update.Status = &status
	}
	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return update, errors.NewValidationError("Validation failed", err.Error())
		}
		update.Priority = &priority
	}
	update.AdminNotes = cmd.AdminNotes

	return update, nil
}
