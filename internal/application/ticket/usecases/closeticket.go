package usecases

import (
	"context"
	"fmt"

	"modportal/internal/domain/ticket"
	"modportal/internal/shared/errors"
	"modportal/internal/shared/logger"
)

type CloseTicketCommand struct {
	TicketID           uint
	ExternalCaseNumber string
	ExternalCaseLink   string
}

type CloseTicketResult struct {
	TicketID         uint
	Status           string
	NotificationSent bool
}

type CloseTicketUseCase struct {
	ticketRepo ticket.Repository
	notifier   LifecycleNotifier
	logger     logger.Interface
}

func NewCloseTicketUseCase(
	ticketRepo ticket.Repository,
	notifier LifecycleNotifier,
	logger logger.Interface,
) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error) {
	uc.logger.Infow("executing close ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	caseNumber := optional(cmd.ExternalCaseNumber)
	caseLink := optional(cmd.ExternalCaseLink)

	if err := t.Close(caseNumber, caseLink); err != nil {
		uc.logger.Warnw("rejected close", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket closed", "ticket_id", cmd.TicketID)

	sent := false
	if view, err := uc.ticketRepo.GetViewByID(ctx, t.ID()); err != nil {
		uc.logger.Warnw("failed to load ticket view for notification",
			"ticket_id", t.ID(), "error", err)
	} else {
		sent = uc.notifier.NotifyClosed(ctx, view)
	}

	return &CloseTicketResult{
		TicketID:         t.ID(),
		Status:           t.Status().String(),
		NotificationSent: sent,
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
