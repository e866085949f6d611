package usecases

import (
	"context"
	"fmt"

	"modportal/internal/domain/ticket"
	"modportal/internal/shared/errors"
	"modportal/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID    uint
	AdminSecret string
}

type DeleteTicketResult struct {
	TicketID        uint
	DocumentRemoved bool
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	documents  DocumentStore
	admin      AdminAuthorizer
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	documents DocumentStore,
	admin AdminAuthorizer,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		documents:  documents,
		admin:      admin,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if err := uc.admin.Authorize(cmd.AdminSecret); err != nil {
		uc.logger.Warnw("rejected delete with bad admin secret", "ticket_id", cmd.TicketID)
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	// Removing the stored file is best effort; a miss leaves an orphan on
	// disk, never a dangling ticket.
	removed := false
	if ref := t.DocumentRef(); ref != "" {
		if err := uc.documents.Remove(ref); err != nil {
			uc.logger.Warnw("failed to remove document file",
				"ticket_id", cmd.TicketID, "document_ref", ref, "error", err)
		} else {
			removed = true
		}
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "document_removed", removed)

	return &DeleteTicketResult{
		TicketID:        cmd.TicketID,
		DocumentRemoved: removed,
	}, nil
}
