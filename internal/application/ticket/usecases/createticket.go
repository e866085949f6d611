package usecases

import (
	"context"
	"io"
	"time"

	"modportal/internal/domain/catalog"
	"modportal/internal/domain/ticket"
	vo "modportal/internal/domain/ticket/valueobjects"
	"modportal/internal/shared/errors"
	"modportal/internal/shared/logger"
)

const requestDateLayout = "2006-01-02"

type CreateTicketCommand struct {
	SiteName     string
	TypeID       *uint
	RequestDate  string
	Priority     string
	AssigneeID   uint
	CreatorEmail string
	DocumentName string
	Document     io.Reader
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
	// NotificationSent is false when no channel delivered the creation
	// notice; the ticket itself is saved either way.
	NotificationSent bool
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.Repository
	typeRepo     catalog.TypeRepository
	assigneeRepo catalog.AssigneeRepository
	documents    DocumentStore
	notifier     LifecycleNotifier
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	typeRepo catalog.TypeRepository,
	assigneeRepo catalog.AssigneeRepository,
	documents DocumentStore,
	notifier LifecycleNotifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		typeRepo:     typeRepo,
		assigneeRepo: assigneeRepo,
		documents:    documents,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case",
		"site_name", cmd.SiteName, "creator_email", cmd.CreatorEmail)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	requestDate, err := time.Parse(requestDateLayout, cmd.RequestDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid request date")
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Both catalog references must exist before anything is written. Tickets
	// tolerate dangling references after a catalog delete, not at creation.
	if _, err := uc.assigneeRepo.GetByID(ctx, cmd.AssigneeID); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("assignee does not exist")
		}
		return nil, err
	}
	if cmd.TypeID != nil {
		if _, err := uc.typeRepo.GetByID(ctx, *cmd.TypeID); err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError("modernization type does not exist")
			}
			return nil, err
		}
	}

	documentRef, err := uc.documents.Save(cmd.DocumentName, cmd.Document)
	if err != nil {
		uc.logger.Errorw("failed to store document", "name", cmd.DocumentName, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	newTicket, err := ticket.NewTicket(
		cmd.SiteName,
		cmd.TypeID,
		requestDate,
		priority,
		cmd.AssigneeID,
		cmd.CreatorEmail,
		documentRef,
	)
	if err != nil {
		uc.documents.Remove(documentRef)
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.documents.Remove(documentRef)
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "site_name", newTicket.SiteName())

	sent := false
	if view, err := uc.ticketRepo.GetViewByID(ctx, newTicket.ID()); err != nil {
		uc.logger.Warnw("failed to load ticket view for notification",
			"ticket_id", newTicket.ID(), "error", err)
	} else {
		sent = uc.notifier.NotifyCreated(ctx, view)
	}

	return &CreateTicketResult{
		TicketID:         newTicket.ID(),
		Status:           newTicket.Status().String(),
		CreatedAt:        newTicket.CreatedAt(),
		NotificationSent: sent,
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.SiteName == "" {
		return errors.NewValidationError("site name is required")
	}
	if cmd.RequestDate == "" {
		return errors.NewValidationError("request date is required")
	}
	if cmd.AssigneeID == 0 {
		return errors.NewValidationError("assignee is required")
	}
	if cmd.CreatorEmail == "" {
		return errors.NewValidationError("creator email is required")
	}
	if cmd.DocumentName == "" || cmd.Document == nil {
		return errors.NewValidationError("engineering document is required")
	}
	return nil
}
