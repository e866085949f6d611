package usecases

import (
	"context"
	"fmt"
	"time"

	"modportal/internal/domain/ticket"
	"modportal/internal/shared/errors"
	"modportal/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketResult struct {
	View       *ticket.View
	DaysPassed int
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	view, err := uc.ticketRepo.GetViewByID(ctx, query.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	return &GetTicketResult{
		View:       view,
		DaysPassed: view.DaysPassed(time.Now()),
	}, nil
}
