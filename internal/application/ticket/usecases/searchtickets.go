package usecases

import (
	"context"

	"modportal/internal/domain/ticket"
	vo "modportal/internal/domain/ticket/valueobjects"
	"modportal/internal/shared/errors"
	"modportal/internal/shared/logger"
)

type SearchTicketsQuery struct {
	FreeText   string
	Status     string
	Priority   string
	AssigneeID *uint
	Limit      int
}

type SearchTicketsResult struct {
	Tickets []ticket.View
}

// SearchTicketsUseCase serves the dashboard listing and the search page. An
// all-empty query returns every ticket, newest first.
type SearchTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewSearchTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *SearchTicketsUseCase {
	return &SearchTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *SearchTicketsUseCase) Execute(ctx context.Context, query SearchTicketsQuery) (*SearchTicketsResult, error) {
	filter := ticket.Filter{
		FreeText:   query.FreeText,
		AssigneeID: query.AssigneeID,
		Limit:      query.Limit,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	views, err := uc.ticketRepo.FindViews(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to search tickets", "error", err)
		return nil, errors.NewInternalError("failed to search tickets")
	}

	return &SearchTicketsResult{Tickets: views}, nil
}
