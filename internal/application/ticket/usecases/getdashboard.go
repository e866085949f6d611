package usecases

import (
	"context"

	"modportal/internal/domain/ticket"
	"modportal/internal/shared/errors"
	"modportal/internal/shared/logger"
)

const recentTicketsLimit = 10

type GetDashboardResult struct {
	Stats  ticket.Stats
	Recent []ticket.View
}

type GetDashboardUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetDashboardUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*GetDashboardResult, error) {
	stats, err := uc.ticketRepo.GetStats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get ticket stats", "error", err)
		return nil, errors.NewInternalError("failed to get ticket stats")
	}

	recent, err := uc.ticketRepo.FindViews(ctx, ticket.Filter{Limit: recentTicketsLimit})
	if err != nil {
		uc.logger.Errorw("failed to list recent tickets", "error", err)
		return nil, errors.NewInternalError("failed to list recent tickets")
	}

	return &GetDashboardResult{
		Stats:  stats,
		Recent: recent,
	}, nil
}
