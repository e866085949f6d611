package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"modportal/internal/domain/ticket"
	"modportal/internal/infrastructure/persistence/mappers"
	"modportal/internal/infrastructure/persistence/models"
	"modportal/internal/shared/db"
	"modportal/internal/shared/errors"
)

// ticketViewColumns is the join projection behind every listing, search and
// export path. Catalog joins are LEFT so dangling references still list.
const ticketViewColumns = "t.id, t.site_name, mt.name AS type_name, t.request_date, t.priority, " +
	"t.assignee_id, a.name AS assignee_name, a.email AS assignee_email, t.creator_email, " +
	"t.document_ref, t.external_case_number, t.external_case_link, t.status, t.created_at, t.updated_at"

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("Status", "ExternalCaseNumber", "ExternalCaseLink", "UpdatedAt").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) FindViews(ctx context.Context, filter ticket.Filter) ([]ticket.View, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Table("tickets t").
		Select(ticketViewColumns).
		Joins("LEFT JOIN modernization_types mt ON mt.id = t.modernization_type_id").
		Joins("LEFT JOIN assignees a ON a.id = t.assignee_id")

	if id, ok := filter.IDQuery(); ok {
		query = query.Where("t.id = ?", id)
	} else if filter.FreeText != "" {
		query = query.Where("t.site_name LIKE ?", "%"+filter.FreeText+"%")
	}
	if filter.Status != nil {
		query = query.Where("t.status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("t.priority = ?", filter.Priority.String())
	}
	if filter.AssigneeID != nil {
		query = query.Where("t.assignee_id = ?", *filter.AssigneeID)
	}

	query = query.Order("t.id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var viewModels []models.TicketViewModel
	if err := query.Scan(&viewModels).Error; err != nil {
		return nil, fmt.Errorf("failed to query ticket views: %w", err)
	}

	views := make([]ticket.View, len(viewModels))
	for i := range viewModels {
		views[i] = r.mapper.ViewToDomain(&viewModels[i])
	}

	return views, nil
}

func (r *TicketRepository) GetViewByID(ctx context.Context, id uint) (*ticket.View, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var viewModel models.TicketViewModel
	result := tx.
		Table("tickets t").
		Select(ticketViewColumns).
		Joins("LEFT JOIN modernization_types mt ON mt.id = t.modernization_type_id").
		Joins("LEFT JOIN assignees a ON a.id = t.assignee_id").
		Where("t.id = ?", id).
		Limit(1).
		Scan(&viewModel)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to query ticket view: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	view := r.mapper.ViewToDomain(&viewModel)
	return &view, nil
}

func (r *TicketRepository) GetStats(ctx context.Context) (ticket.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var stats ticket.Stats
	counts := []struct {
		status string
		dest   *int64
	}{
		{"Abierto", &stats.Open},
		{"Cerrado", &stats.Closed},
	}
	for _, c := range counts {
		if err := tx.Model(&models.TicketModel{}).Where("status = ?", c.status).Count(c.dest).Error; err != nil {
			return ticket.Stats{}, fmt.Errorf("failed to count tickets: %w", err)
		}
	}
	if err := tx.Model(&models.TicketModel{}).Count(&stats.Total).Error; err != nil {
		return ticket.Stats{}, fmt.Errorf("failed to count tickets: %w", err)
	}

	return stats, nil
}
