package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"modportal/internal/domain/catalog"
	"modportal/internal/infrastructure/persistence/mappers"
	"modportal/internal/infrastructure/persistence/models"
	"modportal/internal/shared/db"
	"modportal/internal/shared/errors"
)

type TypeRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewTypeRepository(db *gorm.DB) *TypeRepository {
	return &TypeRepository{
		db:     db,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *TypeRepository) Save(ctx context.Context, t *catalog.ModernizationType) error {
	model := r.mapper.TypeToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("type already exists", t.Name())
		}
		return fmt.Errorf("failed to save modernization type: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TypeRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ModernizationTypeModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete modernization type: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("modernization type not found")
	}
	return nil
}

func (r *TypeRepository) GetByID(ctx context.Context, id uint) (*catalog.ModernizationType, error) {
	var model models.ModernizationTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("modernization type not found")
		}
		return nil, fmt.Errorf("failed to find modernization type: %w", err)
	}

	return r.mapper.TypeToDomain(&model)
}

func (r *TypeRepository) List(ctx context.Context) ([]*catalog.ModernizationType, error) {
	var typeModels []models.ModernizationTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&typeModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list modernization types: %w", err)
	}

	types := make([]*catalog.ModernizationType, len(typeModels))
	for i := range typeModels {
		t, err := r.mapper.TypeToDomain(&typeModels[i])
		if err != nil {
			return nil, err
		}
		types[i] = t
	}

	return types, nil
}

type AssigneeRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewAssigneeRepository(db *gorm.DB) *AssigneeRepository {
	return &AssigneeRepository{
		db:     db,
		mapper: mappers.NewCatalogMapper(),
	}
}

// Upsert inserts by unique name; on collision only the email is replaced
// (last write wins, matching the portal's historical behavior).
func (r *AssigneeRepository) Upsert(ctx context.Context, a *catalog.Assignee) error {
	model := r.mapper.AssigneeToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"email"}),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to upsert assignee: %w", err)
	}

	if a.ID() == 0 && model.ID != 0 {
		return a.SetID(model.ID)
	}
	return nil
}

func (r *AssigneeRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.AssigneeModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete assignee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("assignee not found")
	}
	return nil
}

func (r *AssigneeRepository) GetByID(ctx context.Context, id uint) (*catalog.Assignee, error) {
	var model models.AssigneeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("assignee not found")
		}
		return nil, fmt.Errorf("failed to find assignee: %w", err)
	}

	return r.mapper.AssigneeToDomain(&model)
}

func (r *AssigneeRepository) List(ctx context.Context) ([]*catalog.Assignee, error) {
	var assigneeModels []models.AssigneeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&assigneeModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignees: %w", err)
	}

	assignees := make([]*catalog.Assignee, len(assigneeModels))
	for i := range assigneeModels {
		a, err := r.mapper.AssigneeToDomain(&assigneeModels[i])
		if err != nil {
			return nil, err
		}
		assignees[i] = a
	}

	return assignees, nil
}
