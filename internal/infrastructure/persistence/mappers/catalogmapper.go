package mappers

import (
	"modportal/internal/domain/catalog"
	"modportal/internal/infrastructure/persistence/models"
)

type CatalogMapper interface {
	TypeToModel(t *catalog.ModernizationType) *models.ModernizationTypeModel
	TypeToDomain(model *models.ModernizationTypeModel) (*catalog.ModernizationType, error)
	AssigneeToModel(a *catalog.Assignee) *models.AssigneeModel
	AssigneeToDomain(model *models.AssigneeModel) (*catalog.Assignee, error)
}

type CatalogMapperImpl struct{}

func NewCatalogMapper() CatalogMapper {
	return &CatalogMapperImpl{}
}

func (m *CatalogMapperImpl) TypeToModel(t *catalog.ModernizationType) *models.ModernizationTypeModel {
	return &models.ModernizationTypeModel{
		ID:   t.ID(),
		Name: t.Name(),
	}
}

func (m *CatalogMapperImpl) TypeToDomain(model *models.ModernizationTypeModel) (*catalog.ModernizationType, error) {
	return catalog.ReconstructModernizationType(model.ID, model.Name)
}

func (m *CatalogMapperImpl) AssigneeToModel(a *catalog.Assignee) *models.AssigneeModel {
	return &models.AssigneeModel{
		ID:    a.ID(),
		Name:  a.Name(),
		Email: a.Email(),
	}
}

func (m *CatalogMapperImpl) AssigneeToDomain(model *models.AssigneeModel) (*catalog.Assignee, error) {
	return catalog.ReconstructAssignee(model.ID, model.Name, model.Email)
}
