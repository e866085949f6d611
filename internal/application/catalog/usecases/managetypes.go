// Package usecases implements the admin catalog operations: managing the
// modernization type list and the assignee roster.
package usecases

import (
	"context"

	"modportal/internal/domain/catalog"
	"modportal/internal/shared/errors"
	"modportal/internal/shared/logger"
)

type AddTypeCommand struct {
	Name        string
	AdminSecret string
}

type AddTypeResult struct {
	TypeID uint
	Name   string
}

type AddTypeUseCase struct {
	typeRepo catalog.TypeRepository
	admin    AdminAuthorizer
	logger   logger.Interface
}

func NewAddTypeUseCase(typeRepo catalog.TypeRepository, admin AdminAuthorizer, logger logger.Interface) *AddTypeUseCase {
	return &AddTypeUseCase{
		typeRepo: typeRepo,
		admin:    admin,
		logger:   logger,
	}
}

func (uc *AddTypeUseCase) Execute(ctx context.Context, cmd AddTypeCommand) (*AddTypeResult, error) {
	if err := uc.admin.Authorize(cmd.AdminSecret); err != nil {
		uc.logger.Warnw("rejected add type with bad admin secret")
		return nil, err
	}

	mt, err := catalog.NewModernizationType(cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.typeRepo.Save(ctx, mt); err != nil {
		uc.logger.Errorw("failed to save modernization type", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("modernization type added", "type_id", mt.ID(), "name", mt.Name())

	return &AddTypeResult{TypeID: mt.ID(), Name: mt.Name()}, nil
}

type DeleteTypeCommand struct {
	TypeID      uint
	AdminSecret string
}

type DeleteTypeUseCase struct {
	typeRepo catalog.TypeRepository
	admin    AdminAuthorizer
	logger   logger.Interface
}

func NewDeleteTypeUseCase(typeRepo catalog.TypeRepository, admin AdminAuthorizer, logger logger.Interface) *DeleteTypeUseCase {
	return &DeleteTypeUseCase{
		typeRepo: typeRepo,
		admin:    admin,
		logger:   logger,
	}
}

// Execute removes a type. Tickets referencing it keep their dangling id and
// render with an unknown type label.
func (uc *DeleteTypeUseCase) Execute(ctx context.Context, cmd DeleteTypeCommand) error {
	if cmd.TypeID == 0 {
		return errors.NewValidationError("type ID is required")
	}

	if err := uc.admin.Authorize(cmd.AdminSecret); err != nil {
		uc.logger.Warnw("rejected delete type with bad admin secret", "type_id", cmd.TypeID)
		return err
	}

	if err := uc.typeRepo.Delete(ctx, cmd.TypeID); err != nil {
		uc.logger.Errorw("failed to delete modernization type", "type_id", cmd.TypeID, "error", err)
		return err
	}

	uc.logger.Infow("modernization type deleted", "type_id", cmd.TypeID)
	return nil
}

type ListTypesUseCase struct {
	typeRepo catalog.TypeRepository
	logger   logger.Interface
}

func NewListTypesUseCase(typeRepo catalog.TypeRepository, logger logger.Interface) *ListTypesUseCase {
	return &ListTypesUseCase{typeRepo: typeRepo, logger: logger}
}

func (uc *ListTypesUseCase) Execute(ctx context.Context) ([]*catalog.ModernizationType, error) {
	types, err := uc.typeRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list modernization types", "error", err)
		return nil, errors.NewInternalError("failed to list modernization types")
	}
	return types, nil
}
