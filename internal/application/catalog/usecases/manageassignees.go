package usecases

import (
	"context"

	"modportal/internal/domain/catalog"
	"modportal/internal/shared/errors"
	"modportal/internal/shared/logger"
)

type UpsertAssigneeCommand struct {
	Name        string
	Email       string
	AdminSecret string
}

type UpsertAssigneeResult struct {
	AssigneeID uint
	Name       string
	Email      string
}

// UpsertAssigneeUseCase adds an assignee or, when the name already exists,
// updates their mail address. Last write wins on the email.
type UpsertAssigneeUseCase struct {
	assigneeRepo catalog.AssigneeRepository
	admin        AdminAuthorizer
	logger       logger.Interface
}

func NewUpsertAssigneeUseCase(assigneeRepo catalog.AssigneeRepository, admin AdminAuthorizer, logger logger.Interface) *UpsertAssigneeUseCase {
	return &UpsertAssigneeUseCase{
		assigneeRepo: assigneeRepo,
		admin:        admin,
		logger:       logger,
	}
}

func (uc *UpsertAssigneeUseCase) Execute(ctx context.Context, cmd UpsertAssigneeCommand) (*UpsertAssigneeResult, error) {
	if err := uc.admin.Authorize(cmd.AdminSecret); err != nil {
		uc.logger.Warnw("rejected upsert assignee with bad admin secret")
		return nil, err
	}

	assignee, err := catalog.NewAssignee(cmd.Name, cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.assigneeRepo.Upsert(ctx, assignee); err != nil {
		uc.logger.Errorw("failed to upsert assignee", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("assignee upserted", "assignee_id", assignee.ID(), "name", assignee.Name())

	return &UpsertAssigneeResult{
		AssigneeID: assignee.ID(),
		Name:       assignee.Name(),
		Email:      assignee.Email(),
	}, nil
}

type DeleteAssigneeCommand struct {
	AssigneeID  uint
	AdminSecret string
}

type DeleteAssigneeUseCase struct {
	assigneeRepo catalog.AssigneeRepository
	admin        AdminAuthorizer
	logger       logger.Interface
}

func NewDeleteAssigneeUseCase(assigneeRepo catalog.AssigneeRepository, admin AdminAuthorizer, logger logger.Interface) *DeleteAssigneeUseCase {
	return &DeleteAssigneeUseCase{
		assigneeRepo: assigneeRepo,
		admin:        admin,
		logger:       logger,
	}
}

func (uc *DeleteAssigneeUseCase) Execute(ctx context.Context, cmd DeleteAssigneeCommand) error {
	if cmd.AssigneeID == 0 {
		return errors.NewValidationError("assignee ID is required")
	}

	if err := uc.admin.Authorize(cmd.AdminSecret); err != nil {
		uc.logger.Warnw("rejected delete assignee with bad admin secret", "assignee_id", cmd.AssigneeID)
		return err
	}

	if err := uc.assigneeRepo.Delete(ctx, cmd.AssigneeID); err != nil {
		uc.logger.Errorw("failed to delete assignee", "assignee_id", cmd.AssigneeID, "error", err)
		return err
	}

	uc.logger.Infow("assignee deleted", "assignee_id", cmd.AssigneeID)
	return nil
}

type ListAssigneesUseCase struct {
	assigneeRepo catalog.AssigneeRepository
	logger       logger.Interface
}

func NewListAssigneesUseCase(assigneeRepo catalog.AssigneeRepository, logger logger.Interface) *ListAssigneesUseCase {
	return &ListAssigneesUseCase{assigneeRepo: assigneeRepo, logger: logger}
}

func (uc *ListAssigneesUseCase) Execute(ctx context.Context) ([]*catalog.Assignee, error) {
	assignees, err := uc.assigneeRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list assignees", "error", err)
		return nil, errors.NewInternalError("failed to list assignees")
	}
	return assignees, nil
}
