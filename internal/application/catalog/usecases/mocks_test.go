package usecases

import (
	"context"

	"modportal/internal/domain/catalog"
	"modportal/internal/shared/logger"
)

type mockTypeRepository struct {
	SaveFunc    func(ctx context.Context, t *catalog.ModernizationType) error
	DeleteFunc  func(ctx context.Context, id uint) error
	GetByIDFunc func(ctx context.Context, id uint) (*catalog.ModernizationType, error)
	ListFunc    func(ctx context.Context) ([]*catalog.ModernizationType, error)
}

func (m *mockTypeRepository) Save(ctx context.Context, t *catalog.ModernizationType) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	if t.ID() == 0 {
		t.SetID(1)
	}
	return nil
}

func (m *mockTypeRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTypeRepository) GetByID(ctx context.Context, id uint) (*catalog.ModernizationType, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTypeRepository) List(ctx context.Context) ([]*catalog.ModernizationType, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockAssigneeRepository struct {
	UpsertFunc  func(ctx context.Context, a *catalog.Assignee) error
	DeleteFunc  func(ctx context.Context, id uint) error
	GetByIDFunc func(ctx context.Context, id uint) (*catalog.Assignee, error)
	ListFunc    func(ctx context.Context) ([]*catalog.Assignee, error)
}

func (m *mockAssigneeRepository) Upsert(ctx context.Context, a *catalog.Assignee) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, a)
	}
	if a.ID() == 0 {
		a.SetID(1)
	}
	return nil
}

func (m *mockAssigneeRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAssigneeRepository) GetByID(ctx context.Context, id uint) (*catalog.Assignee, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAssigneeRepository) List(ctx context.Context) ([]*catalog.Assignee, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockAdminAuthorizer struct {
	AuthorizeFunc func(provided string) error
}

func (m *mockAdminAuthorizer) Authorize(provided string) error {
	if m.AuthorizeFunc != nil {
		return m.AuthorizeFunc(provided)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)      {}
func (m *mockLogger) Info(msg string, args ...any)       {}
func (m *mockLogger) Warn(msg string, args ...any)       {}
func (m *mockLogger) Error(msg string, args ...any)      {}
func (m *mockLogger) Fatal(msg string, args ...any)      {}
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) With(args ...any) logger.Interface  { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
