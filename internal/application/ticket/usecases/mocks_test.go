package usecases

import (
	"context"
	"io"

	"modportal/internal/domain/catalog"
	"modportal/internal/domain/ticket"
	"modportal/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc        func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc      func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc      func(ctx context.Context, id uint) error
	GetByIDFunc     func(ctx context.Context, id uint) (*ticket.Ticket, error)
	FindViewsFunc   func(ctx context.Context, filter ticket.Filter) ([]ticket.View, error)
	GetViewByIDFunc func(ctx context.Context, id uint) (*ticket.View, error)
	GetStatsFunc    func(ctx context.Context) (ticket.Stats, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	if t.ID() == 0 {
		t.SetID(1)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindViews(ctx context.Context, filter ticket.Filter) ([]ticket.View, error) {
	if m.FindViewsFunc != nil {
		return m.FindViewsFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetViewByID(ctx context.Context, id uint) (*ticket.View, error) {
	if m.GetViewByIDFunc != nil {
		return m.GetViewByIDFunc(ctx, id)
	}
	return &ticket.View{ID: id}, nil
}

func (m *mockTicketRepository) GetStats(ctx context.Context) (ticket.Stats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx)
	}
	return ticket.Stats{}, nil
}

type mockTypeRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*catalog.ModernizationType, error)
}

func (m *mockTypeRepository) Save(ctx context.Context, t *catalog.ModernizationType) error {
	return nil
}

func (m *mockTypeRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockTypeRepository) GetByID(ctx context.Context, id uint) (*catalog.ModernizationType, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return catalog.ReconstructModernizationType(id, "Swap 4G→5G")
}

func (m *mockTypeRepository) List(ctx context.Context) ([]*catalog.ModernizationType, error) {
	return nil, nil
}

type mockAssigneeRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*catalog.Assignee, error)
}

func (m *mockAssigneeRepository) Upsert(ctx context.Context, a *catalog.Assignee) error {
	return nil
}

func (m *mockAssigneeRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockAssigneeRepository) GetByID(ctx context.Context, id uint) (*catalog.Assignee, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return catalog.ReconstructAssignee(id, "Andres Martinez", "amartinez@telecom.com.ar")
}

func (m *mockAssigneeRepository) List(ctx context.Context) ([]*catalog.Assignee, error) {
	return nil, nil
}

type mockNotifier struct {
	NotifyCreatedFunc func(ctx context.Context, v *ticket.View) bool
	NotifyClosedFunc  func(ctx context.Context, v *ticket.View) bool
	createdCalls      int
	closedCalls       int
}

func (m *mockNotifier) NotifyCreated(ctx context.Context, v *ticket.View) bool {
	m.createdCalls++
	if m.NotifyCreatedFunc != nil {
		return m.NotifyCreatedFunc(ctx, v)
	}
	return true
}

func (m *mockNotifier) NotifyClosed(ctx context.Context, v *ticket.View) bool {
	m.closedCalls++
	if m.NotifyClosedFunc != nil {
		return m.NotifyClosedFunc(ctx, v)
	}
	return true
}

type mockDocumentStore struct {
	SaveFunc   func(originalName string, r io.Reader) (string, error)
	RemoveFunc func(ref string) error
	ExistsFunc func(ref string) bool
	removed    []string
}

func (m *mockDocumentStore) Save(originalName string, r io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(originalName, r)
	}
	return "20260101_000000_" + originalName, nil
}

func (m *mockDocumentStore) Remove(ref string) error {
	m.removed = append(m.removed, ref)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ref)
	}
	return nil
}

func (m *mockDocumentStore) Exists(ref string) bool {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ref)
	}
	return true
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

func (m *mockLogger) Debug(msg string, args ...any)  {}
func (m *mockLogger) Info(msg string, args ...any)   {}
func (m *mockLogger) Warn(msg string, args ...any)   {}
func (m *mockLogger) Error(msg string, args ...any)  {}
func (m *mockLogger) Fatal(msg string, args ...any)  {}
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) With(args ...any) logger.Interface  { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
