package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modportal/internal/domain/ticket"
	"modportal/internal/shared/errors"
)

func TestDeleteTicketUseCase_Execute_Success(t *testing.T) {
	existing := openTestTicket(t, 42)

	var deletedID uint
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}
	docs := &mockDocumentStore{}

	uc := NewDeleteTicketUseCase(repo, docs, &mockAdminAuthorizer{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), DeleteTicketCommand{
		TicketID:    42,
		AdminSecret: "admin123",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), deletedID)
	assert.True(t, result.DocumentRemoved)
	assert.Equal(t, []string{"20260315_101500_plan.pdf"}, docs.removed)
}

func TestDeleteTicketUseCase_Execute_BadSecret(t *testing.T) {
	repo := &mockTicketRepository{}
	admin := &mockAdminAuthorizer{
		AuthorizeFunc: func(provided string) error {
			return errors.NewUnauthorizedError("invalid admin secret")
		},
	}

	uc := NewDeleteTicketUseCase(repo, &mockDocumentStore{}, admin, &mockLogger{})
	_, err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 42, AdminSecret: "nope"})

	require.Error(t, err)
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestDeleteTicketUseCase_Execute_NotFound(t *testing.T) {
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("missing")
		},
	}

	uc := NewDeleteTicketUseCase(repo, &mockDocumentStore{}, &mockAdminAuthorizer{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 99, AdminSecret: "admin123"})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteTicketUseCase_Execute_FileRemovalFailureIsNotFatal(t *testing.T) {
	existing := openTestTicket(t, 42)

	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	docs := &mockDocumentStore{
		RemoveFunc: func(ref string) error {
			return errors.NewInternalError("disk gone")
		},
	}

	uc := NewDeleteTicketUseCase(repo, docs, &mockAdminAuthorizer{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 42, AdminSecret: "admin123"})

	require.NoError(t, err)
	assert.False(t, result.DocumentRemoved)
}
