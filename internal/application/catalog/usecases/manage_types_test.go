package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modportal/internal/domain/catalog"
	"modportal/internal/shared/errors"
)

func TestAddTypeUseCase_Execute_Success(t *testing.T) {
	repo := &mockTypeRepository{}

	uc := NewAddTypeUseCase(repo, &mockAdminAuthorizer{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), AddTypeCommand{
		Name:        "Swap 4G→5G",
		AdminSecret: "admin123",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.TypeID)
	assert.Equal(t, "Swap 4G→5G", result.Name)
}

func TestAddTypeUseCase_Execute_Duplicate(t *testing.T) {
	repo := &mockTypeRepository{
		SaveFunc: func(ctx context.Context, mt *catalog.ModernizationType) error {
			return errors.NewConflictError("type already exists")
		},
	}

	uc := NewAddTypeUseCase(repo, &mockAdminAuthorizer{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddTypeCommand{Name: "Cambio AAU", AdminSecret: "admin123"})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestAddTypeUseCase_Execute_BadSecret(t *testing.T) {
	admin := &mockAdminAuthorizer{
		AuthorizeFunc: func(provided string) error {
			return errors.NewUnauthorizedError("invalid admin secret")
		},
	}

	saved := false
	repo := &mockTypeRepository{
		SaveFunc: func(ctx context.Context, mt *catalog.ModernizationType) error {
			saved = true
			return nil
		},
	}

	uc := NewAddTypeUseCase(repo, admin, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddTypeCommand{Name: "Sectorización", AdminSecret: "nope"})

	require.Error(t, err)
	assert.True(t, errors.IsUnauthorizedError(err))
	assert.False(t, saved)
}

func TestAddTypeUseCase_Execute_EmptyName(t *testing.T) {
	uc := NewAddTypeUseCase(&mockTypeRepository{}, &mockAdminAuthorizer{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), AddTypeCommand{Name: "  ", AdminSecret: "admin123"})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestDeleteTypeUseCase_Execute(t *testing.T) {
	var deletedID uint
	repo := &mockTypeRepository{
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}

	uc := NewDeleteTypeUseCase(repo, &mockAdminAuthorizer{}, &mockLogger{})
	err := uc.Execute(context.Background(), DeleteTypeCommand{TypeID: 3, AdminSecret: "admin123"})

	require.NoError(t, err)
	assert.Equal(t, uint(3), deletedID)
}

func TestListTypesUseCase_Execute(t *testing.T) {
	mt, err := catalog.ReconstructModernizationType(1, "Swap 4G→5G")
	require.NoError(t, err)

	repo := &mockTypeRepository{
		ListFunc: func(ctx context.Context) ([]*catalog.ModernizationType, error) {
			return []*catalog.ModernizationType{mt}, nil
		},
	}

	uc := NewListTypesUseCase(repo, &mockLogger{})
	types, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "Swap 4G→5G", types[0].Name())
}
