package seeds

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"modportal/internal/domain/catalog"
	"modportal/internal/infrastructure/persistence/models"
	"modportal/internal/infrastructure/repository"
)

func setupSeeder(t *testing.T) (*Seeder, catalog.TypeRepository, catalog.AssigneeRepository) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ModernizationTypeModel{}, &models.AssigneeModel{}))

	typeRepo := repository.NewTypeRepository(db)
	assigneeRepo := repository.NewAssigneeRepository(db)
	return NewSeeder(typeRepo, assigneeRepo), typeRepo, assigneeRepo
}

func TestSeeder_Seed_PopulatesEmptyCatalogs(t *testing.T) {
	seeder, typeRepo, assigneeRepo := setupSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.Seed(ctx))

	types, err := typeRepo.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, types)

	assignees, err := assigneeRepo.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, assignees)
}

func TestSeeder_Seed_LeavesExistingRowsAlone(t *testing.T) {
	seeder, typeRepo, assigneeRepo := setupSeeder(t)
	ctx := context.Background()

	custom, err := catalog.NewModernizationType("Custom Type")
	require.NoError(t, err)
	require.NoError(t, typeRepo.Save(ctx, custom))

	require.NoError(t, seeder.Seed(ctx))

	types, err := typeRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "Custom Type", types[0].Name())

	// The untouched assignee catalog still receives the defaults.
	assignees, err := assigneeRepo.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, assignees)
}

func TestSeeder_Seed_Idempotent(t *testing.T) {
	seeder, typeRepo, _ := setupSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.Seed(ctx))
	first, err := typeRepo.List(ctx)
	require.NoError(t, err)

	require.NoError(t, seeder.Seed(ctx))
	second, err := typeRepo.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, len(first), len(second))
}
