// Package seeds loads the default catalog entries on first run so a fresh
// install starts with a usable type and assignee picker.
package seeds

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"modportal/internal/domain/catalog"
	"modportal/internal/shared/logger"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type seedData struct {
	ModernizationTypes []string `yaml:"modernization_types"`
	Assignees          []struct {
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
	} `yaml:"assignees"`
}

type Seeder struct {
	types     catalog.TypeRepository
	assignees catalog.AssigneeRepository
	logger    logger.Interface
}

func NewSeeder(types catalog.TypeRepository, assignees catalog.AssigneeRepository) *Seeder {
	return &Seeder{
		types:     types,
		assignees: assignees,
		logger:    logger.NewLogger().With("component", "seeds"),
	}
}

// Seed inserts the embedded defaults into empty catalog tables. Tables that
// already have rows are left untouched.
func (s *Seeder) Seed(ctx context.Context) error {
	var data seedData
	if err := yaml.Unmarshal(defaultsYAML, &data); err != nil {
		return fmt.Errorf("failed to parse seed data: %w", err)
	}

	existingTypes, err := s.types.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list modernization types: %w", err)
	}
	if len(existingTypes) == 0 {
		for _, name := range data.ModernizationTypes {
			mt, err := catalog.NewModernizationType(name)
			if err != nil {
				return fmt.Errorf("invalid seed type %q: %w", name, err)
			}
			if err := s.types.Save(ctx, mt); err != nil {
				return fmt.Errorf("failed to seed type %q: %w", name, err)
			}
		}
		s.logger.Infow("seeded modernization types", "count", len(data.ModernizationTypes))
	}

	existingAssignees, err := s.assignees.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list assignees: %w", err)
	}
	if len(existingAssignees) == 0 {
		for _, a := range data.Assignees {
			assignee, err := catalog.NewAssignee(a.Name, a.Email)
			if err != nil {
				return fmt.Errorf("invalid seed assignee %q: %w", a.Name, err)
			}
			if err := s.assignees.Upsert(ctx, assignee); err != nil {
				return fmt.Errorf("failed to seed assignee %q: %w", a.Name, err)
			}
		}
		s.logger.Infow("seeded assignees", "count", len(data.Assignees))
	}

	return nil
}
