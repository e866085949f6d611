package catalog

import "context"

type TypeRepository interface {
	// Save inserts a new type; a duplicate name surfaces as a conflict error.
	Save(ctx context.Context, t *ModernizationType) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*ModernizationType, error)
	// List returns all types ordered by name.
	List(ctx context.Context) ([]*ModernizationType, error)
}

type AssigneeRepository interface {
	// Upsert inserts by unique name, updating the email on collision.
	Upsert(ctx context.Context, a *Assignee) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Assignee, error)
	// List returns all assignees ordered by name.
	List(ctx context.Context) ([]*Assignee, error)
}
