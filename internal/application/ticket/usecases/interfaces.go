package usecases

import (
	"context"
	"io"

	"modportal/internal/domain/ticket"
)

// LifecycleNotifier sends the lifecycle emails. The boolean reports whether
// any channel delivered; failures never abort the triggering mutation.
type LifecycleNotifier interface {
	NotifyCreated(ctx context.Context, v *ticket.View) bool
	NotifyClosed(ctx context.Context, v *ticket.View) bool
}

// DocumentStore persists the uploaded engineering documents.
type DocumentStore interface {
	Save(originalName string, r io.Reader) (string, error)
	Remove(ref string) error
	Exists(ref string) bool
}

// AdminAuthorizer checks the shared admin secret before destructive
// operations.
type AdminAuthorizer interface {
	Authorize(provided string) error
}
