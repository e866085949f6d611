package notification

import (
	"context"

	"modportal/internal/domain/ticket"
)

// DocumentResolver resolves stored document references to filesystem paths.
type DocumentResolver interface {
	Path(ref string) (string, error)
	Exists(ref string) bool
}

// Service glues the composer and the dispatcher behind the interface the
// ticket use cases depend on.
type Service struct {
	composer   *Composer
	dispatcher *Dispatcher
	documents  DocumentResolver
}

func NewService(composer *Composer, dispatcher *Dispatcher, documents DocumentResolver) *Service {
	return &Service{
		composer:   composer,
		dispatcher: dispatcher,
		documents:  documents,
	}
}

func (s *Service) NotifyCreated(ctx context.Context, v *ticket.View) bool {
	msg := s.composer.ComposeCreated(v, s.documentPath(v.DocumentRef))
	return s.dispatcher.Dispatch(ctx, msg).Delivered
}

// NotifyClosed attaches the stored document only when it is still present on
// disk; closures of old tickets whose files were pruned go out without it.
func (s *Service) NotifyClosed(ctx context.Context, v *ticket.View) bool {
	msg := s.composer.ComposeClosed(v, s.documentPath(v.DocumentRef))
	return s.dispatcher.Dispatch(ctx, msg).Delivered
}

func (s *Service) documentPath(ref string) string {
	if ref == "" || !s.documents.Exists(ref) {
		return ""
	}
	path, err := s.documents.Path(ref)
	if err != nil {
		return ""
	}
	return path
}
