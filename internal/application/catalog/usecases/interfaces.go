package usecases

// AdminAuthorizer checks the shared admin secret before catalog mutations.
type AdminAuthorizer interface {
	Authorize(provided string) error
}
