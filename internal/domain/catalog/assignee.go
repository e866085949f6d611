package catalog

import (
	"fmt"
	"strings"
)

// Assignee is a responsible party with an optional contact address. Names are
// unique; adding an existing name updates its email (last write wins).
type Assignee struct {
	id    uint
	name  string
	email string
}

func NewAssignee(name, email string) (*Assignee, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return nil, fmt.Errorf("assignee name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("assignee name exceeds maximum length of 100 characters")
	}
	return &Assignee{name: name, email: strings.TrimSpace(email)}, nil
}

func ReconstructAssignee(id uint, name, email string) (*Assignee, error) {
	if id == 0 {
		return nil, fmt.Errorf("assignee ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("assignee name is required")
	}
	return &Assignee{id: id, name: name, email: email}, nil
}

func (a *Assignee) ID() uint {
	return a.id
}

func (a *Assignee) Name() string {
	return a.name
}

func (a *Assignee) Email() string {
	return a.email
}

func (a *Assignee) HasEmail() bool {
	return a.email != ""
}

func (a *Assignee) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("assignee ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Assignee) UpdateEmail(email string) {
	a.email = strings.TrimSpace(email)
}
