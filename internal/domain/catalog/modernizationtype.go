// Package catalog holds the two catalog entities referenced by tickets:
// modernization types and assignees.
package catalog

import (
	"fmt"
	"strings"
)

// ModernizationType is a named category of modernization work. Names are
// unique across the catalog.
type ModernizationType struct {
	id   uint
	name string
}

func NewModernizationType(name string) (*ModernizationType, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return nil, fmt.Errorf("type name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("type name exceeds maximum length of 100 characters")
	}
	return &ModernizationType{name: name}, nil
}

func ReconstructModernizationType(id uint, name string) (*ModernizationType, error) {
	if id == 0 {
		return nil, fmt.Errorf("type ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("type name is required")
	}
	return &ModernizationType{id: id, name: name}, nil
}

func (m *ModernizationType) ID() uint {
	return m.id
}

func (m *ModernizationType) Name() string {
	return m.name
}

func (m *ModernizationType) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("type ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("type ID cannot be zero")
	}
	m.id = id
	return nil
}
