package valueobjects

import "fmt"

// Priority uses the portal's persisted Spanish literals.
type Priority string

const (
	PriorityUrgent Priority = "Urgente"
	PriorityNormal Priority = "Normal"
	PriorityLow    Priority = "Baja"
)

var validPriorities = map[Priority]bool{
	PriorityUrgent: true,
	PriorityNormal: true,
	PriorityLow:    true,
}

// Priorities lists the allowed values in display order.
func Priorities() []Priority {
	return []Priority{PriorityUrgent, PriorityNormal, PriorityLow}
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func (p Priority) IsUrgent() bool {
	return p == PriorityUrgent
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}
