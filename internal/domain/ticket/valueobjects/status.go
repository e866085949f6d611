package valueobjects

import "fmt"

// TicketStatus uses the portal's persisted Spanish literals.
type TicketStatus string

const (
	StatusOpen   TicketStatus = "Abierto"
	StatusClosed TicketStatus = "Cerrado"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:   true,
	StatusClosed: true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

// CanTransitionTo enforces the single Open to Closed transition. Closed is
// terminal; there is no reopening.
func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	return ts == StatusOpen && newStatus == StatusClosed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
