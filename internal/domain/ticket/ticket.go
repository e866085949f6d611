package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "modportal/internal/domain/ticket/valueobjects"
)

// Ticket is a modernization work order for a telecom site. Status starts at
// Abierto and transitions exactly once to Cerrado; timestamps are owned by the
// entity, never by callers.
type Ticket struct {
	id                 uint
	siteName           string
	typeID             *uint
	requestDate        time.Time
	priority           vo.Priority
	assigneeID         uint
	creatorEmail       string
	documentRef        string
	externalCaseNumber *string
	externalCaseLink   *string
	status             vo.TicketStatus
	createdAt          time.Time
	updatedAt          time.Time
}

func NewTicket(
	siteName string,
	typeID *uint,
	requestDate time.Time,
	priority vo.Priority,
	assigneeID uint,
	creatorEmail string,
	documentRef string,
) (*Ticket, error) {
	if len(strings.TrimSpace(siteName)) == 0 {
		return nil, fmt.Errorf("site name is required")
	}
	if requestDate.IsZero() {
		return nil, fmt.Errorf("request date is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if assigneeID == 0 {
		return nil, fmt.Errorf("assignee is required")
	}
	if len(strings.TrimSpace(creatorEmail)) == 0 {
		return nil, fmt.Errorf("creator email is required")
	}
	if len(documentRef) == 0 {
		return nil, fmt.Errorf("document is required")
	}

	now := time.Now()
	return &Ticket{
		siteName:     strings.TrimSpace(siteName),
		typeID:       typeID,
		requestDate:  requestDate,
		priority:     priority,
		assigneeID:   assigneeID,
		creatorEmail: strings.TrimSpace(creatorEmail),
		documentRef:  documentRef,
		status:       vo.StatusOpen,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructTicket(
	id uint,
	siteName string,
	typeID *uint,
	requestDate time.Time,
	priority vo.Priority,
	assigneeID uint,
	creatorEmail string,
	documentRef string,
	externalCaseNumber *string,
	externalCaseLink *string,
	status vo.TicketStatus,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(siteName) == 0 {
		return nil, fmt.Errorf("site name is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:                 id,
		siteName:           siteName,
		typeID:             typeID,
		requestDate:        requestDate,
		priority:           priority,
		assigneeID:         assigneeID,
		creatorEmail:       creatorEmail,
		documentRef:        documentRef,
		externalCaseNumber: externalCaseNumber,
		externalCaseLink:   externalCaseLink,
		status:             status,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) SiteName() string {
	return t.siteName
}

func (t *Ticket) TypeID() *uint {
	return t.typeID
}

func (t *Ticket) RequestDate() time.Time {
	return t.requestDate
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) AssigneeID() uint {
	return t.assigneeID
}

func (t *Ticket) CreatorEmail() string {
	return t.creatorEmail
}

func (t *Ticket) DocumentRef() string {
	return t.documentRef
}

func (t *Ticket) ExternalCaseNumber() *string {
	return t.externalCaseNumber
}

func (t *Ticket) ExternalCaseLink() *string {
	return t.externalCaseLink
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Close records the terminal transition and the external case reference.
// The external case fields are writable only through this transition; a
// closed ticket rejects a second closure.
func (t *Ticket) Close(externalCaseNumber, externalCaseLink *string) error {
	if t.status.IsClosed() {
		return fmt.Errorf("ticket is already closed")
	}
	if !t.status.CanTransitionTo(vo.StatusClosed) {
		return fmt.Errorf("cannot close ticket with status %s", t.status)
	}

	t.status = vo.StatusClosed
	t.externalCaseNumber = normalize(externalCaseNumber)
	t.externalCaseLink = normalize(externalCaseLink)
	t.updatedAt = time.Now()

	return nil
}

func normalize(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
