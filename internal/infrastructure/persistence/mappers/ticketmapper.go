package mappers

import (
	"fmt"
	"time"

	"modportal/internal/domain/ticket"
	vo "modportal/internal/domain/ticket/valueobjects"
	"modportal/internal/infrastructure/persistence/models"
)

// requestDateLayout is the persisted date format for request_date.
const requestDateLayout = "2006-01-02"

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ViewToDomain(model *models.TicketViewModel) ticket.View
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:                 t.ID(),
		SiteName:           t.SiteName(),
		TypeID:             t.TypeID(),
		RequestDate:        t.RequestDate().Format(requestDateLayout),
		Priority:           t.Priority().String(),
		AssigneeID:         t.AssigneeID(),
		CreatorEmail:       t.CreatorEmail(),
		DocumentRef:        t.DocumentRef(),
		ExternalCaseNumber: t.ExternalCaseNumber(),
		ExternalCaseLink:   t.ExternalCaseLink(),
		Status:             t.Status().String(),
		CreatedAt:          t.CreatedAt().UnixMilli(),
		UpdatedAt:          t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	requestDate, err := time.ParseInLocation(requestDateLayout, model.RequestDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid request date %q: %w", model.RequestDate, err)
	}

	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, err
	}

	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.SiteName,
		model.TypeID,
		requestDate,
		priority,
		model.AssigneeID,
		model.CreatorEmail,
		model.DocumentRef,
		model.ExternalCaseNumber,
		model.ExternalCaseLink,
		status,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) ViewToDomain(model *models.TicketViewModel) ticket.View {
	requestDate, err := time.ParseInLocation(requestDateLayout, model.RequestDate, time.Local)
	if err != nil {
		// Tolerated legacy rows keep a zero date rather than failing the listing.
		requestDate = time.Time{}
	}

	return ticket.View{
		ID:                 model.ID,
		SiteName:           model.SiteName,
		TypeName:           deref(model.TypeName),
		RequestDate:        requestDate,
		Priority:           model.Priority,
		AssigneeID:         model.AssigneeID,
		AssigneeName:       deref(model.AssigneeName),
		AssigneeEmail:      deref(model.AssigneeEmail),
		CreatorEmail:       model.CreatorEmail,
		DocumentRef:        model.DocumentRef,
		ExternalCaseNumber: deref(model.ExternalCaseNumber),
		ExternalCaseLink:   deref(model.ExternalCaseLink),
		Status:             model.Status,
		CreatedAt:          time.UnixMilli(model.CreatedAt),
		UpdatedAt:          time.UnixMilli(model.UpdatedAt),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
