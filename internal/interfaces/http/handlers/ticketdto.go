package handlers

import (
	"modportal/internal/domain/ticket"
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02 15:04:05"
)

// TicketResponse is the JSON projection of a ticket view used by listings,
// search results and the detail page.
type TicketResponse struct {
	ID                 uint   `json:"id"`
	SiteName           string `json:"site_name"`
	TypeName           string `json:"modernization_type,omitempty"`
	RequestDate        string `json:"request_date"`
	Priority           string `json:"priority"`
	AssigneeID         uint   `json:"assignee_id"`
	AssigneeName       string `json:"assignee,omitempty"`
	AssigneeEmail      string `json:"assignee_email,omitempty"`
	CreatorEmail       string `json:"creator_email"`
	DocumentRef        string `json:"document,omitempty"`
	ExternalCaseNumber string `json:"external_case_number,omitempty"`
	ExternalCaseLink   string `json:"external_case_link,omitempty"`
	Status             string `json:"status"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

func ToTicketResponse(v *ticket.View) TicketResponse {
	return TicketResponse{
		ID:                 v.ID,
		SiteName:           v.SiteName,
		TypeName:           v.TypeName,
		RequestDate:        v.RequestDate.Format(dateLayout),
		Priority:           v.Priority,
		AssigneeID:         v.AssigneeID,
		AssigneeName:       v.AssigneeName,
		AssigneeEmail:      v.AssigneeEmail,
		CreatorEmail:       v.CreatorEmail,
		DocumentRef:        v.DocumentRef,
		ExternalCaseNumber: v.ExternalCaseNumber,
		ExternalCaseLink:   v.ExternalCaseLink,
		Status:             v.Status,
		CreatedAt:          v.CreatedAt.Format(datetimeLayout),
		UpdatedAt:          v.UpdatedAt.Format(datetimeLayout),
	}
}

// TicketDetailResponse adds the derived ageing counter shown on the detail
// page.
type TicketDetailResponse struct {
	TicketResponse
	DaysPassed int `json:"days_passed"`
}

func ToTicketDetailResponse(v *ticket.View, daysPassed int) TicketDetailResponse {
	return TicketDetailResponse{
		TicketResponse: ToTicketResponse(v),
		DaysPassed:     daysPassed,
	}
}
