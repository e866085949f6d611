package ticket

import (
	"time"
)

// View is the flat read model served to listing, search, detail and export:
// the ticket row left-joined with its type name and assignee name/email.
// Dangling catalog references resolve to empty strings and are rendered as
// "unknown" by consumers.
type View struct {
	ID                 uint
	SiteName           string
	TypeName           string
	RequestDate        time.Time
	Priority           string
	AssigneeID         uint
	AssigneeName       string
	AssigneeEmail      string
	CreatorEmail       string
	DocumentRef        string
	ExternalCaseNumber string
	ExternalCaseLink   string
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DaysPassed returns full days elapsed since the request date.
func (v *View) DaysPassed(now time.Time) int {
	return int(now.Sub(v.RequestDate).Hours() / 24)
}
