package ticket

import (
	"context"
	"strconv"

	vo "modportal/internal/domain/ticket/valueobjects"
)

// Filter narrows ticket views. All provided criteria are conjunctive.
// FreeText consisting only of digits matches the ticket id exactly;
// anything else is a case-sensitive substring match on the site name.
type Filter struct {
	FreeText   string
	Status     *vo.TicketStatus
	Priority   *vo.Priority
	AssigneeID *uint
	Limit      int
}

// IDQuery reports whether FreeText should be treated as an exact id lookup.
// Any all-digit string is an id query; digits beyond the id range yield id 0,
// which no stored ticket ever has.
func (f Filter) IDQuery() (uint, bool) {
	if f.FreeText == "" {
		return 0, false
	}
	for _, r := range f.FreeText {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseUint(f.FreeText, 10, strconv.IntSize)
	if err != nil {
		return 0, true
	}
	return uint(id), true
}

// Stats summarizes ticket counts for the dashboard.
type Stats struct {
	Open   int64
	Closed int64
	Total  int64
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)

	// FindViews returns joined views matching the filter, ordered by id
	// descending. The ordering is relied upon by the dashboard's last-tickets
	// list and must be total.
	FindViews(ctx context.Context, filter Filter) ([]View, error)
	GetViewByID(ctx context.Context, id uint) (*View, error)
	GetStats(ctx context.Context) (Stats, error)
}
