package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "modportal/internal/domain/ticket/valueobjects"
)

func validRequestDate() time.Time {
	return time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
}

func TestNewTicket(t *testing.T) {
	typeID := uint(2)

	tests := []struct {
		name         string
		siteName     string
		requestDate  time.Time
		priority     vo.Priority
		assigneeID   uint
		creatorEmail string
		documentRef  string
		wantErr      string
	}{
		{
			name:         "valid ticket",
			siteName:     "SITE_A",
			requestDate:  validRequestDate(),
			priority:     vo.PriorityUrgent,
			assigneeID:   1,
			creatorEmail: "ops@telecom.com.ar",
			documentRef:  "20260315_120000_plan.pdf",
		},
		{
			name:         "blank site name",
			siteName:     "   ",
			requestDate:  validRequestDate(),
			priority:     vo.PriorityNormal,
			assigneeID:   1,
			creatorEmail: "ops@telecom.com.ar",
			documentRef:  "doc.pdf",
			wantErr:      "site name is required",
		},
		{
			name:         "zero request date",
			siteName:     "SITE_A",
			priority:     vo.PriorityNormal,
			assigneeID:   1,
			creatorEmail: "ops@telecom.com.ar",
			documentRef:  "doc.pdf",
			wantErr:      "request date is required",
		},
		{
			name:         "invalid priority",
			siteName:     "SITE_A",
			requestDate:  validRequestDate(),
			priority:     vo.Priority("Alta"),
			assigneeID:   1,
			creatorEmail: "ops@telecom.com.ar",
			documentRef:  "doc.pdf",
			wantErr:      "invalid priority",
		},
		{
			name:         "missing assignee",
			siteName:     "SITE_A",
			requestDate:  validRequestDate(),
			priority:     vo.PriorityNormal,
			creatorEmail: "ops@telecom.com.ar",
			documentRef:  "doc.pdf",
			wantErr:      "assignee is required",
		},
		{
			name:        "missing creator email",
			siteName:    "SITE_A",
			requestDate: validRequestDate(),
			priority:    vo.PriorityNormal,
			assigneeID:  1,
			documentRef: "doc.pdf",
			wantErr:     "creator email is required",
		},
		{
			name:         "missing document",
			siteName:     "SITE_A",
			requestDate:  validRequestDate(),
			priority:     vo.PriorityNormal,
			assigneeID:   1,
			creatorEmail: "ops@telecom.com.ar",
			wantErr:      "document is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, err := NewTicket(tt.siteName, &typeID, tt.requestDate, tt.priority, tt.assigneeID, tt.creatorEmail, tt.documentRef)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, vo.StatusOpen, ticket.Status())
			assert.Equal(t, "SITE_A", ticket.SiteName())
			assert.Nil(t, ticket.ExternalCaseNumber())
			assert.Nil(t, ticket.ExternalCaseLink())
			assert.False(t, ticket.CreatedAt().IsZero())
			assert.Equal(t, ticket.CreatedAt(), ticket.UpdatedAt())
		})
	}
}

func TestNewTicket_TrimsFields(t *testing.T) {
	ticket, err := NewTicket("  SITE_A  ", nil, validRequestDate(), vo.PriorityLow, 3, "  ops@telecom.com.ar ", "doc.pdf")
	require.NoError(t, err)

	assert.Equal(t, "SITE_A", ticket.SiteName())
	assert.Equal(t, "ops@telecom.com.ar", ticket.CreatorEmail())
}

func TestTicket_Close(t *testing.T) {
	newOpenTicket := func(t *testing.T) *Ticket {
		ticket, err := NewTicket("SITE_A", nil, validRequestDate(), vo.PriorityNormal, 1, "ops@telecom.com.ar", "doc.pdf")
		require.NoError(t, err)
		return ticket
	}

	t.Run("records external case reference", func(t *testing.T) {
		ticket := newOpenTicket(t)
		num := "IGA-123"
		link := "https://iga.telecom.com.ar/cases/123"

		err := ticket.Close(&num, &link)

		require.NoError(t, err)
		assert.True(t, ticket.Status().IsClosed())
		require.NotNil(t, ticket.ExternalCaseNumber())
		assert.Equal(t, "IGA-123", *ticket.ExternalCaseNumber())
		require.NotNil(t, ticket.ExternalCaseLink())
		assert.Equal(t, link, *ticket.ExternalCaseLink())
	})

	t.Run("blank case fields normalize to nil", func(t *testing.T) {
		ticket := newOpenTicket(t)
		blank := "   "

		err := ticket.Close(&blank, nil)

		require.NoError(t, err)
		assert.Nil(t, ticket.ExternalCaseNumber())
		assert.Nil(t, ticket.ExternalCaseLink())
	})

	t.Run("second closure is rejected", func(t *testing.T) {
		ticket := newOpenTicket(t)
		require.NoError(t, ticket.Close(nil, nil))
		closedAt := ticket.UpdatedAt()

		err := ticket.Close(nil, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already closed")
		assert.Equal(t, closedAt, ticket.UpdatedAt())
	})
}

func TestFilter_IDQuery(t *testing.T) {
	tests := []struct {
		name     string
		freeText string
		wantID   uint
		wantOK   bool
	}{
		{name: "plain id", freeText: "42", wantID: 42, wantOK: true},
		{name: "empty", freeText: "", wantOK: false},
		{name: "site name", freeText: "SITE_A", wantOK: false},
		{name: "digits with sign", freeText: "+42", wantOK: false},
		{name: "digits among letters", freeText: "SITE42", wantOK: false},
		// Still an id query, just one that can never match.
		{name: "digits beyond id range", freeText: "99999999999999999999999", wantID: 0, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := Filter{FreeText: tt.freeText}.IDQuery()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestTicket_SetID(t *testing.T) {
	ticket, err := NewTicket("SITE_A", nil, validRequestDate(), vo.PriorityNormal, 1, "ops@telecom.com.ar", "doc.pdf")
	require.NoError(t, err)

	require.NoError(t, ticket.SetID(42))
	assert.Equal(t, uint(42), ticket.ID())

	assert.Error(t, ticket.SetID(43))
	assert.Error(t, (&Ticket{}).SetID(0))
}

func TestReconstructTicket(t *testing.T) {
	num := "IGA-9"
	ticket, err := ReconstructTicket(
		5, "SITE_B", nil, validRequestDate(), vo.PriorityUrgent, 2,
		"ops@telecom.com.ar", "doc.pdf", &num, nil, vo.StatusClosed,
		time.Now(), time.Now(),
	)

	require.NoError(t, err)
	assert.Equal(t, uint(5), ticket.ID())
	assert.True(t, ticket.Status().IsClosed())

	_, err = ReconstructTicket(
		0, "SITE_B", nil, validRequestDate(), vo.PriorityUrgent, 2,
		"ops@telecom.com.ar", "doc.pdf", nil, nil, vo.StatusOpen,
		time.Now(), time.Now(),
	)
	assert.Error(t, err)
}

func TestView_DaysPassed(t *testing.T) {
	view := &View{RequestDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
	now := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 10, view.DaysPassed(now))
	assert.Equal(t, 0, view.DaysPassed(view.RequestDate))
}
