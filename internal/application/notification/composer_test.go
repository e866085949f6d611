package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modportal/internal/domain/ticket"
	"modportal/internal/shared/config"
)

func testMailConfig() *config.MailConfig {
	return &config.MailConfig{
		FromAddress:        "noreply@telecom.com.ar",
		FromName:           "Portal Ingeniería",
		CCOnClose:          "iga-notify@telecom.com.ar",
		ExternalSystemName: "IGA",
		AttachOnCreate:     true,
		AttachOnClose:      true,
	}
}

func testView() *ticket.View {
	return &ticket.View{
		ID:            42,
		SiteName:      "SITE_A",
		TypeName:      "Swap 4G→5G",
		RequestDate:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Priority:      "Urgente",
		AssigneeName:  "Andres Martinez",
		AssigneeEmail: "andres.martinez@telecom.com.ar",
		CreatorEmail:  "creator@telecom.com.ar",
		Status:        "Abierto",
	}
}

func TestComposer_ComposeCreated(t *testing.T) {
	c := NewComposer(testMailConfig(), "http://portal.local/")

	msg := c.ComposeCreated(testView(), "/data/uploads/20260315_101500_plan.pdf")

	assert.Equal(t, "noreply@telecom.com.ar", msg.From)
	assert.Equal(t, []string{"creator@telecom.com.ar", "andres.martinez@telecom.com.ar"}, msg.To)
	assert.Equal(t, "[Portal Ingeniería] Nuevo Ticket #42 — SITE_A", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "SITE_A")
	assert.Contains(t, msg.HTMLBody, "15/03/2026")
	assert.Contains(t, msg.HTMLBody, "http://portal.local/tickets/42")
	assert.Equal(t, []string{"/data/uploads/20260315_101500_plan.pdf"}, msg.Attachments)
}

func TestComposer_ComposeCreated_NoAssigneeEmail(t *testing.T) {
	c := NewComposer(testMailConfig(), "http://portal.local")

	v := testView()
	v.AssigneeEmail = ""
	msg := c.ComposeCreated(v, "")

	assert.Equal(t, []string{"creator@telecom.com.ar"}, msg.To)
	assert.Empty(t, msg.Attachments)
}

func TestComposer_ComposeCreated_AttachDisabled(t *testing.T) {
	cfg := testMailConfig()
	cfg.AttachOnCreate = false
	c := NewComposer(cfg, "http://portal.local")

	msg := c.ComposeCreated(testView(), "/data/uploads/doc.pdf")

	assert.Empty(t, msg.Attachments)
}

func TestComposer_ComposeClosed(t *testing.T) {
	c := NewComposer(testMailConfig(), "http://portal.local")

	v := testView()
	v.Status = "Cerrado"
	v.ExternalCaseNumber = "CASE-1"
	v.ExternalCaseLink = "http://iga.local/case/1"
	msg := c.ComposeClosed(v, "/data/uploads/doc.pdf")

	assert.Equal(t, "[Portal Ingeniería] Ticket #42 CERRADO — SITE_A", msg.Subject)
	assert.Equal(t, []string{"iga-notify@telecom.com.ar"}, msg.CC)
	assert.Contains(t, msg.HTMLBody, "CASE-1")
	assert.Contains(t, msg.HTMLBody, "N° Caso IGA")
	assert.Contains(t, msg.HTMLBody, `http://iga.local/case/1`)
	assert.Equal(t, []string{"/data/uploads/doc.pdf"}, msg.Attachments)
}

func TestComposer_ComposeClosed_MissingCaseFields(t *testing.T) {
	c := NewComposer(testMailConfig(), "http://portal.local")

	v := testView()
	v.Status = "Cerrado"
	msg := c.ComposeClosed(v, "")

	require.Contains(t, msg.HTMLBody, "No informado")
	assert.NotContains(t, msg.HTMLBody, "Abrir link")
	assert.Empty(t, msg.Attachments)
}

func TestComposer_SanitizesOperatorInput(t *testing.T) {
	c := NewComposer(testMailConfig(), "http://portal.local")

	v := testView()
	v.SiteName = `SITE_B<script>alert(1)</script>`
	msg := c.ComposeCreated(v, "")

	assert.NotContains(t, msg.HTMLBody, "<script>")
	assert.Contains(t, msg.HTMLBody, "SITE_B")
}
