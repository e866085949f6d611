// Package notification composes and dispatches the ticket lifecycle emails.
package notification

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"modportal/internal/domain/notification"
	"modportal/internal/domain/ticket"
	"modportal/internal/shared/config"
)

const (
	humanDateLayout = "02/01/2006"
	notInformed     = "No informado"
	emptyField      = "—"
)

// Composer renders lifecycle notifications. Ticket fields come from operator
// input, so every interpolated value is sanitized before it lands in HTML.
type Composer struct {
	cfg       *config.MailConfig
	baseURL   string
	sanitizer *bluemonday.Policy
}

func NewComposer(cfg *config.MailConfig, baseURL string) *Composer {
	return &Composer{
		cfg:       cfg,
		baseURL:   strings.TrimRight(baseURL, "/"),
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// ComposeCreated builds the creation notice sent to the creator and, when it
// has a mail address on file, the assignee.
func (c *Composer) ComposeCreated(v *ticket.View, documentPath string) *notification.Message {
	to := []string{v.CreatorEmail}
	if v.AssigneeEmail != "" {
		to = append(to, v.AssigneeEmail)
	}

	var attachments []string
	if c.cfg.AttachOnCreate && documentPath != "" {
		attachments = append(attachments, documentPath)
	}

	body := fmt.Sprintf(`<h3>Se creó un ticket de ingeniería</h3>
<p><b>Ticket:</b> #%d<br>
<b>Sitio:</b> %s<br>
<b>Tipo:</b> %s<br>
<b>Prioridad:</b> %s<br>
<b>Asignado a:</b> %s<br>
<b>Fecha solicitud:</b> %s<br>
<b>Creado por:</b> %s</p>
<p><a href="%s">Ver detalles del ticket</a></p>`,
		v.ID,
		c.clean(v.SiteName),
		c.cleanOr(v.TypeName, emptyField),
		c.clean(v.Priority),
		c.cleanOr(v.AssigneeName, emptyField),
		v.RequestDate.Format(humanDateLayout),
		c.clean(v.CreatorEmail),
		c.ticketURL(v.ID),
	)

	return &notification.Message{
		From:        c.cfg.FromAddress,
		FromName:    c.cfg.FromName,
		To:          to,
		Subject:     fmt.Sprintf("[Portal Ingeniería] Nuevo Ticket #%d — %s", v.ID, v.SiteName),
		HTMLBody:    body,
		Attachments: attachments,
	}
}

// ComposeClosed builds the closure notice. The configured distribution list
// goes on CC and the stored document is attached only when it still exists on
// disk, which is the caller's check to make.
func (c *Composer) ComposeClosed(v *ticket.View, documentPath string) *notification.Message {
	to := []string{v.CreatorEmail}
	if v.AssigneeEmail != "" {
		to = append(to, v.AssigneeEmail)
	}

	var attachments []string
	if c.cfg.AttachOnClose && documentPath != "" {
		attachments = append(attachments, documentPath)
	}

	system := c.cfg.ExternalSystemName

	caseNumber := notInformed
	if v.ExternalCaseNumber != "" {
		caseNumber = c.clean(v.ExternalCaseNumber)
	}
	caseLink := notInformed
	if v.ExternalCaseLink != "" {
		caseLink = fmt.Sprintf(`<a href="%s">Abrir link</a>`, c.clean(v.ExternalCaseLink))
	}

	body := fmt.Sprintf(`<h3>El ticket fue cerrado (Completado)</h3>
<p><b>Ticket:</b> #%d<br>
<b>Sitio:</b> %s<br>
<b>Asignado a:</b> %s<br>
<b>N° Caso %s:</b> %s<br>
<b>Link %s:</b> %s</p>
<p><a href="%s">Ver detalles del ticket</a></p>`,
		v.ID,
		c.clean(v.SiteName),
		c.cleanOr(v.AssigneeName, emptyField),
		system, caseNumber,
		system, caseLink,
		c.ticketURL(v.ID),
	)

	return &notification.Message{
		From:        c.cfg.FromAddress,
		FromName:    c.cfg.FromName,
		To:          to,
		CC:          c.cfg.CCOnCloseList(),
		Subject:     fmt.Sprintf("[Portal Ingeniería] Ticket #%d CERRADO — %s", v.ID, v.SiteName),
		HTMLBody:    body,
		Attachments: attachments,
	}
}

func (c *Composer) ticketURL(id uint) string {
	return fmt.Sprintf("%s/tickets/%d", c.baseURL, id)
}

func (c *Composer) clean(s string) string {
	return c.sanitizer.Sanitize(s)
}

func (c *Composer) cleanOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return c.clean(s)
}
