// Package mail implements the delivery channels the notification dispatcher
// tries in order: a local desktop mail client bridge and a plain SMTP relay.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"modportal/internal/domain/notification"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPChannel delivers messages through a relay with gomail. An empty host
// means the relay is not configured and every send fails fast so the
// dispatcher can report the message as undelivered.
type SMTPChannel struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPChannel(config SMTPConfig) *SMTPChannel {
	return &SMTPChannel{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (c *SMTPChannel) Name() string {
	return "smtp"
}

func (c *SMTPChannel) Send(ctx context.Context, msg *notification.Message) error {
	if c.config.Host == "" {
		return fmt.Errorf("smtp relay not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	if msg.FromName != "" {
		m.SetAddressHeader("From", msg.From, msg.FromName)
	} else {
		m.SetHeader("From", msg.From)
	}
	m.SetHeader("To", msg.To...)
	if len(msg.CC) > 0 {
		m.SetHeader("Cc", msg.CC...)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)
	for _, path := range msg.Attachments {
		m.Attach(path)
	}

	// gomail has no context-aware dialer; run the send in a goroutine so a
	// dispatcher timeout is still honored.
	done := make(chan error, 1)
	go func() {
		done <- c.dialer.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}
}
