package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"modportal/internal/domain/notification"
)

// DesktopChannel hands the message to the operator's local mail client
// through a small bridge command. The bridge exposes two subcommands:
// "accounts" prints the configured account addresses one per line, and
// "send" reads a JSON message on stdin. When one of the client accounts
// matches the portal sender the message goes out from that account,
// otherwise the client's default account is used.
type DesktopChannel struct {
	command string
}

type desktopMessage struct {
	Account     string   `json:"account,omitempty"`
	To          []string `json:"to"`
	CC          []string `json:"cc,omitempty"`
	Subject     string   `json:"subject"`
	HTMLBody    string   `json:"html_body"`
	Attachments []string `json:"attachments,omitempty"`
}

func NewDesktopChannel(command string) *DesktopChannel {
	return &DesktopChannel{command: command}
}

func (c *DesktopChannel) Name() string {
	return "desktop"
}

func (c *DesktopChannel) Send(ctx context.Context, msg *notification.Message) error {
	if c.command == "" {
		return fmt.Errorf("desktop bridge not configured")
	}

	account := c.matchAccount(ctx, msg.From)

	payload, err := json.Marshal(desktopMessage{
		Account:     account,
		To:          msg.To,
		CC:          msg.CC,
		Subject:     msg.Subject,
		HTMLBody:    msg.HTMLBody,
		Attachments: msg.Attachments,
	})
	if err != nil {
		return fmt.Errorf("failed to encode desktop message: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.command, "send")
	cmd.Stdin = bytes.NewReader(payload)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return fmt.Errorf("desktop bridge send failed: %s: %w", detail, err)
		}
		return fmt.Errorf("desktop bridge send failed: %w", err)
	}
	return nil
}

// matchAccount returns the bridge account matching the sender address, or
// empty to let the client pick its default account.
func (c *DesktopChannel) matchAccount(ctx context.Context, from string) string {
	out, err := exec.CommandContext(ctx, c.command, "accounts").Output()
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(out), "\n") {
		account := strings.TrimSpace(line)
		if account != "" && strings.EqualFold(account, from) {
			return account
		}
	}
	return ""
}
