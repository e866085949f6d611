// Package notification defines the message and channel contracts used by the
// lifecycle notification dispatcher.
package notification

// Message is a composed lifecycle notification ready for delivery through any
// channel: multiple recipients, optional CC, an HTML body and zero or more
// file attachments.
type Message struct {
	From        string
	FromName    string
	To          []string
	CC          []string
	Subject     string
	HTMLBody    string
	Attachments []string
}

// HasRecipients reports whether there is at least one non-empty address to
// deliver to.
func (m *Message) HasRecipients() bool {
	for _, r := range m.To {
		if r != "" {
			return true
		}
	}
	return false
}
