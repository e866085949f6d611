package notification

import "context"

// Channel is a delivery mechanism for notifications. Send either delivers the
// whole message or returns an error; the dispatcher treats any error,
// including the channel being unavailable in the current environment, as a
// cue to fall through to the next channel.
type Channel interface {
	Name() string
	Send(ctx context.Context, msg *Message) error
}
