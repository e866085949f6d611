package notification

import (
	"context"
	"time"

	"modportal/internal/domain/notification"
	"modportal/internal/shared/logger"
)

// Result reports the outcome of a dispatch attempt. Delivery failures never
// abort the ticket mutation that triggered them; callers surface the outcome
// as a warning instead.
type Result struct {
	Delivered bool
	Channel   string
}

// Dispatcher tries each configured channel in order and stops at the first
// success. Every attempt gets its own timeout so a hung channel cannot stall
// the request indefinitely.
type Dispatcher struct {
	channels    []notification.Channel
	sendTimeout time.Duration
	logger      logger.Interface
}

func NewDispatcher(channels []notification.Channel, sendTimeout time.Duration) *Dispatcher {
	return &Dispatcher{
		channels:    channels,
		sendTimeout: sendTimeout,
		logger:      logger.NewLogger().With("component", "notification.dispatcher"),
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, msg *notification.Message) Result {
	if !msg.HasRecipients() {
		d.logger.Warnw("skipping notification without recipients", "subject", msg.Subject)
		return Result{}
	}

	for _, ch := range d.channels {
		err := d.trySend(ctx, ch, msg)
		if err == nil {
			d.logger.Infow("notification delivered",
				"channel", ch.Name(),
				"subject", msg.Subject,
				"recipients", len(msg.To))
			return Result{Delivered: true, Channel: ch.Name()}
		}

		d.logger.Warnw("notification channel failed",
			"channel", ch.Name(),
			"subject", msg.Subject,
			"error", err)
	}

	d.logger.Warnw("notification undelivered on all channels", "subject", msg.Subject)
	return Result{}
}

func (d *Dispatcher) trySend(ctx context.Context, ch notification.Channel, msg *notification.Message) error {
	if d.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.sendTimeout)
		defer cancel()
	}
	return ch.Send(ctx, msg)
}
