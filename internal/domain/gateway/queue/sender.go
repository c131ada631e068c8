package queue

import "context"

// Sender delivers a message body to a named destination (a queue or a channel).
type Sender interface {
	SendMessage(ctx context.Context, destination string, body any) error
}

// NoopSender drops every message. It is used when events are disabled.
type NoopSender struct{}

func (NoopSender) SendMessage(context.Context, string, any) error {
	return nil
}
