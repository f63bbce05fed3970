// Package notify defines outbound email notifications.
package notify

import (
	"context"
)

// Message is a single email.
type Message struct {
	To      []string
	Subject string
	HTML    string
	Text    string
	ReplyTo string
}

// Result reports the outcome of a delivery attempt.
type Result struct {
	ID      string
	Success bool
}

// Notifier delivers messages. Send never fails the caller: delivery
// problems are logged by the implementation and reported through Result.
type Notifier interface {
	Send(ctx context.Context, msg Message) Result
}
