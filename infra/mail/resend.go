// Package mail delivers notifications through Resend, or only logs them
// when no API key is configured.
package mail

import (
	"context"
	"log/slog"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/notify"
	"github.com/resend/resend-go/v2"
)

// EmailSender is the subset of the Resend client used for delivery.
type EmailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Resend sends email through the Resend API.
type Resend struct {
	emails EmailSender
	from   string
	logger *slog.Logger
}

// NewResend builds a notifier backed by the Resend API.
func NewResend(apiKey, from string, logger *slog.Logger) *Resend {
	client := resend.NewClient(apiKey)
	return NewResendWithSender(client.Emails, from, logger)
}

// NewResendWithSender wraps an existing sender.
func NewResendWithSender(emails EmailSender, from string, logger *slog.Logger) *Resend {
	return &Resend{emails: emails, from: from, logger: logger}
}

func (r *Resend) Send(ctx context.Context, msg notify.Message) notify.Result {
	logger := r.logger.With("to", msg.To, "subject", msg.Subject)
	sent, err := r.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    r.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	})
	if err != nil {
		logger.Error("Failed to send email", "error", err)
		return notify.Result{}
	}
	logger.Info("Email sent", "id", sent.Id)
	return notify.Result{ID: sent.Id, Success: true}
}

// Log writes messages to the logger instead of delivering them.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Send(_ context.Context, msg notify.Message) notify.Result {
	l.logger.Info("Email not delivered, no mail provider configured",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return notify.Result{ID: "log", Success: true}
}

// New picks Resend when an API key is configured and the log notifier
// otherwise.
func New(cfg *config.Mail, logger *slog.Logger) notify.Notifier {
	if cfg == nil || cfg.ResendApiKey == "" {
		logger.Warn("MAIL_RESEND_API_KEY is not set, emails will only be logged")
		return NewLog(logger)
	}
	return NewResend(cfg.ResendApiKey, cfg.From, logger)
}

var (
	_ notify.Notifier = (*Resend)(nil)
	_ notify.Notifier = (*Log)(nil)
)
