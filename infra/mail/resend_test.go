package mail

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/notify"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(ctx, params)
	resp, _ := args.Get(0).(*resend.SendEmailResponse)
	return resp, args.Error(1)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResend_Send(t *testing.T) {
	sender := &mockSender{}
	n := NewResendWithSender(sender, "Le Creuset <no-reply@example.com>", discard())

	sender.On("SendWithContext", mock.Anything, mock.MatchedBy(func(p *resend.SendEmailRequest) bool {
		return p.From == "Le Creuset <no-reply@example.com>" &&
			len(p.To) == 1 && p.To[0] == "client@example.com" &&
			p.Subject == "Hello"
	})).Return(&resend.SendEmailResponse{Id: "em_123"}, nil)

	res := n.Send(context.Background(), notify.Message{
		To:      []string{"client@example.com"},
		Subject: "Hello",
		HTML:    "<p>hi</p>",
	})
	assert.True(t, res.Success)
	assert.Equal(t, "em_123", res.ID)
	sender.AssertExpectations(t)
}

func TestResend_SendFailureIsReported(t *testing.T) {
	sender := &mockSender{}
	n := NewResendWithSender(sender, "from@example.com", discard())
	sender.On("SendWithContext", mock.Anything, mock.Anything).Return(nil, errors.New("rate limited"))

	res := n.Send(context.Background(), notify.Message{To: []string{"a@example.com"}})
	assert.False(t, res.Success)
	assert.Empty(t, res.ID)
}

func TestNew_SelectsBackend(t *testing.T) {
	assert.IsType(t, &Log{}, New(&config.Mail{}, discard()))
	assert.IsType(t, &Resend{}, New(&config.Mail{ResendApiKey: "re_test", From: "a@b.c"}, discard()))
}
