package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"jobboard/config"
	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	sent []*service.Mail
	err  error
}

func (m *recordingMailer) Send(_ context.Context, mail *service.Mail) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, mail)

	return nil
}

func newTestDispatcher(mailer service.Mailer) *Dispatcher {
	cfg := &config.Config{OTP: &config.OTPConfig{TTL: 10 * time.Minute}}

	return NewDispatcher(cfg, mailer, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestDispatcher_Deliver(t *testing.T) {
	tests := []struct {
		name    string
		purpose entity.OTPPurpose
		subject string
	}{
		{name: "confirm email", purpose: entity.OTPPurposeConfirmEmail, subject: "Confirm your email"},
		{name: "forgot password", purpose: entity.OTPPurposeForgotPassword, subject: "Reset your password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &recordingMailer{}
			d := newTestDispatcher(mailer)

			err := d.Deliver(context.Background(), &entity.OTPDeliveryEvent{
				PrincipalID: uuid.New(),
				Email:       "jane@example.com",
				Name:        "Jane Doe",
				Purpose:     tt.purpose,
				Code:        "123456",
			})
			require.NoError(t, err)
			require.Len(t, mailer.sent, 1)

			sent := mailer.sent[0]
			assert.Equal(t, "jane@example.com", sent.To)
			assert.Equal(t, tt.subject, sent.Subject)
			assert.Contains(t, sent.HTML, "123456")
			assert.Contains(t, sent.HTML, "Hello Jane Doe")
			assert.Contains(t, sent.HTML, "10m0s")
		})
	}
}

func TestDispatcher_Deliver_EscapesName(t *testing.T) {
	mailer := &recordingMailer{}
	d := newTestDispatcher(mailer)

	err := d.Deliver(context.Background(), &entity.OTPDeliveryEvent{
		Email:   "x@example.com",
		Name:    "<script>alert(1)</script>",
		Purpose: entity.OTPPurposeConfirmEmail,
		Code:    "000111",
	})
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.NotContains(t, mailer.sent[0].HTML, "<script>")
}

func TestDispatcher_Deliver_UnknownPurpose(t *testing.T) {
	mailer := &recordingMailer{}
	d := newTestDispatcher(mailer)

	err := d.Deliver(context.Background(), &entity.OTPDeliveryEvent{
		Email:   "x@example.com",
		Purpose: entity.OTPPurpose("delete-account"),
		Code:    "000111",
	})
	require.Error(t, err)
	assert.Empty(t, mailer.sent)
}

func TestDispatcher_Deliver_MailerError(t *testing.T) {
	mailer := &recordingMailer{err: assert.AnError}
	d := newTestDispatcher(mailer)

	err := d.Deliver(context.Background(), &entity.OTPDeliveryEvent{
		Email:   "x@example.com",
		Purpose: entity.OTPPurposeForgotPassword,
		Code:    "000111",
	})
	require.ErrorIs(t, err, assert.AnError)
}

func TestNewMailer_FallsBackToLog(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	m := NewMailer(&config.Config{}, logger)
	_, ok := m.(*logMailer)
	assert.True(t, ok)

	m = NewMailer(&config.Config{Mail: &config.MailConfig{Host: "smtp.example.com", Port: 587}}, logger)
	_, ok = m.(*smtpMailer)
	assert.True(t, ok)

	require.NoError(t, (&logMailer{logger: logger}).Send(context.Background(), &service.Mail{To: "a@b.c"}))
}
