// Package mail renders and sends transactional mail.
package mail

import (
	"context"
	"log/slog"

	"jobboard/config"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

// smtpMailer sends mail through an SMTP relay.
type smtpMailer struct {
	cfg *config.MailConfig
}

// logMailer writes mail to the log instead of sending it. Used when no SMTP host is configured.
type logMailer struct {
	logger *slog.Logger
}

// NewMailer selects the SMTP mailer when a host is configured, the logging mailer otherwise.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		logger.Warn("Mail host not configured, outgoing mail will only be logged")

		return &logMailer{logger: logger}
	}

	return &smtpMailer{cfg: cfg.Mail}
}

// Send dials the relay and delivers a single HTML message.
func (m *smtpMailer) Send(ctx context.Context, mail *service.Mail) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return errors.Wrap(err, "invalid from address")
	}
	if err := msg.To(mail.To); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(mail.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, mail.HTML)

	opts := []gomail.Option{
		gomail.WithPort(m.cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.cfg.Username),
			gomail.WithPassword(m.cfg.Password),
		)
	}

	client, err := gomail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return errors.Wrap(err, "create smtp client")
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "send mail")
	}

	return nil
}

// Send logs the recipient and subject. The body is never logged since it carries the code.
func (m *logMailer) Send(ctx context.Context, mail *service.Mail) error {
	m.logger.InfoContext(ctx, "Mail not sent, no SMTP host configured",
		slog.String("to", mail.To),
		slog.String("subject", mail.Subject),
	)

	return nil
}
