package mail

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"time"

	"jobboard/config"
	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"
)

//go:embed templates/otp.html
var templateFS embed.FS

var otpTemplate = template.Must(template.ParseFS(templateFS, "templates/otp.html"))

type otpContent struct {
	Subject     string
	Title       string
	Instruction string
}

var otpContents = map[entity.OTPPurpose]otpContent{
	entity.OTPPurposeConfirmEmail: {
		Subject:     "Confirm your email",
		Title:       "Confirm your email",
		Instruction: "Use the following code to confirm your email address:",
	},
	entity.OTPPurposeForgotPassword: {
		Subject:     "Reset your password",
		Title:       "Reset your password",
		Instruction: "Use the following code to reset your password:",
	},
}

type otpView struct {
	Title       string
	Name        string
	Instruction string
	Code        string
	ValidFor    string
}

// Dispatcher turns OTP delivery events into mail. It is the consumer side of every OTP publisher.
type Dispatcher struct {
	mailer   service.Mailer
	logger   *slog.Logger
	validFor time.Duration
}

// NewDispatcher is the constructor for Dispatcher.
func NewDispatcher(cfg *config.Config, mailer service.Mailer, logger *slog.Logger) *Dispatcher {
	validFor := 10 * time.Minute
	if cfg.OTP != nil && cfg.OTP.TTL > 0 {
		validFor = cfg.OTP.TTL
	}

	return &Dispatcher{
		mailer:   mailer,
		logger:   logger,
		validFor: validFor,
	}
}

// Deliver renders the message for the event's purpose and sends it.
func (d *Dispatcher) Deliver(ctx context.Context, event *entity.OTPDeliveryEvent) error {
	mail, err := d.render(event)
	if err != nil {
		return err
	}

	if err := d.mailer.Send(ctx, mail); err != nil {
		return err
	}

	d.logger.InfoContext(ctx, "OTP mail sent",
		slog.String("request_id", event.RequestID),
		slog.String("principal_id", event.PrincipalID.String()),
		slog.String("purpose", event.Purpose.String()),
	)

	return nil
}

func (d *Dispatcher) render(event *entity.OTPDeliveryEvent) (*service.Mail, error) {
	content, ok := otpContents[event.Purpose]
	if !ok {
		return nil, errors.Errorf("unknown otp purpose: %s", event.Purpose)
	}

	name := event.Name
	if name == "" {
		name = "there"
	}

	var body bytes.Buffer
	err := otpTemplate.Execute(&body, otpView{
		Title:       content.Title,
		Name:        name,
		Instruction: content.Instruction,
		Code:        event.Code,
		ValidFor:    d.validFor.String(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "render otp mail")
	}

	return &service.Mail{
		To:      event.Email,
		Subject: content.Subject,
		HTML:    body.String(),
	}, nil
}
