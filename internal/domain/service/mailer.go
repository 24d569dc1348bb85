package service

import "context"

// Mail is a rendered outgoing message.
type Mail struct {
	To      string
	Subject string
	HTML    string
}

// Mailer sends rendered mail.
type Mailer interface {
	Send(ctx context.Context, mail *Mail) error
}
