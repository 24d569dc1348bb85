package service

import (
	"context"

	"jobboard/internal/domain/entity"
)

// OTPPublisher hands OTP delivery events to whatever transport sends the mail.
type OTPPublisher interface {
	// Publish enqueues the event. It does not wait for the mail to be sent.
	Publish(ctx context.Context, event *entity.OTPDeliveryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// OTPDeliveryHandler consumes delivery events on the receiving side of the transport.
type OTPDeliveryHandler interface {
	Deliver(ctx context.Context, event *entity.OTPDeliveryEvent) error
}
