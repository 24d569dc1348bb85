// Package push implements the Pub/Sub push envelope exchanged between OTP
// publishers and the mail worker.
package push

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"jobboard/internal/domain/constants"
	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AttrRequestID carries the originating request ID across the transport.
const AttrRequestID = "request_id"

const attrPurpose = "purpose"

// Envelope is the JSON body Pub/Sub posts to push subscriptions.
// Reference: https://cloud.google.com/pubsub/docs/push#receive_push
type Envelope struct {
	Message      Message `json:"message"`
	Subscription string  `json:"subscription"`
}

// Message is the pushed message; Data is the base64 encoded event.
type Message struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// Attributes returns the message attributes describing an OTP delivery event.
func Attributes(event *entity.OTPDeliveryEvent) map[string]string {
	attrs := map[string]string{
		constants.OTPDeliveryTopicAttr: constants.OTPDeliveryEventType,
		attrPurpose:                    event.Purpose.String(),
	}
	if event.RequestID != "" {
		attrs[AttrRequestID] = event.RequestID
	}

	return attrs
}

// Wrap builds the envelope Pub/Sub would push for the event.
func Wrap(event *entity.OTPDeliveryEvent, subscription string, now time.Time) (*Envelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Envelope{
		Message: Message{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  Attributes(event),
			MessageID:   uuid.NewString(),
			PublishTime: now.UTC().Format(time.RFC3339),
		},
		Subscription: subscription,
	}, nil
}

// Event decodes the OTP delivery event carried by the envelope.
func (e *Envelope) Event() (*entity.OTPDeliveryEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event entity.OTPDeliveryEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse OTP delivery event")
	}

	return &event, nil
}

// RequestID returns the request ID from the attributes, then the event.
func (e *Envelope) RequestID(event *entity.OTPDeliveryEvent) string {
	if id := e.Message.Attributes[AttrRequestID]; id != "" {
		return id
	}
	if event != nil {
		return event.RequestID
	}

	return ""
}
