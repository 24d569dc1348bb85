// Package constants holds identifiers shared between configuration and wiring.
package constants

// Pub/Sub providers selectable through pubsub.provider.
const (
	PubSubProviderChannel = "channel"
	PubSubProviderLocal   = "local"
	PubSubProviderGoogle  = "google"
)

// DefaultOTPQueueSize is the buffer of the in-process channel provider.
const DefaultOTPQueueSize = 128

// OTPDeliveryTopicAttr is the Pub/Sub attribute naming the event type.
const OTPDeliveryTopicAttr = "event_type"

// OTPDeliveryEventType tags OTP delivery messages.
const OTPDeliveryEventType = "otp_delivery"
