package service

import "github.com/google/uuid"

// RealtimeNotifier pushes events to the live connections of a user.
type RealtimeNotifier interface {
	// EmitToUser delivers the event to every connection joined to the user's room. Offline users are skipped.
	EmitToUser(userID uuid.UUID, event string, payload any)
}
