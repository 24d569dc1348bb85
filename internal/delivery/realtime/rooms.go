// Package realtime serves the websocket channel used for live chat.
// Connections authenticate with an explicit event and are then joined to a room keyed by the principal id.
package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"jobboard/internal/domain/service"
	"jobboard/internal/errors"

	"github.com/google/uuid"
)

// Envelope is the frame exchanged in both directions over the socket.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Rooms tracks the live connections of every authenticated principal.
type Rooms struct {
	logger *slog.Logger

	mu    sync.RWMutex
	rooms map[uuid.UUID]map[*conn]struct{}
}

var _ service.RealtimeNotifier = (*Rooms)(nil)

// NewRooms creates an empty room registry.
func NewRooms(logger *slog.Logger) *Rooms {
	return &Rooms{
		logger: logger,
		rooms:  make(map[uuid.UUID]map[*conn]struct{}),
	}
}

// EmitToUser queues the event on every connection of the user. Slow connections drop the event.
func (r *Rooms) EmitToUser(userID uuid.UUID, event string, payload any) {
	frame, err := encodeFrame(event, payload)
	if err != nil {
		r.logger.Error("Failed to encode realtime event", slog.String("event", event), slog.Any("error", err))

		return
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for c := range r.rooms[userID] {
		if !c.enqueue(frame) {
			r.logger.Warn("Dropping realtime event for slow connection",
				slog.String("event", event),
				slog.String("user_id", userID.String()),
			)
		}
	}
}

// Online reports how many connections the user has joined.
func (r *Rooms) Online(userID uuid.UUID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.rooms[userID])
}

func (r *Rooms) join(userID uuid.UUID, c *conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[userID]
	if !ok {
		room = make(map[*conn]struct{})
		r.rooms[userID] = room
	}
	room[c] = struct{}{}
}

func (r *Rooms) leave(userID uuid.UUID, c *conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[userID]
	if !ok {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(r.rooms, userID)
	}
}

func encodeFrame(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	frame, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return frame, nil
}
