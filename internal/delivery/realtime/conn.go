package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8 * 1024
	sendBufferSize = 32
)

// conn is one websocket connection. Only writePump writes to the socket.
type conn struct {
	ws   *websocket.Conn
	send chan []byte

	closeOnce   sync.Once
	closing     chan struct{}
	closeCode   int
	closeReason string
}

func newConn(ws *websocket.Conn) *conn {
	return &conn{
		ws:      ws,
		send:    make(chan []byte, sendBufferSize),
		closing: make(chan struct{}),
	}
}

// enqueue hands a frame to the writer without blocking.
func (c *conn) enqueue(frame []byte) bool {
	select {
	case <-c.closing:
		return false
	default:
	}

	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// shutdown asks the writer to flush queued frames and send a close frame.
func (c *conn) shutdown(code int, reason string) {
	c.closeOnce.Do(func() {
		c.closeCode = code
		c.closeReason = reason
		close(c.closing)
	})
}

func (c *conn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case frame := <-c.send:
			if err := c.write(websocket.TextMessage, frame); err != nil {
				// Unblocks the reader so the session can end.
				_ = c.ws.Close()

				return
			}

		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				_ = c.ws.Close()

				return
			}

		case <-c.closing:
			c.flush()
			_ = c.write(websocket.CloseMessage, websocket.FormatCloseMessage(c.closeCode, c.closeReason))

			return
		}
	}
}

func (c *conn) flush() {
	for {
		select {
		case frame := <-c.send:
			if err := c.write(websocket.TextMessage, frame); err != nil {
				return
			}
		default:
			return
		}
	}
}

func (c *conn) write(messageType int, data []byte) error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return c.ws.WriteMessage(messageType, data)
}
