package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/service"

	"github.com/pkg/errors"
)

const channelDeliveryTimeout = 30 * time.Second

// ErrQueueFull is returned when the in-process queue cannot take another event.
var ErrQueueFull = errors.New("otp delivery queue is full")

// ErrPublisherClosed is returned for events published after Close.
var ErrPublisherClosed = errors.New("otp publisher is closed")

// ChannelPublisher is an in-process queue drained by a single consumer goroutine.
type ChannelPublisher struct {
	queue   chan *entity.OTPDeliveryEvent
	handler service.OTPDeliveryHandler
	logger  *slog.Logger

	mu        sync.RWMutex
	closed    bool
	started   bool
	startOnce sync.Once
	done      chan struct{}
}

// NewChannelPublisher creates the queue. Start must be called before events are consumed.
func NewChannelPublisher(size int, handler service.OTPDeliveryHandler, logger *slog.Logger) *ChannelPublisher {
	return &ChannelPublisher{
		queue:   make(chan *entity.OTPDeliveryEvent, size),
		handler: handler,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// Publish enqueues the event without blocking.
func (p *ChannelPublisher) Publish(_ context.Context, event *entity.OTPDeliveryEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return errors.WithStack(ErrPublisherClosed)
	}

	select {
	case p.queue <- event:
		return nil
	default:
		return errors.WithStack(ErrQueueFull)
	}
}

// Start launches the consumer goroutine. Calling it more than once has no effect.
func (p *ChannelPublisher) Start() {
	p.startOnce.Do(func() {
		p.mu.Lock()
		p.started = true
		p.mu.Unlock()

		go p.consume()
	})
}

func (p *ChannelPublisher) consume() {
	defer close(p.done)

	for event := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), channelDeliveryTimeout)
		if err := p.handler.Deliver(ctx, event); err != nil {
			p.logger.Error("[ChannelPubSub] OTP delivery failed",
				slog.String("request_id", event.RequestID),
				slog.String("principal_id", event.PrincipalID.String()),
				slog.String("purpose", event.Purpose.String()),
				slog.Any("error", err),
			)
		}
		cancel()
	}
}

// Close stops accepting events and waits for the queued ones to be delivered.
func (p *ChannelPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return nil
	}
	p.closed = true
	close(p.queue)
	started := p.started
	p.mu.Unlock()

	if !started {
		return nil
	}

	select {
	case <-p.done:
	case <-time.After(channelDeliveryTimeout):
		p.logger.Warn("[ChannelPubSub] Timed out draining OTP delivery queue")
	}

	return nil
}
