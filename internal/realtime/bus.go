// Package realtime fans entity-change events out to every connected
// WebSocket client. Publishing is decoupled from delivery: services drop
// events onto a buffered bus and return immediately, a single consumer
// goroutine forwards them to the hub, and per-client writer goroutines
// absorb slow sockets. Delivery is fire-and-forget; there is no replay.
package realtime

import (
	"go.uber.org/zap"

	"github.com/noah-isme/walkin-drive-api/internal/models"
)

// Stats receives realtime lifecycle notifications. The metrics service
// implements it; NopStats is used when metrics are off.
type Stats interface {
	ClientConnected()
	ClientDisconnected()
	EventBroadcast()
	EventDropped()
}

// NopStats discards all notifications.
type NopStats struct{}

func (NopStats) ClientConnected()    {}
func (NopStats) ClientDisconnected() {}
func (NopStats) EventBroadcast()     {}
func (NopStats) EventDropped()       {}

// Bus is the buffered event channel between request handling and fan-out.
type Bus struct {
	ch     chan models.Event
	logger *zap.Logger
	stats  Stats
	done   chan struct{}
}

// NewBus creates a bus with the given buffer size. Size 0 falls back to a
// small default so Publish stays non-blocking under light load.
func NewBus(size int, logger *zap.Logger, stats Stats) *Bus {
	if size <= 0 {
		size = 64
	}
	if stats == nil {
		stats = NopStats{}
	}
	return &Bus{
		ch:     make(chan models.Event, size),
		logger: logger,
		stats:  stats,
		done:   make(chan struct{}),
	}
}

// Publish enqueues an event without blocking the caller. When the buffer
// is full the event is dropped; connected clients reconcile by re-fetching
// on their next received event, so a gap costs nothing but freshness.
func (b *Bus) Publish(evt models.Event) {
	select {
	case b.ch <- evt:
	default:
		b.stats.EventDropped()
		b.logger.Warn("event bus full, dropping event", zap.String("type", string(evt.Type)))
	}
}

// Run forwards events to sink until Close is called. It is meant to run in
// its own goroutine.
func (b *Bus) Run(sink func(models.Event)) {
	for {
		select {
		case evt := <-b.ch:
			sink(evt)
		case <-b.done:
			// drain whatever is already buffered, then stop
			for {
				select {
				case evt := <-b.ch:
					sink(evt)
				default:
					return
				}
			}
		}
	}
}

// Close stops the Run loop after a final drain.
func (b *Bus) Close() {
	close(b.done)
}
