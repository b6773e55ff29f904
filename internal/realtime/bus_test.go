package realtime

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/walkin-drive-api/internal/models"
)

type captureStats struct {
	connected    atomic.Int32
	disconnected atomic.Int32
	broadcasts   atomic.Int32
	dropped      atomic.Int32
}

func (s *captureStats) ClientConnected()    { s.connected.Add(1) }
func (s *captureStats) ClientDisconnected() { s.disconnected.Add(1) }
func (s *captureStats) EventBroadcast()     { s.broadcasts.Add(1) }
func (s *captureStats) EventDropped()       { s.dropped.Add(1) }

func TestBusForwardsEventsInOrder(t *testing.T) {
	bus := NewBus(8, zap.NewNop(), nil)

	received := make(chan models.Event, 8)
	go bus.Run(func(evt models.Event) { received <- evt })

	bus.Publish(models.Event{Type: models.EventCandidateCreated})
	bus.Publish(models.Event{Type: models.EventCandidateUpdated})
	bus.Publish(models.Event{Type: models.EventFeedbackCreated})

	want := []models.EventKind{
		models.EventCandidateCreated,
		models.EventCandidateUpdated,
		models.EventFeedbackCreated,
	}
	for _, kind := range want {
		select {
		case evt := <-received:
			assert.Equal(t, kind, evt.Type)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %s", kind)
		}
	}
	bus.Close()
}

func TestBusPublishNeverBlocks(t *testing.T) {
	stats := &captureStats{}
	bus := NewBus(1, zap.NewNop(), stats)
	// no consumer running: the second publish must drop, not block

	done := make(chan struct{})
	go func() {
		bus.Publish(models.Event{Type: models.EventCandidateCreated})
		bus.Publish(models.Event{Type: models.EventCandidateUpdated})
		bus.Publish(models.Event{Type: models.EventRoomCreated})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full bus")
	}
	assert.Equal(t, int32(2), stats.dropped.Load())
}

func TestBusCloseDrainsBufferedEvents(t *testing.T) {
	bus := NewBus(8, zap.NewNop(), nil)

	bus.Publish(models.Event{Type: models.EventCandidateCreated})
	bus.Publish(models.Event{Type: models.EventCandidateUpdated})
	bus.Close()

	var got []models.EventKind
	finished := make(chan struct{})
	go func() {
		bus.Run(func(evt models.Event) { got = append(got, evt.Type) })
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("run did not stop after close")
	}
	require.Len(t, got, 2)
	assert.Equal(t, models.EventCandidateCreated, got[0])
	assert.Equal(t, models.EventCandidateUpdated, got[1])
}
