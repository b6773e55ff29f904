package service

import "github.com/noah-isme/walkin-drive-api/internal/models"

// EventPublisher pushes entity-change events toward realtime clients.
// The realtime bus satisfies this; services never block on it.
type EventPublisher interface {
	Publish(evt models.Event)
}

// NopPublisher discards every event. Used when realtime is disabled and
// in tests that do not care about broadcasts.
type NopPublisher struct{}

// Publish implements EventPublisher.
func (NopPublisher) Publish(models.Event) {}
