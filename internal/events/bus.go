// Package events provides domain event definitions for decoupled
// communication between modules. Infrastructure (Bus, Handler) lives in
// platform/events.
package events

import (
	platformevents "webforge_backend/platform/events"
	"webforge_backend/platform/logger"
)

// InMemoryBus is a type alias to the platform InMemoryBus.
type InMemoryBus = platformevents.InMemoryBus

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return platformevents.NewInMemoryBus(log)
}
