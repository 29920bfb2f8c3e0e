package events

import (
	"context"
	"sync"
	"time"

	"webforge_backend/platform/logger"

	"go.uber.org/multierr"
)

// asyncHandlerTimeout bounds how long a detached handler may run.
const asyncHandlerTimeout = 30 * time.Second

// InMemoryBus is a process-local Bus implementation. Handlers for an event
// type run in registration order; Publish detaches them from the caller's
// request lifecycle so a slow email send never blocks an HTTP response.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	log      *logger.Logger
}

// NewInMemoryBus creates an in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string][]Handler),
		log:      log,
	}
}

// Subscribe registers a handler for the named event type.
func (b *InMemoryBus) Subscribe(eventName string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

// Publish dispatches the event to all handlers asynchronously. Handler
// errors are logged, never propagated: publishing is fire-and-forget.
func (b *InMemoryBus) Publish(_ context.Context, event Event) {
	handlers := b.handlersFor(event.EventName())
	if len(handlers) == 0 {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncHandlerTimeout)
		defer cancel()

		for _, h := range handlers {
			if err := h.Handle(ctx, event); err != nil && b.log != nil {
				b.log.Error("event handler failed",
					"event", event.EventName(),
					"error", err,
				)
			}
		}
	}()
}

// PublishSync dispatches the event and waits for every handler, returning
// the combined handler errors.
func (b *InMemoryBus) PublishSync(ctx context.Context, event Event) error {
	var errs error
	for _, h := range b.handlersFor(event.EventName()) {
		if err := h.Handle(ctx, event); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func (b *InMemoryBus) handlersFor(eventName string) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Handler, len(b.handlers[eventName]))
	copy(out, b.handlers[eventName])
	return out
}
