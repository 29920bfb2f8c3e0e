package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type testEvent struct {
	BaseEvent
	name string
}

func (e testEvent) EventName() string { return e.name }

func TestInMemoryBus_PublishSync_RunsHandlersInOrder(t *testing.T) {
	bus := NewInMemoryBus(nil)

	var order []int
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, e Event) error {
		order = append(order, 1)
		return nil
	}))
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, e Event) error {
		order = append(order, 2)
		return nil
	}))

	if err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "test.event"}); err != nil {
		t.Fatalf("PublishSync returned error: %v", err)
	}

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("handlers ran out of order: %v", order)
	}
}

func TestInMemoryBus_PublishSync_CollectsHandlerErrors(t *testing.T) {
	bus := NewInMemoryBus(nil)

	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, e Event) error {
		return errors.New("first failure")
	}))
	var secondRan bool
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, e Event) error {
		secondRan = true
		return nil
	}))

	err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "test.event"})
	if err == nil {
		t.Fatal("expected an error from the failing handler")
	}
	if !secondRan {
		t.Fatal("a failing handler must not stop later handlers")
	}
}

func TestInMemoryBus_Publish_DoesNotBlockCaller(t *testing.T) {
	bus := NewInMemoryBus(nil)

	var wg sync.WaitGroup
	wg.Add(1)
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, e Event) error {
		defer wg.Done()
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "test.event"})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("async handler never ran")
	}
}

func TestInMemoryBus_Publish_NoHandlersIsNoop(t *testing.T) {
	bus := NewInMemoryBus(nil)
	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "unsubscribed"})
}
