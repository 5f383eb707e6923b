package eventbus

import (
	"log"
	"runtime/debug"
	"sync"
)

// Handler is a function that handles form events
type Handler func(Event)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event Event)
	Subscribe(eventType EventType, handler Handler) func()
	Close()
}

// subscription pairs a handler with a removal token
type subscription struct {
	id      int
	handler Handler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   int

	eventChan chan Event
	quit      chan struct{}
	wg        sync.WaitGroup
}

// New creates a new event bus and starts its dispatcher
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan Event, 100),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers. Never blocks: if the
// buffer is full the event is dropped and logged.
func (b *bus) Publish(event Event) {
	select {
	case b.eventChan <- event:
	default:
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, sub := range subs {
			if sub.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher. Events still buffered are discarded.
func (b *bus) Close() {
	close(b.quit)
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			subsCopy := make([]subscription, len(subs))
			copy(subsCopy, subs)
			b.mu.RUnlock()

			for _, sub := range subsCopy {
				func() {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
						}
					}()
					sub.handler(event)
				}()
			}

		case <-b.quit:
			return
		}
	}
}
