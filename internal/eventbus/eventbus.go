package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"hackerstories/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventQueryChanged   = domain.EventQueryChanged
	EventQuerySubmitted = domain.EventQuerySubmitted
	EventStoriesChanged = domain.EventStoriesChanged
	EventError          = domain.EventError
	EventConfigLoaded   = domain.EventConfigLoaded
	EventConfigSaved    = domain.EventConfigSaved
)

// Re-export domain event types
type QueryChangedEvent = domain.QueryChangedEvent
type QuerySubmittedEvent = domain.QuerySubmittedEvent
type StoriesChangedEvent = domain.StoriesChangedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus delivers events one at a time, in publish order, from a single
// goroutine. The queue is unbounded so Publish never blocks or drops, even
// when called from inside a handler.
type bus struct {
	logger *zap.Logger

	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64

	qmu    sync.Mutex
	queue  []DomainEvent
	wake   chan struct{}
	closed bool

	quit chan struct{}
	wg   sync.WaitGroup
}

// New creates a new event bus
func New(logger *zap.Logger) EventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &bus{
		logger:   logger.Named("eventbus"),
		handlers: make(map[EventType][]subscription),
		wake:     make(chan struct{}, 1),
		quit:     make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers
func (b *bus) Publish(event DomainEvent) {
	b.logger.Debug("publishing event", zap.String("type", string(event.Type())))

	b.qmu.Lock()
	if b.closed {
		b.qmu.Unlock()
		b.logger.Warn("bus closed, dropping event", zap.String("type", string(event.Type())))
		return
	}
	b.queue = append(b.queue, event)
	b.qmu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
		// dispatcher already signalled
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, s := range subs {
				if s.id == id {
					b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
		})
	}
}

// Close stops accepting events, delivers what is already queued and waits
// for the dispatcher to exit.
func (b *bus) Close() {
	b.qmu.Lock()
	if b.closed {
		b.qmu.Unlock()
		return
	}
	b.closed = true
	b.qmu.Unlock()

	close(b.quit)
	b.wg.Wait()
}

// next pops the oldest queued event
func (b *bus) next() (DomainEvent, bool) {
	b.qmu.Lock()
	defer b.qmu.Unlock()
	if len(b.queue) == 0 {
		return nil, false
	}
	event := b.queue[0]
	b.queue[0] = nil
	b.queue = b.queue[1:]
	return event, true
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		for {
			event, ok := b.next()
			if !ok {
				break
			}
			b.deliver(event)
		}

		select {
		case <-b.wake:
		case <-b.quit:
			// Deliver anything published before Close
			for {
				event, ok := b.next()
				if !ok {
					return
				}
				b.deliver(event)
			}
		}
	}
}

func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	subs := b.handlers[event.Type()]
	// Copy so handlers may subscribe or unsubscribe without deadlocking
	handlersCopy := make([]EventHandler, len(subs))
	for i, s := range subs {
		handlersCopy[i] = s.handler
	}
	b.mu.RUnlock()

	for _, handler := range handlersCopy {
		b.call(handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panic",
				zap.String("type", string(event.Type())),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	h(event)
}
