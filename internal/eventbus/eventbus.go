package eventbus

import (
	"log/slog"
	"runtime/debug"
	"sync"

	"vistui/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSelectionChanged = domain.EventSelectionChanged
	EventRowsAdded        = domain.EventRowsAdded
	EventRowsRemoved      = domain.EventRowsRemoved
	EventStepChanged      = domain.EventStepChanged
	EventStepRefused      = domain.EventStepRefused
	EventPiecesImported   = domain.EventPiecesImported
	EventError            = domain.EventError
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
)

// Re-export domain event types
type SelectionChangedEvent = domain.SelectionChangedEvent
type RowsAddedEvent = domain.RowsAddedEvent
type RowsRemovedEvent = domain.RowsRemovedEvent
type StepChangedEvent = domain.StepChangedEvent
type StepRefusedEvent = domain.StepRefusedEvent
type PiecesImportedEvent = domain.PiecesImportedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	SubscribeAll(handler EventHandler) func()
}

type entry struct {
	handler EventHandler
}

// bus delivers events synchronously on the publisher's goroutine, in
// subscription order. Handlers for a specific type run before catch-all
// handlers.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]*entry
	all      []*entry
	logger   *slog.Logger
}

// New creates a new event bus. A nil logger means slog.Default at the
// time of each log call.
func New(logger *slog.Logger) EventBus {
	return &bus{
		handlers: make(map[EventType][]*entry),
		logger:   logger,
	}
}

// Publish delivers an event to all subscribers before returning
func (b *bus) Publish(event DomainEvent) {
	b.log().Debug("publishing event", "type", event.Type())

	b.mu.RLock()
	handlers := make([]*entry, 0, len(b.handlers[event.Type()])+len(b.all))
	handlers = append(handlers, b.handlers[event.Type()]...)
	handlers = append(handlers, b.all...)
	b.mu.RUnlock()

	for _, e := range handlers {
		b.call(e.handler, event)
	}
}

// call runs one handler, containing any panic so the remaining handlers
// still see the event
func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.log().Error("event handler panic", "type", event.Type(), "panic", r, "stack", string(debug.Stack()))
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := &entry{handler: handler}
	b.handlers[eventType] = append(b.handlers[eventType], e)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.handlers[eventType] = remove(b.handlers[eventType], e)
	}
}

// SubscribeAll subscribes to every event type
func (b *bus) SubscribeAll(handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := &entry{handler: handler}
	b.all = append(b.all, e)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.all = remove(b.all, e)
	}
}

func (b *bus) log() *slog.Logger {
	if b.logger == nil {
		return slog.Default()
	}
	return b.logger
}

func remove(entries []*entry, target *entry) []*entry {
	for i, e := range entries {
		if e == target {
			return append(entries[:i:i], entries[i+1:]...)
		}
	}
	return entries
}
