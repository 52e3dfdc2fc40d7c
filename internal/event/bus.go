// Package event provides a pub/sub bus for dadgpt domain events, built on
// watermill's gochannel transport.
package event

import (
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Type identifies the kind of event.
type Type string

const (
	GoalCreated        Type = "goal.created"
	GoalUpdated        Type = "goal.updated"
	TodoCreated        Type = "todo.created"
	TodoUpdated        Type = "todo.updated"
	ConfigUpdated      Type = "config.updated"
	PermissionRequired Type = "permission.required"
	PermissionResolved Type = "permission.resolved"
)

// Event is a single published event.
type Event struct {
	Type Type `json:"type"`
	Data any  `json:"data"`
}

// Subscriber receives events.
type Subscriber func(event Event)

type subscriberEntry struct {
	id uint64
	fn Subscriber
}

// Bus fans events out to subscribers. Typed subscribers are called
// directly, which preserves the Data payload's Go type; every event is also
// mirrored onto the watermill channel as JSON for infrastructure that wants
// message semantics (PubSub exposes it).
type Bus struct {
	mu          sync.RWMutex
	pubsub      *gochannel.GoChannel
	subscribers map[Type][]subscriberEntry
	global      []subscriberEntry
	nextID      uint64
	closed      bool
}

var globalBus = NewBus()

// NewBus creates a new event bus.
func NewBus() *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 64},
			watermill.NopLogger{},
		),
		subscribers: make(map[Type][]subscriberEntry),
	}
}

// Subscribe registers a subscriber for one event type on the global bus.
// The returned function unsubscribes.
func Subscribe(t Type, fn Subscriber) func() {
	return globalBus.Subscribe(t, fn)
}

func (b *Bus) Subscribe(t Type, fn Subscriber) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return func() {}
	}

	id := atomic.AddUint64(&b.nextID, 1)
	b.subscribers[t] = append(b.subscribers[t], subscriberEntry{id: id, fn: fn})
	return func() { b.unsubscribe(t, id) }
}

// SubscribeAll registers a subscriber for every event on the global bus.
func SubscribeAll(fn Subscriber) func() {
	return globalBus.SubscribeAll(fn)
}

func (b *Bus) SubscribeAll(fn Subscriber) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return func() {}
	}

	id := atomic.AddUint64(&b.nextID, 1)
	b.global = append(b.global, subscriberEntry{id: id, fn: fn})
	return func() { b.unsubscribeGlobal(id) }
}

func (b *Bus) unsubscribe(t Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.subscribers[t]
	for i, entry := range subs {
		if entry.id == id {
			b.subscribers[t] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
}

func (b *Bus) unsubscribeGlobal(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, entry := range b.global {
		if entry.id == id {
			b.global = append(b.global[:i], b.global[i+1:]...)
			break
		}
	}
}

// Publish sends an event on the global bus. Subscribers run synchronously
// in the caller's goroutine, so a publisher returns only after every
// subscriber has seen the event.
func Publish(ev Event) {
	globalBus.Publish(ev)
}

func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	subs := make([]Subscriber, 0, len(b.subscribers[ev.Type])+len(b.global))
	for _, entry := range b.subscribers[ev.Type] {
		subs = append(subs, entry.fn)
	}
	for _, entry := range b.global {
		subs = append(subs, entry.fn)
	}
	pubsub := b.pubsub
	b.mu.RUnlock()

	for _, sub := range subs {
		sub(ev)
	}

	if payload, err := json.Marshal(ev); err == nil {
		msg := message.NewMessage(watermill.NewUUID(), payload)
		_ = pubsub.Publish(string(ev.Type), msg)
	}
}

// PubSub returns the bus's underlying watermill GoChannel, for consumers
// that want message-based subscription or a future distributed backend.
func (b *Bus) PubSub() *gochannel.GoChannel {
	return b.pubsub
}

// Close shuts the bus down; further publishes are dropped.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.subscribers = make(map[Type][]subscriberEntry)
	b.global = nil
	b.mu.Unlock()

	return b.pubsub.Close()
}

// Reset replaces the global bus, dropping all subscribers (for tests).
func Reset() {
	old := globalBus
	globalBus = NewBus()
	_ = old.Close()
}
