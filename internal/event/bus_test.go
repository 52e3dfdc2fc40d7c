package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishReachesTypedSubscriber(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	var got []Event
	bus.Subscribe(TodoUpdated, func(ev Event) { got = append(got, ev) })

	bus.Publish(Event{Type: TodoUpdated, Data: "a"})
	bus.Publish(Event{Type: GoalUpdated, Data: "b"}) // different type, not delivered

	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Data)
}

func TestSubscribeAllSeesEverything(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	var count int
	bus.SubscribeAll(func(ev Event) { count++ })

	bus.Publish(Event{Type: GoalCreated})
	bus.Publish(Event{Type: ConfigUpdated})
	assert.Equal(t, 2, count)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	var count int
	unsub := bus.Subscribe(GoalUpdated, func(ev Event) { count++ })

	bus.Publish(Event{Type: GoalUpdated})
	unsub()
	bus.Publish(Event{Type: GoalUpdated})

	assert.Equal(t, 1, count)
}

func TestClosedBusDropsEvents(t *testing.T) {
	bus := NewBus()

	var count int
	bus.Subscribe(GoalUpdated, func(ev Event) { count++ })
	assert.NoError(t, bus.Close())

	bus.Publish(Event{Type: GoalUpdated})
	assert.Equal(t, 0, count)

	// Close is idempotent.
	assert.NoError(t, bus.Close())
}
