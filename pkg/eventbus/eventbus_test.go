package eventbus_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camposys/fieldops/pkg/eventbus"
)

type orderCompleted struct {
	OrderID string
}

func newTestBus() eventbus.EventBus {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return eventbus.NewEventPublisher(logger)
}

func TestPublishDeliversToMatchingSubscriber(t *testing.T) {
	bus := newTestBus()

	var received []orderCompleted
	bus.Subscribe(func(ev orderCompleted) {
		received = append(received, ev)
	})

	bus.Publish(orderCompleted{OrderID: "wo-1"})
	require.Len(t, received, 1)
	assert.Equal(t, "wo-1", received[0].OrderID)
}

func TestPublishSkipsNonMatchingSubscriber(t *testing.T) {
	bus := newTestBus()

	called := false
	bus.Subscribe(func(s string) { called = true })

	bus.Publish(orderCompleted{OrderID: "wo-2"})
	assert.False(t, called)
}

func TestPublishRecoversFromHandlerPanic(t *testing.T) {
	bus := newTestBus()

	delivered := false
	bus.Subscribe(func(ev orderCompleted) { panic("boom") })
	bus.Subscribe(func(ev orderCompleted) { delivered = true })

	require.NotPanics(t, func() {
		bus.Publish(orderCompleted{OrderID: "wo-3"})
	})
	assert.True(t, delivered, "remaining subscribers should still run after a panic")
}

func TestUnsubscribeRemovesHandler(t *testing.T) {
	bus := newTestBus()

	calls := 0
	handler := func(ev orderCompleted) { calls++ }
	bus.Subscribe(handler)
	require.Equal(t, 1, bus.SubscribersCount())

	bus.Unsubscribe(handler)
	assert.Equal(t, 0, bus.SubscribersCount())

	bus.Publish(orderCompleted{})
	assert.Equal(t, 0, calls)
}

func TestMatchSignature(t *testing.T) {
	handler := func(ev orderCompleted, id string) {}

	assert.True(t, eventbus.MatchSignature(handler, []interface{}{orderCompleted{}, "x"}))
	assert.False(t, eventbus.MatchSignature(handler, []interface{}{orderCompleted{}}))
	assert.False(t, eventbus.MatchSignature(handler, []interface{}{"x", orderCompleted{}}))
	assert.False(t, eventbus.MatchSignature("not a func", []interface{}{}))
}
