package rx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rx "github.com/tashoecraft/rx-go"
)

func TestObserverFunc_Next(t *testing.T) {
	t.Parallel()

	var got int
	observer := rx.ObserverFunc[int](func(v int) { got = v })

	observer.Next(42)
	assert.Equal(t, 42, got)
}

func TestObservableFunc_Subscribe(t *testing.T) {
	t.Parallel()

	// A source that synchronously emits a single value per subscription.
	src := rx.ObservableFunc[string](func(observer rx.Observer[string]) rx.Subscription {
		observer.Next("hello")
		return rx.NewSubscription(func() {})
	})

	rec := &recorder[string]{}
	sub := src.Subscribe(rx.ObserverFunc[string](rec.add))
	require.NotNil(t, sub)
	assert.Equal(t, []string{"hello"}, rec.values())
}

func TestSubscriptionFunc_CallsOnEveryUnsubscribe(t *testing.T) {
	t.Parallel()

	calls := 0
	sub := rx.SubscriptionFunc(func() { calls++ })

	sub.Unsubscribe()
	sub.Unsubscribe()
	assert.Equal(t, 2, calls, "raw adapter does not add once semantics")
}

func TestNewSubscription_CancelsAtMostOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	sub := rx.NewSubscription(func() { calls++ })

	sub.Unsubscribe()
	sub.Unsubscribe()
	sub.Unsubscribe()
	assert.Equal(t, 1, calls)
}

func TestSubjectSatisfiesObservable(t *testing.T) {
	t.Parallel()

	var src rx.Observable[int] = rx.NewSubject[int]()
	rec := &recorder[int]{}

	sub := src.Subscribe(rx.ObserverFunc[int](rec.add))
	defer sub.Unsubscribe()

	src.(*rx.Subject[int]).Next(5)
	assert.Equal(t, []int{5}, rec.values())
}
