package rx_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rx "github.com/tashoecraft/rx-go"
)

func TestMap_TransformsValues(t *testing.T) {
	t.Parallel()

	src := rx.NewSubject[int]()
	mapped := rx.Map[int, string](src, strconv.Itoa)

	rec := &recorder[string]{}
	sub := mapped.Subscribe(rx.ObserverFunc[string](rec.add))

	src.Next(1)
	src.Next(2)
	require.Equal(t, []string{"1", "2"}, rec.values())

	sub.Unsubscribe()
	src.Next(3)
	assert.Equal(t, []string{"1", "2"}, rec.values())
	assert.Equal(t, 0, src.Len(), "unsubscribing the mapped stream cancels the upstream registration")
}

func TestFilter_DropsNonMatching(t *testing.T) {
	t.Parallel()

	src := rx.NewSubject[int]()
	evens := rx.Filter[int](src, func(v int) bool { return v%2 == 0 })

	rec := &recorder[int]{}
	sub := evens.Subscribe(rx.ObserverFunc[int](rec.add))
	defer sub.Unsubscribe()

	for v := 1; v <= 6; v++ {
		src.Next(v)
	}
	assert.Equal(t, []int{2, 4, 6}, rec.values())
}

func TestTap_SeesValuesBeforeDownstream(t *testing.T) {
	t.Parallel()

	src := rx.NewSubject[string]()
	order := &recorder[string]{}

	tapped := rx.Tap[string](src, func(v string) { order.add("tap:" + v) })
	sub := tapped.Subscribe(rx.ObserverFunc[string](func(v string) { order.add("out:" + v) }))
	defer sub.Unsubscribe()

	src.Next("x")
	assert.Equal(t, []string{"tap:x", "out:x"}, order.values())
}

func TestTake_LimitsAndCancelsUpstream(t *testing.T) {
	t.Parallel()

	src := rx.NewSubject[int]()
	first2 := rx.Take[int](src, 2)

	rec := &recorder[int]{}
	first2.Subscribe(rx.ObserverFunc[int](rec.add))
	require.Equal(t, 1, src.Len())

	src.Next(1)
	src.Next(2)
	src.Next(3)

	assert.Equal(t, []int{1, 2}, rec.values())
	assert.Equal(t, 0, src.Len(), "upstream registration must be cancelled once the limit is hit")
}

func TestTake_ZeroNeverSubscribesUpstream(t *testing.T) {
	t.Parallel()

	src := rx.NewSubject[int]()
	none := rx.Take[int](src, 0)

	rec := &recorder[int]{}
	sub := none.Subscribe(rx.ObserverFunc[int](rec.add))

	assert.Equal(t, 0, src.Len())
	src.Next(1)
	assert.Empty(t, rec.values())
	require.NotPanics(t, sub.Unsubscribe)
}

func TestTake_SynchronousSourceStopsAtLimit(t *testing.T) {
	t.Parallel()

	src := rx.FromSlice([]int{1, 2, 3, 4, 5})
	first3 := rx.Take[int](src, 3)

	rec := &recorder[int]{}
	first3.Subscribe(rx.ObserverFunc[int](rec.add))

	assert.Equal(t, []int{1, 2, 3}, rec.values())
}

func TestTake_EarlyUnsubscribe(t *testing.T) {
	t.Parallel()

	src := rx.NewSubject[int]()
	first5 := rx.Take[int](src, 5)

	rec := &recorder[int]{}
	sub := first5.Subscribe(rx.ObserverFunc[int](rec.add))

	src.Next(1)
	sub.Unsubscribe()
	src.Next(2)

	assert.Equal(t, []int{1}, rec.values())
	assert.Equal(t, 0, src.Len())
}

func TestOperators_ComposeIntoSubject(t *testing.T) {
	t.Parallel()

	src := rx.NewSubject[int]()
	pipeline := rx.Map[int, int](
		rx.Filter[int](src, func(v int) bool { return v > 0 }),
		func(v int) int { return v * 10 },
	)
	forked := rx.FromStream[int](pipeline)

	a := &recorder[int]{}
	b := &recorder[int]{}
	forked.SubscribeFunc(a.add)
	forked.SubscribeFunc(b.add)

	src.Next(-1)
	src.Next(2)
	src.Next(3)

	assert.Equal(t, []int{20, 30}, a.values())
	assert.Equal(t, []int{20, 30}, b.values())
}
