package rx

import "context"

// FromSlice returns a cold source that delivers every element of items, in
// order, synchronously during Subscribe, and nothing afterwards. The
// returned subscription is inert because delivery has already completed.
func FromSlice[T any](items []T) Observable[T] {
	return ObservableFunc[T](func(observer Observer[T]) Subscription {
		for _, item := range items {
			observer.Next(item)
		}
		return NewSubscription(func() {})
	})
}

// FromChannel returns a source backed by ch. Each Subscribe starts one
// goroutine that forwards received values to the observer until ctx is
// cancelled, ch is closed, or the subscription is cancelled.
//
// Values are consumed from ch, so two subscriptions compete for them rather
// than both seeing every value. Wrap the source with FromStream to turn one
// consuming subscription into a broadcast:
//
//	subject := rx.FromStream(rx.FromChannel(ctx, ch))
func FromChannel[T any](ctx context.Context, ch <-chan T) Observable[T] {
	return ObservableFunc[T](func(observer Observer[T]) Subscription {
		stop := make(chan struct{})
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-stop:
					return
				case value, ok := <-ch:
					if !ok {
						return
					}
					// The select picks randomly among ready cases, so a
					// value can still be drawn after cancellation; re-check
					// before delivering.
					select {
					case <-ctx.Done():
						return
					case <-stop:
						return
					default:
					}
					observer.Next(value)
				}
			}
		}()
		return NewSubscription(func() {
			close(stop)
		})
	})
}
