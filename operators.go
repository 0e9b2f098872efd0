package rx

import "sync"

// Map transforms every value src produces with fn. Each Subscribe on the
// result creates its own subscription to src; cancelling it cancels the
// upstream registration.
func Map[A, B any](src Observable[A], fn func(A) B) Observable[B] {
	return ObservableFunc[B](func(observer Observer[B]) Subscription {
		return src.Subscribe(ObserverFunc[A](func(value A) {
			observer.Next(fn(value))
		}))
	})
}

// Filter forwards only the values of src for which pred returns true.
func Filter[T any](src Observable[T], pred func(T) bool) Observable[T] {
	return ObservableFunc[T](func(observer Observer[T]) Subscription {
		return src.Subscribe(ObserverFunc[T](func(value T) {
			if pred(value) {
				observer.Next(value)
			}
		}))
	})
}

// Tap invokes fn for every value of src and forwards the value unchanged.
// Use it for side effects such as logging or counting.
func Tap[T any](src Observable[T], fn func(T)) Observable[T] {
	return ObservableFunc[T](func(observer Observer[T]) Subscription {
		return src.Subscribe(ObserverFunc[T](func(value T) {
			fn(value)
			observer.Next(value)
		}))
	})
}

// Take forwards at most n values of src, then cancels its upstream
// registration. For n <= 0 the upstream is never subscribed and the
// returned subscription is inert.
//
// Take works with sources that deliver synchronously during Subscribe: if
// the limit is reached before Subscribe returns, excess values are dropped
// and the upstream registration is cancelled as soon as it is known.
func Take[T any](src Observable[T], n int) Observable[T] {
	return ObservableFunc[T](func(observer Observer[T]) Subscription {
		if n <= 0 {
			return NewSubscription(func() {})
		}

		var (
			mu        sync.Mutex
			remaining = n
			upstream  Subscription
		)
		cancel := func() {
			mu.Lock()
			sub := upstream
			upstream = nil
			mu.Unlock()

			if sub != nil {
				sub.Unsubscribe()
			}
		}

		sub := src.Subscribe(ObserverFunc[T](func(value T) {
			mu.Lock()
			if remaining == 0 {
				mu.Unlock()
				return
			}
			remaining--
			last := remaining == 0
			mu.Unlock()

			observer.Next(value)
			if last {
				cancel()
			}
		}))

		// The upstream handle only becomes visible to cancel after Subscribe
		// returns. If the limit was already hit during a synchronous
		// delivery, drop the registration right away instead.
		mu.Lock()
		exhausted := remaining == 0
		if !exhausted {
			upstream = sub
		}
		mu.Unlock()
		if exhausted {
			sub.Unsubscribe()
		}

		return NewSubscription(cancel)
	})
}
