package rx

// Observer consumes values pushed by an observable source.
type Observer[T any] interface {
	// Next delivers the next value of the sequence.
	Next(value T)
}

// ObserverFunc adapts an ordinary function to the Observer interface.
//
// Example:
//
//	sub := subject.Subscribe(rx.ObserverFunc[int](func(v int) {
//		fmt.Println(v)
//	}))
type ObserverFunc[T any] func(T)

// Next implements Observer by calling the function itself.
func (f ObserverFunc[T]) Next(value T) {
	f(value)
}

// Observable is a push-based source of values. Each Subscribe call registers
// a single observer that receives every value the source subsequently
// produces for that registration, and returns a handle that cancels exactly
// that registration.
//
// An Observable delivers to one observer per subscription. Use FromStream to
// fork a single-subscriber source into a broadcast Subject.
type Observable[T any] interface {
	Subscribe(observer Observer[T]) Subscription
}

// ObservableFunc adapts an ordinary function to the Observable interface.
// It is the building block for operators and custom sources.
type ObservableFunc[T any] func(Observer[T]) Subscription

// Subscribe implements Observable by calling the function itself.
func (f ObservableFunc[T]) Subscribe(observer Observer[T]) Subscription {
	return f(observer)
}

// Subscription represents one outstanding observer registration.
type Subscription interface {
	// Unsubscribe cancels the registration. Only the first call has effect;
	// the subscription is consumed and later calls are no-ops.
	Unsubscribe()
}

// SubscriptionFunc adapts an ordinary function to the Subscription
// interface. The function is called on every Unsubscribe; wrap it with
// NewSubscription when at-most-once semantics are required.
type SubscriptionFunc func()

// Unsubscribe implements Subscription by calling the function itself.
func (f SubscriptionFunc) Unsubscribe() {
	f()
}
