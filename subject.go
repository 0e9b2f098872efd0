package rx

// Subject is a broadcast node for values of type T: an Observable that
// accepts any number of subscriptions, and a sink whose Next fans every
// pushed value out to all of them synchronously.
//
// A *Subject is a handle. Copying the pointer yields another handle to the
// same subject: values pushed and observers registered through either handle
// are indistinguishable, and the shared callback registry lives as long as
// any handle or subscription references it. Copying never copies callbacks.
//
// All methods are safe for concurrent use.
//
// Example:
//
//	s := rx.NewSubject[int]()
//
//	sub := s.SubscribeFunc(func(v int) {
//		fmt.Println("got", v)
//	})
//	defer sub.Unsubscribe()
//
//	s.Next(1).Next(2)
type Subject[T any] struct {
	reg *registry[T]
}

// NewSubject creates a subject with no registered observers. It never fails.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{reg: newRegistry[T]()}
}

// Subscribe registers observer to receive every value subsequently pushed
// into the subject, after all previously registered observers. The returned
// Subscription cancels exactly this registration. Subscribing the same
// observer twice produces two independent, independently cancellable
// registrations.
func (s *Subject[T]) Subscribe(observer Observer[T]) Subscription {
	return s.SubscribeFunc(observer.Next)
}

// SubscribeFunc registers fn as an observer callback. It behaves exactly
// like Subscribe with an ObserverFunc.
func (s *Subject[T]) SubscribeFunc(fn func(T)) Subscription {
	token := s.reg.add(fn)
	return &subjectSubscription[T]{reg: s.reg, token: token}
}

// Next delivers value to every callback registered at the moment of the
// call, in registration order, synchronously, before returning. It returns
// the subject itself so pushes can be chained.
//
// The callback set is fixed when Next starts: a callback that registers a
// new observer during delivery does not cause it to see the in-flight
// value, and a callback that unsubscribes another registration mid-delivery
// does not stop that registration from seeing the in-flight value one last
// time. Callbacks run with no internal lock held, so they may freely call
// Subscribe, Unsubscribe, or Next themselves.
//
// A panicking callback is not insulated from the others: it aborts delivery
// to the callbacks registered after it.
func (s *Subject[T]) Next(value T) *Subject[T] {
	for _, e := range s.reg.snapshot() {
		e.fn(value)
	}
	return s
}

// Len reports the number of currently registered callbacks.
func (s *Subject[T]) Len() int {
	return s.reg.size()
}

// FromStream forks src into a new subject: it subscribes to src with a
// forwarding callback that pushes every produced value into the subject,
// and returns the subject. Observers subscribed to the subject at the time
// an upstream value is produced receive it exactly once; observers that
// subscribe later only see later values.
//
// The forwarding subscription is not exposed; forwarding continues for
// the life of the upstream stream.
func FromStream[T any](src Observable[T]) *Subject[T] {
	s := NewSubject[T]()
	src.Subscribe(ObserverFunc[T](func(value T) {
		s.Next(value)
	}))
	return s
}
