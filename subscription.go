package rx

import "sync"

// subjectSubscription cancels one callback registration on a Subject.
// It holds the registry and the token issued for the callback, never the
// callback itself.
type subjectSubscription[T any] struct {
	reg   *registry[T]
	token uint64
	once  sync.Once
}

// Unsubscribe removes the callback this subscription represents. The first
// call consumes the subscription; later calls return immediately. All other
// registrations keep their delivery order. If the callback is already gone,
// nothing happens.
func (s *subjectSubscription[T]) Unsubscribe() {
	s.once.Do(func() {
		s.reg.remove(s.token)
	})
}

// NewSubscription wraps cancel in a Subscription that invokes it at most
// once, no matter how many times Unsubscribe is called. Use it when
// implementing custom Observable sources.
func NewSubscription(cancel func()) Subscription {
	return &onceSubscription{cancel: cancel}
}

type onceSubscription struct {
	cancel func()
	once   sync.Once
}

func (s *onceSubscription) Unsubscribe() {
	s.once.Do(s.cancel)
}
