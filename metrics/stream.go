package metrics

import (
	rx "github.com/tashoecraft/rx-go"
)

// Counted wraps src so every value it delivers increments the delivery
// counter under the given subject label. The returned observable forwards
// subscriptions to src unchanged.
func Counted[T any](m *Metrics, subject string, src rx.Observable[T]) rx.Observable[T] {
	counter := m.deliveries.WithLabelValues(subject)
	return rx.Tap(src, func(T) { counter.Inc() })
}

// Instrument attaches full instrumentation to a live subject: a gauge
// follows its subscriber count and a permanent counting registration
// increments the delivery counter once per pushed value.
//
// The counting registration is itself a subscriber, so the gauge reads one
// higher than the number of application subscribers. It cannot be removed;
// instrument subjects that live as long as the process.
func Instrument[T any](m *Metrics, subject string, s *rx.Subject[T]) error {
	if s == nil {
		return ErrNilSubject
	}
	if err := m.TrackSubscribers(subject, s.Len); err != nil {
		return err
	}

	counter := m.deliveries.WithLabelValues(subject)
	s.SubscribeFunc(func(T) { counter.Inc() })
	return nil
}
