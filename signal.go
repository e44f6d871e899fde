package wtree

import (
	"golang.org/x/exp/slices"
)

// Signal is a list of subscribers called with a value of type T, in order of subscription.
type Signal[T any] struct {
	subs []*subscription[T]
}

type subscription[T any] struct {
	fn func(T)
}

// Subscribe adds fn to the subscribers. The returned function removes it again,
// and may be called multiple times.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	sub := &subscription[T]{fn}
	s.subs = append(s.subs, sub)
	return func() {
		if i := slices.Index(s.subs, sub); i >= 0 {
			s.subs = slices.Delete(s.subs, i, i+1)
		}
	}
}

// Emit calls all subscribers with v. Subscribers added or removed during Emit
// take effect for the next Emit.
func (s *Signal[T]) Emit(v T) {
	subs := slices.Clone(s.subs)
	for _, sub := range subs {
		sub.fn(v)
	}
}

// Len returns the number of subscribers.
func (s *Signal[T]) Len() int {
	return len(s.subs)
}
