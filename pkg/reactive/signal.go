package reactive

import (
	"reflect"
	"sync"
)

// Watcher is a callback invoked with a signal's new value.
type Watcher[T any] func(T)

// watcher is one registration in a signal's watcher list.
// The removed flag lets an emit in progress skip entries that were
// unsubscribed after the notification snapshot was taken.
type watcher[T any] struct {
	id      uint64
	fn      Watcher[T]
	removed bool
}

// signalConfig holds constructor options shared by NewSignal and New.
type signalConfig struct {
	sched *Scheduler
}

// SignalOption configures a signal at construction time.
type SignalOption func(*signalConfig)

// OnScheduler binds the signal to the given scheduler instead of the
// package default. An application typically routes all of its signals
// through the scheduler owned by its App so one Flush drains them all.
func OnScheduler(s *Scheduler) SignalOption {
	return func(c *signalConfig) {
		if s != nil {
			c.sched = s
		}
	}
}

// Signal is a reactive value container.
// It holds one mutable value, an ordered list of watchers, and a pending
// flag that coalesces notification scheduling. The zero value is not
// usable; construct signals with NewSignal or New.
type Signal[T any] struct {
	mu sync.Mutex

	// value is the current signal value, stored by reference. The signal
	// never copies or serializes it, so circular structures are fine.
	value T

	// has reports whether a value was ever assigned. Signals created by
	// New start absent; the first Set always counts as a change.
	has bool

	// pending is true while a notification sits in the scheduler queue.
	// At most one notification per signal is in flight at a time.
	pending bool

	// watchers are the registered callbacks, in registration order.
	watchers []*watcher[T]

	// equal overrides the change check. Nil means default equality.
	equal func(T, T) bool

	// sched receives this signal when a change needs delivering.
	// Always non-nil for constructor-built signals.
	sched *Scheduler
}

// NewSignal creates a signal holding the given initial value.
func NewSignal[T any](initial T, opts ...SignalOption) *Signal[T] {
	s := New[T](opts...)
	s.value = initial
	s.has = true
	return s
}

// New creates a signal with no value. Has reports false and Get returns
// the zero value until the first Set, which always notifies.
func New[T any](opts ...SignalOption) *Signal[T] {
	cfg := signalConfig{sched: defaultScheduler}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Signal[T]{sched: cfg.sched}
}

// Get returns the current value. It has no side effects.
func (s *Signal[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Has reports whether the signal currently holds a value.
func (s *Signal[T]) Has() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.has
}

// Set updates the signal's value and schedules one coalesced
// notification. Setting a value equal to the current one (identity for
// reference types, value equality for primitives) is a no-op: nothing
// is stored and nothing is scheduled.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	changed := !s.has || !s.equals(s.value, v)
	if changed {
		s.value = v
		s.has = true
	}
	schedule := changed && !s.pending
	if schedule {
		s.pending = true
	}
	s.mu.Unlock()

	if schedule {
		s.sched.enqueue(s)
	}
}

// Update atomically reads and updates the signal's value.
// The function receives the current value and returns the new one.
func (s *Signal[T]) Update(fn func(T) T) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	next := fn(s.value)
	changed := !s.has || !s.equals(s.value, next)
	if changed {
		s.value = next
		s.has = true
	}
	schedule := changed && !s.pending
	if schedule {
		s.pending = true
	}
	s.mu.Unlock()

	if schedule {
		s.sched.enqueue(s)
	}
}

// Watch registers a callback to receive the signal's new value on each
// notification. It returns an unsubscribe capability: calling it removes
// exactly this registration, calling it again is a no-op, and other
// watchers are unaffected either way. Watchers are invoked in
// registration order and are never expired automatically.
func (s *Signal[T]) Watch(fn Watcher[T]) func() {
	if fn == nil {
		return func() {}
	}
	w := &watcher[T]{id: nextID(), fn: fn}

	s.mu.Lock()
	s.watchers = append(s.watchers, w)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, cur := range s.watchers {
			if cur.id == w.id {
				cur.removed = true
				// Shift-remove to keep registration order intact.
				s.watchers = append(s.watchers[:i], s.watchers[i+1:]...)
				return
			}
		}
	}
}

// WatcherCount returns the number of registered watchers.
func (s *Signal[T]) WatcherCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.watchers)
}

// Emit invokes every currently registered watcher synchronously, in
// registration order, passing changed. Watchers may subscribe or
// unsubscribe during the loop; entries removed mid-emit are skipped and
// the rest fire exactly once. A corrupted signal (one not built by a
// constructor) returns ErrCorruptedSignal instead of silently doing
// nothing.
func (s *Signal[T]) Emit(changed T) error {
	_, err := s.emit(changed)
	return err
}

// emit is Emit plus the watcher invocation count, used by flush stats.
func (s *Signal[T]) emit(changed T) (int, error) {
	if s == nil || s.sched == nil {
		return 0, ErrCorruptedSignal
	}

	// Copy-before-notify so watcher callbacks can mutate the list.
	s.mu.Lock()
	snapshot := make([]*watcher[T], len(s.watchers))
	copy(snapshot, s.watchers)
	s.mu.Unlock()

	calls := 0
	for _, w := range snapshot {
		s.mu.Lock()
		skip := w.removed
		s.mu.Unlock()
		if skip {
			continue
		}
		w.fn(changed)
		calls++
	}
	return calls, nil
}

// flush delivers the pending notification, if any, carrying the value
// current at delivery time. Called by the scheduler during Flush.
func (s *Signal[T]) flush() (int, error) {
	s.mu.Lock()
	if !s.pending {
		s.mu.Unlock()
		return 0, nil
	}
	s.pending = false
	v := s.value
	s.mu.Unlock()
	return s.emit(v)
}

// WithEquals returns the signal configured with a custom equality
// function, replacing the default identity/primitive check.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.mu.Lock()
	s.equal = fn
	s.mu.Unlock()
	return s
}

// equals checks two values using the configured equality function.
// Callers hold s.mu.
func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals implements the change threshold: value equality for
// primitives, identity for reference types, and "always changed" for
// anything else. Deep equality is deliberately not used; callers that
// want it set WithEquals.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint:
		return av == any(b).(uint)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	case float32:
		return av == any(b).(float32)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		return identityEquals(reflect.ValueOf(a), reflect.ValueOf(b))
	}
}

// identityEquals compares reference types by referent identity.
// Slices compare by data pointer and length. Value structs and other
// non-reference kinds report unequal, so assigning a fresh struct value
// always counts as a change.
func identityEquals(av, bv reflect.Value) bool {
	if !av.IsValid() || !bv.IsValid() {
		return !av.IsValid() && !bv.IsValid()
	}
	if av.Kind() != bv.Kind() {
		return false
	}
	switch av.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	case reflect.Slice:
		return av.Pointer() == bv.Pointer() && av.Len() == bv.Len()
	default:
		return false
	}
}
