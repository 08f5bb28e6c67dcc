package reactive

import (
	"errors"
	"sync"
	"time"
)

// flusher is the scheduler-side view of a pending signal.
type flusher interface {
	flush() (watcherCalls int, err error)
}

// FlushStats describes one completed flush, for instrumentation hooks.
type FlushStats struct {
	// Signals is the number of queue entries drained.
	Signals int

	// Watchers is the total number of watcher invocations delivered.
	Watchers int

	// Duration is the wall time the flush took.
	Duration time.Duration

	// Err is the joined error of the flush, if any watcher delivery
	// failed. Populated so hooks observe errors from Batch, whose
	// signature cannot return them.
	Err error
}

// SchedulerOption configures a Scheduler at construction time.
type SchedulerOption func(*Scheduler)

// WithFlushHook registers a hook invoked after every non-empty flush.
func WithFlushHook(hook func(FlushStats)) SchedulerOption {
	return func(s *Scheduler) {
		s.onFlush = hook
	}
}

// Scheduler is the explicit task queue behind signal notifications.
// Changed signals enqueue themselves at most once; the embedding loop
// drains the queue with Flush. Within one drain each signal delivers a
// single notification carrying its final value.
type Scheduler struct {
	mu         sync.Mutex
	queue      []flusher
	batchDepth int
	onFlush    func(FlushStats)
}

// NewScheduler creates a scheduler.
func NewScheduler(opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// defaultScheduler backs signals constructed without OnScheduler.
var defaultScheduler = NewScheduler()

// Default returns the package-level scheduler used by signals that were
// not bound to an explicit one.
func Default() *Scheduler {
	return defaultScheduler
}

// enqueue adds a pending signal to the queue. Each signal guards this
// with its pending flag, so entries are unique per drain.
func (s *Scheduler) enqueue(f flusher) {
	s.mu.Lock()
	s.queue = append(s.queue, f)
	s.mu.Unlock()
}

// Pending returns the number of signals waiting for the next flush.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Flush drains the queue as snapshotted at call time, delivering one
// notification per signal in enqueue order. Signals re-enqueued by
// watcher callbacks stay pending for the next flush. Inside an active
// batch Flush is a no-op; the outermost batch completion flushes.
// The returned error joins any corrupted-signal errors raised on the
// notify path.
func (s *Scheduler) Flush() error {
	s.mu.Lock()
	if s.batchDepth > 0 {
		s.mu.Unlock()
		return nil
	}
	queue := s.queue
	s.queue = nil
	s.mu.Unlock()

	if len(queue) == 0 {
		return nil
	}

	start := time.Now()
	var errs []error
	watchers := 0
	for _, f := range queue {
		n, err := f.flush()
		watchers += n
		if err != nil {
			errs = append(errs, err)
		}
	}
	err := errors.Join(errs...)

	if s.onFlush != nil {
		s.onFlush(FlushStats{
			Signals:  len(queue),
			Watchers: watchers,
			Duration: time.Since(start),
			Err:      err,
		})
	}
	return err
}

// Batch groups multiple signal updates into a single notification phase.
// Updates inside the function enqueue as usual but nothing is delivered
// until the outermost batch completes, which flushes once. Batches nest.
// Delivery errors are reported through the flush hook.
func (s *Scheduler) Batch(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.batchDepth++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.batchDepth--
		done := s.batchDepth == 0
		s.mu.Unlock()
		if done {
			_ = s.Flush()
		}
	}()

	fn()
}

// Flush drains the package-level default scheduler.
func Flush() error {
	return defaultScheduler.Flush()
}

// Batch runs fn as a batch on the package-level default scheduler.
func Batch(fn func()) {
	defaultScheduler.Batch(fn)
}
