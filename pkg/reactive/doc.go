// Package reactive provides the reactive core for the Lumen framework.
//
// Signal[T] is an observable container for one mutable value. Watchers
// registered with Watch receive the new value after it changes:
//
//	count := reactive.NewSignal(0)
//	stop := count.Watch(func(n int) { fmt.Println("count is", n) })
//	count.Set(5)
//	reactive.Flush() // watchers fire here, once, with 5
//	stop()
//
// Values are stored by reference. Setting a signal to a value that is
// identity-equal (or, for primitives, value-equal) to the current one is
// a no-op and schedules nothing.
//
// # Scheduling
//
// Notifications are not delivered inside Set. Each changed signal
// enqueues itself at most once on a Scheduler; the embedding loop drains
// the queue with Flush, which delivers exactly one notification per
// signal carrying the final value written. Multiple synchronous writes
// therefore coalesce:
//
//	count.Set(1)
//	count.Set(2)
//	count.Set(3)
//	reactive.Flush() // one callback, value 3
//
// # Batching
//
// Batch groups several mutations and flushes once when the outermost
// scope completes:
//
//	reactive.Batch(func() {
//	    first.Set("John")
//	    last.Set("Doe")
//	})
//	// both signals notified exactly once, here
package reactive
