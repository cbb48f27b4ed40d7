package combo

// Scheduler runs fn once the host has committed the current render. It must
// not run fn synchronously: the host would overwrite the effect when it
// applies the new value.
//
// Callbacks are unordered relative to later input. A fast keystroke may land
// before a pending cursor write; the next render supersedes it.
type Scheduler interface {
	AfterRender(fn func())
}

type SchedulerFunc func(fn func())

func (f SchedulerFunc) AfterRender(fn func()) {
	f(fn)
}

// Queue collects callbacks until the host calls Drain after rendering.
type Queue struct {
	pending []func()
}

func (q *Queue) AfterRender(fn func()) {
	if fn == nil {
		return
	}
	q.pending = append(q.pending, fn)
}

func (q *Queue) Len() int {
	return len(q.pending)
}

// Drain runs and forgets every queued callback. Callbacks queued while
// draining run on the next Drain.
func (q *Queue) Drain() int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}
