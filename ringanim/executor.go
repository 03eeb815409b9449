package ringanim

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Executor is the host task queue: Defer must
// return immediately and run `fn` later, after `delay`.
// All the functions deferred on an Executor run
// on the same logical thread, one at a time.
type Executor interface {
	Defer(delay time.Duration, fn func())
}

type deferred struct {
	delay time.Duration
	fn    func()
}

// Queue is a deterministic Executor: deferred functions are
// only run by Step or Drain, in FIFO order, on the caller goroutine.
// Delays are not waited for but summed in Elapsed.
// A Queue is not safe for concurrent use.
type Queue struct {
	pending []deferred
	Elapsed time.Duration // virtual time spent by the executed functions
}

var _ Executor = (*Queue)(nil)

func (q *Queue) Defer(delay time.Duration, fn func()) {
	q.pending = append(q.pending, deferred{delay: delay, fn: fn})
}

// Len returns the number of pending functions.
func (q *Queue) Len() int { return len(q.pending) }

// Step runs the oldest pending function, if any.
func (q *Queue) Step() bool {
	if len(q.pending) == 0 {
		return false
	}
	next := q.pending[0]
	q.pending[0] = deferred{}
	q.pending = q.pending[1:]
	q.Elapsed += next.delay
	next.fn()
	return true
}

// Drain runs pending functions, including the ones
// deferred meanwhile, until the queue is empty.
// It returns the number of functions run.
func (q *Queue) Drain() int {
	n := 0
	for q.Step() {
		n++
	}
	return n
}

// ErrLoopStopped is returned when posting to a Loop which is not running.
var ErrLoopStopped = errors.New("animation loop stopped")

// Loop is an Executor backed by one goroutine, started with Run.
// Deferred functions are posted to the loop after their delay
// and executed serially.
type Loop struct {
	tasks chan func()

	once sync.Once
	done chan struct{}
}

var _ Executor = (*Loop)(nil)

// NewLoop returns a loop ready to be Run.
func NewLoop() *Loop {
	return &Loop{tasks: make(chan func(), 16), done: make(chan struct{})}
}

// Run executes posted functions until `ctx` is done.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.tasks:
			fn()
		}
	}
}

func (l *Loop) stopped() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

func (l *Loop) post(fn func()) error {
	if l.stopped() {
		return ErrLoopStopped
	}
	select {
	case l.tasks <- fn:
		return nil
	case <-l.done:
		return ErrLoopStopped
	}
}

// Defer posts `fn` after `delay`, from a timer goroutine.
// Functions deferred after the loop stopped are dropped.
func (l *Loop) Defer(delay time.Duration, fn func()) {
	time.AfterFunc(delay, func() { _ = l.post(fn) })
}

// Do runs `fn` on the loop goroutine and waits for it to return.
// It must not be called from the loop goroutine itself.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	wrapped := func() {
		defer close(finished)
		fn()
	}
	if l.stopped() {
		return ErrLoopStopped
	}
	select {
	case l.tasks <- wrapped:
	case <-l.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
