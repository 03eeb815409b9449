// Implements a cooperative animation loop: a range of gradient
// indices is walked by batches, each batch being deferred to
// an Executor so that the host stays responsive.
//
// A Scheduler runs at most one Task: starting a new one
// supersedes the previous, whose pending batches become no-ops.
package ringanim

import (
	"context"
	"log/slog"
	"time"

	"github.com/benoitkugler/progresscircle/ringpath"
)

const (
	DefaultBatchSize = 5
	DefaultDelay     = 10 * time.Millisecond
)

// State is the lifecycle of a Task.
type State uint8

const (
	Idle State = iota
	Running
	Completed
	Superseded
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Superseded:
		return "superseded"
	default:
		return "unknown"
	}
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithBatchSize sets the number of indices processed per tick.
// Values below 1 are ignored.
func WithBatchSize(n int) Option {
	return func(s *Scheduler) {
		if n >= 1 {
			s.batchSize = n
		}
	}
}

// WithDelay sets the delay between two ticks.
func WithDelay(d time.Duration) Option {
	return func(s *Scheduler) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithLogger sets the logger receiving the task lifecycle records.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// Scheduler walks index ranges on an Executor.
// It must only be used from the executor thread.
type Scheduler struct {
	exec      Executor
	batchSize int
	delay     time.Duration
	logger    *slog.Logger

	generation uint64
	current    *Task
}

// New returns a scheduler deferring its ticks to `exec`.
func New(exec Executor, opts ...Option) *Scheduler {
	s := &Scheduler{
		exec:      exec,
		batchSize: DefaultBatchSize,
		delay:     DefaultDelay,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BatchSize returns the number of indices processed per tick.
func (s *Scheduler) BatchSize() int { return s.batchSize }

// Delay returns the delay between two ticks.
func (s *Scheduler) Delay() time.Duration { return s.delay }

// Current returns the running task, or nil.
func (s *Scheduler) Current() *Task { return s.current }

// Start supersedes the running task, if any, and schedules the walk of `r`.
// `onStep` is called for each index, in the direction of `r`;
// `onComplete`, which may be nil, is called once every index has been processed.
// An empty range completes synchronously.
func (s *Scheduler) Start(r ringpath.Range, onStep func(index int), onComplete func()) *Task {
	s.Cancel()
	s.generation++
	t := &Task{
		sched:      s,
		generation: s.generation,
		rg:         r,
		cursor:     r.First(),
		onStep:     onStep,
		onComplete: onComplete,
		done:       make(chan struct{}),
	}
	s.logger.Debug("animation task started", "generation", t.generation,
		"lo", r.Lo, "hi", r.Hi, "clockwise", r.Clockwise)
	t.state = Running
	if r.Empty() {
		t.complete()
		return t
	}
	s.current = t
	s.exec.Defer(s.delay, t.tick)
	return t
}

// Cancel supersedes the running task, if any.
func (s *Scheduler) Cancel() {
	if s.current == nil {
		return
	}
	t := s.current
	s.current = nil
	s.generation++
	t.state = Superseded
	close(t.done)
	s.logger.Debug("animation task superseded", "generation", t.generation, "processed", t.processed)
}

// Task is one walk of an index range.
type Task struct {
	sched      *Scheduler
	generation uint64
	rg         ringpath.Range
	cursor     int
	processed  int
	state      State
	onStep     func(int)
	onComplete func()
	done       chan struct{}
}

// State returns the current state of the task.
func (t *Task) State() State { return t.state }

// Range returns the walked range.
func (t *Task) Range() ringpath.Range { return t.rg }

// Generation identifies the task in its scheduler.
func (t *Task) Generation() uint64 { return t.generation }

// Processed returns the number of indices already walked.
func (t *Task) Processed() int { return t.processed }

// Done is closed when the task completes or is superseded.
func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the task completes or is superseded.
// The executor must keep running meanwhile, so Wait must not be
// called from the executor thread, nor with a Queue.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Task) alive() bool {
	return t.state == Running && t.sched.generation == t.generation
}

func (t *Task) exhausted() bool {
	if t.rg.Clockwise {
		return t.cursor >= t.rg.Hi
	}
	return t.cursor < t.rg.Lo
}

func (t *Task) advance() {
	if t.rg.Clockwise {
		t.cursor++
	} else {
		t.cursor--
	}
	t.processed++
}

// tick processes one batch, then yields
func (t *Task) tick() {
	for n := 0; n < t.sched.batchSize && !t.exhausted(); n++ {
		if !t.alive() { // superseded, possibly by onStep itself
			return
		}
		t.onStep(t.cursor)
		t.advance()
	}
	if !t.alive() {
		return
	}
	if t.exhausted() {
		t.sched.current = nil
		t.complete()
		return
	}
	t.sched.exec.Defer(t.sched.delay, t.tick)
}

func (t *Task) complete() {
	t.state = Completed
	close(t.done)
	t.sched.logger.Debug("animation task completed", "generation", t.generation, "processed", t.processed)
	if t.onComplete != nil {
		t.onComplete()
	}
}
