// Package circle implements a progress ring: a radial color gradient
// drawn with angular line segments, whose transitions between progress
// values are animated by incrementally redrawing the growing or
// shrinking arc.
//
// A Widget is not safe for concurrent use: it must be driven from the
// thread of its executor (see ringanim.Queue and ringanim.Loop.Do).
package circle

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/benoitkugler/progresscircle/ringanim"
	"github.com/benoitkugler/progresscircle/ringcolor"
	"github.com/benoitkugler/progresscircle/ringconfig"
	"github.com/benoitkugler/progresscircle/ringdraw"
	"github.com/benoitkugler/progresscircle/ringpath"
	"github.com/google/uuid"
)

// Option customizes a Widget.
type Option func(*Widget)

// WithStartAngle changes the angle of the first gradient
// section, which defaults to 12 o'clock.
func WithStartAngle(theta float64) Option {
	return func(w *Widget) { w.startAngle = theta }
}

// WithCompletionHook registers `fn`, called with the new progress
// each time a transition completes.
func WithCompletionHook(fn func(progress float64)) Option {
	return func(w *Widget) { w.onComplete = fn }
}

// Widget is one progress ring bound to a surface.
type Widget struct {
	id      string
	surface ringdraw.Surface
	opts    ringconfig.Options
	logger  *slog.Logger

	startAngle float64
	colors     []ringcolor.Color
	track      ringcolor.Color
	gradient   ringpath.Gradient
	center     ringdraw.Point
	diameter   float64

	sched *ringanim.Scheduler

	progress float64
	painted  []bool // painted[i] is true when step i shows its gradient color

	onComplete func(float64)
}

// New validates `opts`, builds the gradient and returns an empty ring.
// `exec` schedules the animation ticks; it may only be nil
// when animation is disabled.
func New(surface ringdraw.Surface, exec ringanim.Executor, opts ringconfig.Options, options ...Option) (*Widget, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if opts.Animation && exec == nil {
		return nil, ErrNoExecutor
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("progress circle: %w", err)
	}
	w := &Widget{
		id:         uuid.NewString(),
		surface:    surface,
		opts:       opts,
		logger:     Logger(),
		startAngle: ringpath.DefaultStartAngle,
		center:     ringdraw.Center(float64(opts.Width), float64(opts.Height)),
		diameter:   math.Min(float64(opts.Width), float64(opts.Height)),
	}
	for _, option := range options {
		option(w)
	}
	w.logger = w.logger.With("widget", w.id)
	if err := w.initialize(); err != nil {
		return nil, err
	}
	if exec != nil {
		w.sched = ringanim.New(exec,
			ringanim.WithBatchSize(opts.BatchSize),
			ringanim.WithDelay(opts.TickDelay(w.gradient.Len())),
			ringanim.WithLogger(w.logger),
		)
	}
	return w, nil
}

// initialize parses the colors and builds the gradient
func (w *Widget) initialize() error {
	colors, err := w.opts.Colors()
	if err != nil {
		return fmt.Errorf("progress circle: %w", err)
	}
	track, err := w.opts.Track()
	if err != nil {
		return fmt.Errorf("progress circle: %w", err)
	}
	gradient, err := ringpath.Build(colors, w.startAngle)
	if err != nil {
		return fmt.Errorf("progress circle: %w", err)
	}
	w.colors, w.track, w.gradient = colors, track, gradient
	w.painted = make([]bool, gradient.Len())
	return nil
}

// ID is a random identifier of the widget.
func (w *Widget) ID() string { return w.id }

// Options returns the options the widget was created with.
func (w *Widget) Options() ringconfig.Options { return w.opts }

// Gradient returns the current gradient table.
func (w *Widget) Gradient() ringpath.Gradient { return w.gradient }

// Progress returns the last progress reached by a completed transition.
func (w *Widget) Progress() float64 { return w.progress }

// Task returns the running transition, or nil.
func (w *Widget) Task() *ringanim.Task {
	if w.sched == nil {
		return nil
	}
	return w.sched.Current()
}

// SetProgress starts the transition to `target`, clockwise when growing.
// See SetProgressDirection.
func (w *Widget) SetProgress(target float64) error {
	return w.SetProgressDirection(target, w.progress < target)
}

// SetProgressDirection starts the transition to `target`, walking the
// affected gradient steps clockwise or counter-clockwise.
// The direction only changes the drawing order, not the drawn steps.
//
// With animation enabled it returns immediately; Progress is updated
// when the transition completes. A transition still running is superseded.
// Without animation, the ring is redrawn synchronously.
func (w *Widget) SetProgressDirection(target float64, clockwise bool) error {
	if math.IsNaN(target) || target < 0 || target > 1 {
		return &InvalidTargetError{Target: target}
	}
	length := w.gradient.Len()
	r := ringpath.RangeFor(w.progress, target, length)
	r.Clockwise = clockwise
	if w.Task() != nil {
		// the superseded transition may have drawn steps
		// outside of the new range
		r = r.Union(w.mismatch(target))
	}
	targetIndex := int(math.Floor(float64(length) * target))
	step := func(i int) { w.drawStep(i, i < targetIndex) }
	done := func() {
		w.progress = target
		if w.onComplete != nil {
			w.onComplete(target)
		}
	}

	if !w.opts.Animation {
		for _, i := range r.Indices() {
			step(i)
		}
		done()
		return nil
	}
	w.sched.Start(r, step, done)
	return nil
}

// mismatch returns the range of steps whose painted
// state differs from the one expected at `target`
func (w *Widget) mismatch(target float64) ringpath.Range {
	targetIndex := int(math.Floor(float64(len(w.painted)) * target))
	out := ringpath.Range{Lo: len(w.painted), Hi: 0}
	for i, p := range w.painted {
		if p != (i < targetIndex) {
			out.Lo = min(out.Lo, i)
			out.Hi = max(out.Hi, i+1)
		}
	}
	return out
}

// drawStep paints the step `i` with its gradient color,
// or with the track color when `paint` is false
func (w *Widget) drawStep(i int, paint bool) {
	st := w.gradient.Steps[i]
	c := w.track
	if paint {
		c = st.Color
	}
	if err := ringdraw.DrawSegment(w.surface, w.center, w.diameter, st.Angle, c, 1); err != nil {
		w.logger.Warn("drawing gradient step", "index", i, "error", err)
		return
	}
	w.painted[i] = paint
}

func (w *Widget) clear() {
	if w.sched != nil {
		w.sched.Cancel()
	}
	ringdraw.Clear(w.surface, float64(w.opts.Width), float64(w.opts.Height))
	for i := range w.painted {
		w.painted[i] = false
	}
}

// Reset cancels any transition, clears the surface and sets the progress to 0.
func (w *Widget) Reset() {
	w.clear()
	w.progress = 0
}

// Refresh cancels any transition, clears the surface, rebuilds the gradient
// from the options and synchronously redraws the ring up to Progress.
func (w *Widget) Refresh() error {
	w.clear()
	if err := w.initialize(); err != nil {
		return err
	}
	r := ringpath.RangeFor(0, w.progress, w.gradient.Len())
	for _, i := range r.Indices() {
		w.drawStep(i, true)
	}
	return nil
}
