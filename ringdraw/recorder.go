package ringdraw

import (
	"errors"

	"github.com/benoitkugler/progresscircle/ringcolor"
)

var errNoPath = errors.New("stroke without a current point")

// StrokeRecord is one stroked line.
type StrokeRecord struct {
	From, To Point
	Color    ringcolor.Color
	Opacity  float64
	Width    float64
}

// Recorder is an in memory Surface, which
// keeps track of every stroke and clear.
type Recorder struct {
	Strokes []StrokeRecord
	Clears  int // number of ClearRect calls

	color   ringcolor.Color
	opacity float64
	width   float64
	path    []Point
}

var _ Surface = (*Recorder)(nil)

func (r *Recorder) SetStrokeColor(c ringcolor.Color, opacity float64) {
	r.color, r.opacity = c, opacity
}

func (r *Recorder) SetLineWidth(w float64) { r.width = w }

func (r *Recorder) MoveTo(x, y float64) { r.path = append(r.path[:0], Point{x, y}) }

func (r *Recorder) LineTo(x, y float64) { r.path = append(r.path, Point{x, y}) }

func (r *Recorder) Stroke() error {
	if len(r.path) == 0 {
		return errNoPath
	}
	for i := 1; i < len(r.path); i++ {
		r.Strokes = append(r.Strokes, StrokeRecord{
			From: r.path[i-1], To: r.path[i],
			Color: r.color, Opacity: r.opacity, Width: r.width,
		})
	}
	r.path = r.path[:0]
	return nil
}

// ClearRect forgets every stroke when the rectangle
// covers the origin, and only counts the call otherwise.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Clears++
	if x <= 0 && y <= 0 {
		r.Strokes = r.Strokes[:0]
	}
}

// Reset forgets everything.
func (r *Recorder) Reset() { *r = Recorder{} }
