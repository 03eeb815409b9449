package ringpath

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Adder is implemented by types that accumulate straight
// path commands, such as rasterx.Dasher.
type Adder interface {
	// Start starts a new curve at the given point.
	Start(a fixed.Point26_6)
	// Line adds a line segment to the path
	Line(b fixed.Point26_6)
	// Ends the current curve. Segments are never closed,
	// so AddTo always passes false.
	Stop(closeLoop bool)
}

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
)

// Operation groups the different path commands
type Operation interface {
	command() pathCommand
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

func (MoveTo) command() pathCommand { return pathMoveTo }
func (LineTo) command() pathCommand { return pathLineTo }

// Path is a sequence of straight operations, in 26.6 fixed point.
type Path []Operation

// ToFixed converts two floats to a fixed point.
func ToFixed(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(math.Round(x * 64))
	p.Y = fixed.Int26_6(math.Round(y * 64))
	return
}

// Polar returns the point at `radius` and angle `theta` around (cx, cy).
func Polar(cx, cy, radius, theta float64) (x, y float64) {
	return cx + radius*math.Cos(theta), cy + radius*math.Sin(theta)
}

// Segment returns the radial stroke of a gradient step:
// from the point at `radius` and angle `theta` to the center.
func Segment(cx, cy, radius, theta float64) Path {
	x, y := Polar(cx, cy, radius, theta)
	var p Path
	p.Start(ToFixed(x, y))
	p.Line(ToFixed(cx, cy))
	return p
}

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// AddTo replays the Path p into q.
func (p Path) AddTo(q Adder) {
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			q.Stop(false) // implicit close if currently in path.
			q.Start(fixed.Point26_6(op))
		case LineTo:
			q.Line(fixed.Point26_6(op))
		}
	}
	q.Stop(false)
}
