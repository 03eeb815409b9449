// Implements how a gradient step is drawn on screen.
// This requires a Surface implementing the actual draw operations,
// such as a rasterizer to output .png images or an SVG writer.
// See ringraster, ringgg and ringsvg.
package ringdraw

import (
	"github.com/benoitkugler/progresscircle/ringcolor"
	"github.com/benoitkugler/progresscircle/ringpath"
)

// HairlineWidth is the line width used for gradient segments.
const HairlineWidth = 1.

// Surface knows how to do the actual draw operations
// but doesn't need any knowledge of the progress ring.
type Surface interface {
	// SetStrokeColor sets the color used by the next Stroke
	SetStrokeColor(c ringcolor.Color, opacity float64)

	// SetLineWidth sets the width used by the next Stroke
	SetLineWidth(w float64)

	// MoveTo starts a new path at the given point.
	MoveTo(x, y float64)

	// LineTo adds a line from the current point to (x, y)
	LineTo(x, y float64)

	// Stroke paints the accumulated path with the current
	// stroke settings, then resets the path.
	Stroke() error

	// ClearRect erases the given rectangle.
	ClearRect(x, y, w, h float64)
}

// Point is a position on the surface.
type Point struct{ X, Y float64 }

// Center returns the center of a canvas of the given size.
func Center(width, height float64) Point {
	return Point{X: width / 2, Y: height / 2}
}

// DrawSegment strokes the radial line at angle `theta`, from
// radius width/2 to the center.
// It doesn't rely on any previous state of the surface.
func DrawSegment(s Surface, center Point, width, theta float64, c ringcolor.Color, opacity float64) error {
	x, y := ringpath.Polar(center.X, center.Y, width/2, theta)
	s.SetStrokeColor(c, opacity)
	s.SetLineWidth(HairlineWidth)
	s.MoveTo(x, y)
	s.LineTo(center.X, center.Y)
	return s.Stroke()
}

// Clear erases the whole canvas.
func Clear(s Surface, width, height float64) {
	s.ClearRect(0, 0, width, height)
}
