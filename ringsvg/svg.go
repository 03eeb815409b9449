// Implements a Surface producing an SVG document,
// one path element per stroke.
package ringsvg

import (
	"bufio"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/benoitkugler/progresscircle/ringcolor"
	"github.com/benoitkugler/progresscircle/ringdraw"
	"github.com/benoitkugler/progresscircle/ringpath"
	"golang.org/x/image/math/fixed"
	"golang.org/x/net/html"
)

var _ ringdraw.Surface = (*Surface)(nil)

type element struct {
	path  ringpath.Path
	style string
}

// Surface accumulates strokes until Encode is called.
type Surface struct {
	Width, Height int
	Title         string
	// Class, if not empty, is set on the group holding the strokes.
	Class string

	color     ringcolor.Color
	opacity   float64
	lineWidth float64
	pending   ringpath.Path
	elements  []element
}

// NewSurface returns an empty document of the given size.
func NewSurface(width, height int) *Surface {
	return &Surface{Width: width, Height: height, opacity: 1, lineWidth: ringdraw.HairlineWidth}
}

// Len returns the number of stroked elements.
func (s *Surface) Len() int { return len(s.elements) }

func (s *Surface) SetStrokeColor(c ringcolor.Color, opacity float64) {
	s.color, s.opacity = c, opacity
}

func (s *Surface) SetLineWidth(w float64) {
	if w > 0 {
		s.lineWidth = w
	}
}

func (s *Surface) MoveTo(x, y float64) { s.pending.Start(ringpath.ToFixed(x, y)) }

func (s *Surface) LineTo(x, y float64) {
	if len(s.pending) == 0 {
		s.MoveTo(x, y)
		return
	}
	s.pending.Line(ringpath.ToFixed(x, y))
}

func (s *Surface) Stroke() error {
	if len(s.pending) == 0 {
		return nil
	}
	style := fmt.Sprintf("fill:none;stroke:rgb(%d,%d,%d);stroke-opacity:%g;stroke-width:%g",
		s.color.R, s.color.G, s.color.B, s.opacity, s.lineWidth)
	s.elements = append(s.elements, element{path: append(ringpath.Path(nil), s.pending...), style: style})
	s.pending.Clear()
	return nil
}

// ClearRect removes the strokes lying entirely inside the rectangle.
func (s *Surface) ClearRect(x, y, w, h float64) {
	lo, hi := ringpath.ToFixed(x, y), ringpath.ToFixed(x+w, y+h)
	inside := func(p fixed.Point26_6) bool {
		return lo.X <= p.X && p.X <= hi.X && lo.Y <= p.Y && p.Y <= hi.Y
	}
	kept := s.elements[:0]
	for _, el := range s.elements {
		covered := true
		for _, op := range el.path {
			switch op := op.(type) {
			case ringpath.MoveTo:
				covered = covered && inside(fixed.Point26_6(op))
			case ringpath.LineTo:
				covered = covered && inside(fixed.Point26_6(op))
			}
		}
		if !covered {
			kept = append(kept, el)
		}
	}
	s.elements = kept
}

// Encode writes the SVG document to `w`, returning
// the first write error.
func (s *Surface) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(s.Width, s.Height)
	if s.Title != "" {
		canvas.Title(s.Title)
	}
	if s.Class != "" {
		canvas.Group(`class="` + html.EscapeString(s.Class) + `"`)
	}
	for _, el := range s.elements {
		canvas.Path(el.path.ToSVGPath(), el.style)
	}
	if s.Class != "" {
		canvas.Gend()
	}
	canvas.End()
	return bw.Flush()
}
