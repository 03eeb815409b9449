// Implements a Surface for progress rings on top
// of a gogpu/gg drawing context.
package ringgg

import (
	"image"
	"math"

	"github.com/benoitkugler/progresscircle/ringcolor"
	"github.com/benoitkugler/progresscircle/ringdraw"
	"github.com/gogpu/gg"
)

var _ ringdraw.Surface = (*Surface)(nil)

// Surface forwards draw operations to a *gg.Context.
type Surface struct {
	dc *gg.Context
}

// NewSurface creates a software gg context of the given size.
func NewSurface(width, height int) *Surface {
	return Wrap(gg.NewContext(width, height))
}

// Wrap uses an existing context, which may be GPU accelerated.
func Wrap(dc *gg.Context) *Surface { return &Surface{dc: dc} }

// Context returns the wrapped context.
func (s *Surface) Context() *gg.Context { return s.dc }

// Image returns the current content.
func (s *Surface) Image() image.Image { return s.dc.Image() }

func (s *Surface) SetStrokeColor(c ringcolor.Color, opacity float64) {
	s.dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, opacity)
}

func (s *Surface) SetLineWidth(w float64) {
	if w > 0 {
		s.dc.SetLineWidth(w)
	}
}

func (s *Surface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }

func (s *Surface) LineTo(x, y float64) { s.dc.LineTo(x, y) }

func (s *Surface) Stroke() error { return s.dc.Stroke() }

// ClearRect resets the pixels of the rectangle to transparent.
func (s *Surface) ClearRect(x, y, w, h float64) {
	width, height := s.dc.Width(), s.dc.Height()
	x0, y0 := clampInt(math.Floor(x), width), clampInt(math.Floor(y), height)
	x1, y1 := clampInt(math.Ceil(x+w), width), clampInt(math.Ceil(y+h), height)
	if x0 == 0 && y0 == 0 && x1 == width && y1 == height {
		s.dc.Clear()
		return
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.dc.SetPixel(px, py, gg.Transparent)
		}
	}
}

// SavePNG writes the current content to `path`.
func (s *Surface) SavePNG(path string) error { return s.dc.SavePNG(path) }

func clampInt(v float64, limit int) int {
	switch {
	case v < 0:
		return 0
	case v > float64(limit):
		return limit
	}
	return int(v)
}
