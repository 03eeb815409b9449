// Implements a raster Surface for progress rings,
// by wrapping rasterx.
package ringraster

import (
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/benoitkugler/progresscircle/ringcolor"
	"github.com/benoitkugler/progresscircle/ringdraw"
	"github.com/benoitkugler/progresscircle/ringpath"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

var _ ringdraw.Surface = (*Surface)(nil) // assert interface conformance

// Surface strokes into an RGBA image.
type Surface struct {
	img    *image.RGBA
	dasher *rasterx.Dasher

	lineWidth float64
	path      ringpath.Path
}

// NewSurface returns a transparent surface of the given size.
func NewSurface(width, height int) *Surface {
	return NewSurfaceForImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewSurfaceForImage draws into `img`.
// A default scanner rasterx.ScannerGV is used.
func NewSurfaceForImage(img *image.RGBA) *Surface {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Surface{
		img:       img,
		dasher:    rasterx.NewDasher(w, h, scanner),
		lineWidth: ringdraw.HairlineWidth,
	}
}

// Image returns the underlying image.
func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) SetStrokeColor(c ringcolor.Color, opacity float64) {
	s.dasher.Scanner.SetColor(rasterx.ApplyOpacity(c.NRGBA(1), opacity))
}

func (s *Surface) SetLineWidth(w float64) {
	// as for html canvas, non positive widths are ignored
	if w > 0 {
		s.lineWidth = w
	}
}

func (s *Surface) MoveTo(x, y float64) {
	s.path.Start(ringpath.ToFixed(x, y))
}

func (s *Surface) LineTo(x, y float64) {
	if len(s.path) == 0 {
		s.MoveTo(x, y)
		return
	}
	s.path.Line(ringpath.ToFixed(x, y))
}

// Stroke rasterizes the current path with butt caps and bevel joins.
func (s *Surface) Stroke() error {
	defer s.path.Clear()
	if len(s.path) == 0 {
		return nil
	}
	s.dasher.Clear()
	s.dasher.SetStroke(
		fixed.Int26_6(s.lineWidth*64), fixed.Int26_6(4*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Bevel,
		nil, 0,
	)
	s.path.AddTo(s.dasher)
	s.dasher.Draw()
	return nil
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Add(s.img.Bounds().Min)
	draw.Draw(s.img, r, image.Transparent, image.Point{}, draw.Src)
}

// EncodePNG writes the current image to `w`.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SavePNG writes the current image to the file `path`.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = s.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
