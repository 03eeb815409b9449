package ringsvg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/benoitkugler/progresscircle/ringcolor"
	"github.com/benoitkugler/progresscircle/ringdraw"
)

func TestEncode(t *testing.T) {
	s := NewSurface(100, 100)
	s.Title = "progress"
	if err := ringdraw.DrawSegment(s, ringdraw.Center(100, 100), 100, 0, ringcolor.Color{R: 255}, 1); err != nil {
		t.Fatal(err)
	}
	if err := ringdraw.DrawSegment(s, ringdraw.Center(100, 100), 100, 3.14159, ringcolor.Color{B: 255}, 0.5); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", s.Len())
	}

	var b bytes.Buffer
	if err := s.Encode(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, `d="M100.000,50.000 L50.000,50.000"`) {
		t.Errorf("missing first segment in %s", out)
	}
	if !strings.Contains(out, "stroke:rgb(0,0,255);stroke-opacity:0.5") {
		t.Errorf("missing second style in %s", out)
	}
	if err := xml.Unmarshal(b.Bytes(), new(struct{})); err != nil {
		t.Errorf("invalid xml: %s", err)
	}

	s.ClearRect(0, 0, 100, 100)
	if s.Len() != 0 {
		t.Errorf("expected cleared document, got %d elements", s.Len())
	}
}

func TestClearRectPartial(t *testing.T) {
	s := NewSurface(100, 100)
	_ = ringdraw.DrawSegment(s, ringdraw.Center(100, 100), 100, 0, ringcolor.Color{}, 1)
	s.ClearRect(60, 0, 40, 100) // does not contain the center
	if s.Len() != 1 {
		t.Errorf("expected kept element, got %d", s.Len())
	}
}

func TestEncodeClass(t *testing.T) {
	s := NewSurface(20, 20)
	s.Class = `ring "big"`
	_ = ringdraw.DrawSegment(s, ringdraw.Center(20, 20), 20, 0, ringcolor.Color{}, 1)
	var b bytes.Buffer
	if err := s.Encode(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, `<g class="ring &#34;big&#34;"`) {
		t.Errorf("missing class group in %s", out)
	}
	if err := xml.Unmarshal(b.Bytes(), new(struct{})); err != nil {
		t.Errorf("invalid xml: %s", err)
	}
}

var errDiskFull = errors.New("disk full")

// failingWriter accepts `n` bytes then fails
type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		written := w.n
		w.n = 0
		return written, errDiskFull
	}
	w.n -= len(p)
	return len(p), nil
}

func TestEncodeWriteError(t *testing.T) {
	s := NewSurface(100, 100)
	for i := 0; i < 200; i++ {
		_ = ringdraw.DrawSegment(s, ringdraw.Center(100, 100), 100, float64(i)/100, ringcolor.Color{}, 1)
	}
	err := s.Encode(&failingWriter{n: 100})
	if !errors.Is(err, errDiskFull) {
		t.Errorf("expected write error, got %v", err)
	}
}
