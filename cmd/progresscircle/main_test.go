package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/progresscircle/ringconfig"
)

func TestRunQueuedFrames(t *testing.T) {
	dir := t.TempDir()
	opts := ringconfig.Merge(ringconfig.Partial{Width: ringconfig.Int(40), Height: ringconfig.Int(40)})
	for _, backend := range []string{"raster", "gg", "svg"} {
		s, err := newSurface(backend, opts)
		if err != nil {
			t.Fatal(err)
		}
		frames := filepath.Join(dir, backend)
		if err := runQueued(s, opts, 0.5, 0.6, frames); err != nil {
			t.Fatal(err)
		}
		entries, err := os.ReadDir(frames)
		if err != nil {
			t.Fatal(err)
		}
		// 72 steps, 5 per tick
		if len(entries) != 15 {
			t.Errorf("%s: expected 15 frames, got %d", backend, len(entries))
		}
		if err := s.save(filepath.Join(dir, backend+".out")); err != nil {
			t.Fatal(err)
		}
	}
}

func TestNewSurfaceUnknown(t *testing.T) {
	if _, err := newSurface("pdf", ringconfig.Defaults()); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestSaveSVGClass(t *testing.T) {
	opts := ringconfig.Merge(ringconfig.Partial{CanvasClass: ringconfig.String("dashboard-ring")})
	s, err := newSurface("svg", opts)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "ring.svg")
	if err := s.save(path); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `class="dashboard-ring"`) {
		t.Errorf("missing canvas class in %s", b)
	}
}

func TestSaveSVGError(t *testing.T) {
	s, err := newSurface("svg", ringconfig.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.save(filepath.Join(t.TempDir(), "missing", "ring.svg")); err == nil {
		t.Error("expected error for an unwritable path")
	}
}
