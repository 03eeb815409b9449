// Command progresscircle renders a progress ring transition
// to a PNG or SVG file, optionally saving every animation frame.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/progresscircle/circle"
	"github.com/benoitkugler/progresscircle/ringanim"
	"github.com/benoitkugler/progresscircle/ringconfig"
	"github.com/benoitkugler/progresscircle/ringdraw"
	"github.com/benoitkugler/progresscircle/ringgg"
	"github.com/benoitkugler/progresscircle/ringraster"
	"github.com/benoitkugler/progresscircle/ringsvg"
)

// surface is a ringdraw.Surface which can be saved to a file
type surface interface {
	ringdraw.Surface
	save(path string) error
}

type rasterSurface struct{ *ringraster.Surface }

func (s rasterSurface) save(path string) error { return s.SavePNG(path) }

type ggSurface struct{ *ringgg.Surface }

func (s ggSurface) save(path string) error { return s.SavePNG(path) }

type svgSurface struct{ *ringsvg.Surface }

func (s svgSurface) save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func newSurface(backend string, opts ringconfig.Options) (surface, error) {
	switch backend {
	case "raster":
		return rasterSurface{ringraster.NewSurface(opts.Width, opts.Height)}, nil
	case "gg":
		return ggSurface{ringgg.NewSurface(opts.Width, opts.Height)}, nil
	case "svg":
		s := ringsvg.NewSurface(opts.Width, opts.Height)
		s.Title = "progress circle"
		s.Class = opts.CanvasClass
		return svgSurface{s}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (expected raster, gg or svg)", backend)
	}
}

func main() {
	var (
		configFile = flag.String("config", "", "TOML options file")
		markupFile = flag.String("markup", "", "HTML file holding a data-progresscircle attribute")
		width      = flag.Int("width", 0, "canvas width")
		height     = flag.Int("height", 0, "canvas height")
		colors     = flag.String("colors", "", "comma separated theme colors")
		animation  = flag.Bool("animation", true, "animate the transition")
		from       = flag.Float64("from", 0, "initial progress")
		to         = flag.Float64("to", 1, "target progress")
		backend    = flag.String("backend", "raster", "surface backend: raster, gg or svg")
		output     = flag.String("output", "progress.png", "output file")
		frames     = flag.String("frames", "", "directory receiving one image per animation tick")
		realtime   = flag.Bool("realtime", false, "run the animation in real time")
		verbose    = flag.Bool("v", false, "log the animation lifecycle")
	)
	flag.Parse()

	if *verbose {
		circle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var layers []ringconfig.Partial
	if *configFile != "" {
		p, err := ringconfig.LoadFile(*configFile)
		if err != nil {
			log.Fatal(err)
		}
		layers = append(layers, p)
	}
	if *markupFile != "" {
		f, err := os.Open(*markupFile)
		if err != nil {
			log.Fatal(err)
		}
		p, err := ringconfig.FromMarkup(f, "")
		f.Close()
		if err != nil {
			log.Fatalf("reading %s: %v", *markupFile, err)
		}
		layers = append(layers, p)
	}
	var callSite ringconfig.Partial
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			callSite.Width = width
		case "height":
			callSite.Height = height
		case "colors":
			callSite.ThemeColors = strings.Split(*colors, ",")
		case "animation":
			callSite.Animation = animation
		}
	})
	opts := ringconfig.Merge(append(layers, callSite)...)

	s, err := newSurface(*backend, opts)
	if err != nil {
		log.Fatal(err)
	}

	if *realtime {
		err = runRealtime(s, opts, *from, *to)
	} else {
		err = runQueued(s, opts, *from, *to, *frames)
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := s.save(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Progress circle saved to %s (%dx%d)\n", *output, opts.Width, opts.Height)
}

// runQueued runs the animation without waiting between ticks
func runQueued(s surface, opts ringconfig.Options, from, to float64, frames string) error {
	var q ringanim.Queue
	w, err := circle.New(s, &q, opts)
	if err != nil {
		return err
	}
	if err := jumpTo(w, &q, from); err != nil {
		return err
	}
	if err := w.SetProgress(to); err != nil {
		return err
	}
	if frames != "" {
		if err := os.MkdirAll(frames, 0o755); err != nil {
			return err
		}
	}
	ext := ".png"
	if _, ok := s.(svgSurface); ok {
		ext = ".svg"
	}
	for frame := 0; q.Step(); frame++ {
		if frames == "" {
			continue
		}
		if err := s.save(filepath.Join(frames, fmt.Sprintf("frame-%04d%s", frame, ext))); err != nil {
			return err
		}
	}
	log.Printf("Animation from %g to %g took %s\n", from, to, q.Elapsed)
	return nil
}

// jumpTo reaches the initial progress without saving frames
func jumpTo(w *circle.Widget, q *ringanim.Queue, progress float64) error {
	if err := w.SetProgress(progress); err != nil {
		return err
	}
	q.Drain()
	return nil
}

// runRealtime drives the widget from a ringanim.Loop
func runRealtime(s surface, opts ringconfig.Options, from, to float64) error {
	loop := ringanim.NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	var (
		w    *circle.Widget
		task *ringanim.Task
		err  error
	)
	start := func(target float64) error {
		if doErr := loop.Do(ctx, func() {
			if err = w.SetProgress(target); err == nil {
				task = w.Task()
			}
		}); doErr != nil {
			return doErr
		}
		if err != nil || task == nil {
			return err
		}
		return task.Wait(ctx)
	}

	if doErr := loop.Do(ctx, func() { w, err = circle.New(s, loop, opts) }); doErr != nil {
		return doErr
	}
	if err != nil {
		return err
	}
	if err := start(from); err != nil {
		return err
	}
	return start(to)
}
