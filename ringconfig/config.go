// Implements the configuration of a progress ring: the recognized
// options, their defaults, and how option layers coming from
// a file, the markup and the call site are combined.
package ringconfig

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/benoitkugler/progresscircle/ringcolor"
)

// ErrInvalid is matched by validation errors other than color format ones.
var ErrInvalid = errors.New("invalid progress circle options")

// DefaultThemeColors is the palette used when none is configured.
var DefaultThemeColors = []string{"#0000FF", "#00FF00", "#FF0000"}

// Options is the resolved configuration of a widget.
type Options struct {
	Width, Height int
	DefaultColor  string // track color, also used to erase
	CanvasClass   string
	Animation     bool // false to redraw instantly
	AnimationTime time.Duration
	ThemeColors   []string
	BatchSize     int // gradient steps drawn per animation tick
}

// Defaults returns the built-in options.
func Defaults() Options {
	return Options{
		Width:         100,
		Height:        100,
		DefaultColor:  "#fff",
		CanvasClass:   "progress-circle",
		Animation:     true,
		AnimationTime: time.Second,
		ThemeColors:   append([]string(nil), DefaultThemeColors...),
		BatchSize:     5,
	}
}

// Partial is one layer of options: nil fields are not set.
// AnimationTime is expressed in milliseconds.
type Partial struct {
	Width         *int     `json:"width,omitempty" toml:"width"`
	Height        *int     `json:"height,omitempty" toml:"height"`
	DefaultColor  *string  `json:"defaultColor,omitempty" toml:"defaultColor"`
	CanvasClass   *string  `json:"canvasClass,omitempty" toml:"canvasClass"`
	Animation     *bool    `json:"animation,omitempty" toml:"animation"`
	AnimationTime *int     `json:"animationTime,omitempty" toml:"animationTime"`
	ThemeColors   []string `json:"themeColors,omitempty" toml:"themeColors"`
	BatchSize     *int     `json:"batchSize,omitempty" toml:"batchSize"`
}

// apply overrides the fields of `o` set in `p`
func (p Partial) apply(o *Options) {
	if p.Width != nil {
		o.Width = *p.Width
	}
	if p.Height != nil {
		o.Height = *p.Height
	}
	if p.DefaultColor != nil {
		o.DefaultColor = *p.DefaultColor
	}
	if p.CanvasClass != nil {
		o.CanvasClass = *p.CanvasClass
	}
	if p.Animation != nil {
		o.Animation = *p.Animation
	}
	if p.AnimationTime != nil {
		o.AnimationTime = time.Duration(*p.AnimationTime) * time.Millisecond
	}
	if p.ThemeColors != nil {
		o.ThemeColors = append([]string(nil), p.ThemeColors...)
	}
	if p.BatchSize != nil {
		o.BatchSize = *p.BatchSize
	}
}

// Merge applies `layers` on top of the defaults, in increasing precedence:
// the last layer wins.
func Merge(layers ...Partial) Options {
	out := Defaults()
	for _, l := range layers {
		l.apply(&out)
	}
	return out
}

// Resolve combines the option sources with precedence
// call site > markup > defaults.
func Resolve(callSite, markup Partial) Options {
	return Merge(markup, callSite)
}

// Validate checks the sizes and parses every color.
// Color errors match ringcolor.ErrFormat.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, o.Width, o.Height)
	}
	if o.AnimationTime < 0 {
		return fmt.Errorf("%w: negative animation time %s", ErrInvalid, o.AnimationTime)
	}
	if o.BatchSize < 1 {
		return fmt.Errorf("%w: batch size %d", ErrInvalid, o.BatchSize)
	}
	if len(o.ThemeColors) == 0 {
		return fmt.Errorf("%w: no theme colors", ErrInvalid)
	}
	if _, err := o.Colors(); err != nil {
		return err
	}
	if _, err := o.Track(); err != nil {
		return err
	}
	return nil
}

// Colors parses the theme colors.
func (o Options) Colors() ([]ringcolor.Color, error) {
	out, err := ringcolor.ParseHexList(o.ThemeColors)
	if err != nil {
		return nil, fmt.Errorf("theme colors: %w", err)
	}
	return out, nil
}

// Track parses the default color.
func (o Options) Track() (ringcolor.Color, error) {
	c, err := ringcolor.ParseHex(o.DefaultColor)
	if err != nil {
		return c, fmt.Errorf("default color: %w", err)
	}
	return c, nil
}

// TickDelay returns the delay between two animation ticks so that
// walking a full gradient of `gradientLen` steps takes AnimationTime.
func (o Options) TickDelay(gradientLen int) time.Duration {
	if gradientLen <= 0 || o.BatchSize <= 0 {
		return 0
	}
	ticks := (gradientLen + o.BatchSize - 1) / o.BatchSize
	return o.AnimationTime / time.Duration(ticks)
}

// LoadFile reads an option layer from a TOML file.
func LoadFile(path string) (Partial, error) {
	var p Partial
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return Partial{}, fmt.Errorf("reading options file %s: %w", path, err)
	}
	return p, nil
}

// Int, String and Bool return pointers to their argument,
// to build Partial values.
func Int(v int) *int { return &v }

func String(v string) *string { return &v }

func Bool(v bool) *bool { return &v }
