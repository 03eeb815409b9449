// Implements the color model used by the progress ring:
// RGB triples, hex parsing and linear interpolation
// between two anchor colors.
package ringcolor

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrFormat is matched by every *FormatError.
var ErrFormat = errors.New("malformed color")

// FormatError is returned when a string is not
// a 3 or 6 digits hexadecimal color.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid hex color %q: expected #rgb or #rrggbb", e.Input)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Color is an opaque RGB triple.
type Color struct {
	R, G, B uint8
}

// ParseHex accepts #rgb, #rrggbb, rgb or rrggbb, case insensitive.
// In the short form, each digit is doubled (f -> ff).
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	var digits [3]string
	switch len(hex) {
	case 3:
		for i := range digits {
			digits[i] = strings.Repeat(hex[i:i+1], 2)
		}
	case 6:
		for i := range digits {
			digits[i] = hex[2*i : 2*i+2]
		}
	default:
		return Color{}, &FormatError{Input: s}
	}
	var out [3]uint8
	for i, d := range digits {
		v, err := strconv.ParseUint(d, 16, 8)
		if err != nil {
			return Color{}, &FormatError{Input: s}
		}
		out[i] = uint8(v)
	}
	return Color{R: out[0], G: out[1], B: out[2]}, nil
}

// ParseHexList parses every color of `hexes`, in order.
func ParseHexList(hexes []string) ([]Color, error) {
	out := make([]Color, len(hexes))
	for i, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// Interpolate returns c1*(1-t) + c2*t, floored channel by channel.
// For t in [0, 1] each channel stays between the ones of c1 and c2,
// and equal channels are returned unchanged.
// t is not clamped; channels are saturated to [0, 255].
func Interpolate(c1, c2 Color, t float64) Color {
	return Color{
		R: lerpChannel(c1.R, c2.R, t),
		G: lerpChannel(c1.G, c2.G, t),
		B: lerpChannel(c1.B, c2.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	// a + (b-a)*t is exact at t = 0, t = 1 and when a == b
	v := math.Floor(float64(a) + (float64(b)-float64(a))*t)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// RGBAString formats the color as a css rgba() value.
func (c Color) RGBAString(alpha float64) string {
	return "rgba(" + strconv.Itoa(int(c.R)) + ", " + strconv.Itoa(int(c.G)) + ", " +
		strconv.Itoa(int(c.B)) + ", " + strconv.FormatFloat(alpha, 'f', -1, 64) + ")"
}

// Hex returns the #rrggbb form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string { return c.Hex() }

// NRGBA converts to a non premultiplied color, with `opacity`
// in [0, 1] mapped to the alpha channel.
func (c Color) NRGBA(opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(opacity * 255))}
}
