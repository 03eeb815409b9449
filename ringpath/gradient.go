// Implements the angular gradient of a progress ring:
// a full revolution is partitioned into one section per
// theme color, and each section is sampled every StepIncrement
// radians with a color interpolated between the section bounds.
package ringpath

import (
	"errors"
	"math"
	"sort"

	"github.com/benoitkugler/progresscircle/ringcolor"
)

// DefaultStartAngle puts the first section at 12 o'clock.
const DefaultStartAngle = -math.Pi / 2

// these are variables so that the arithmetic is done
// in float64 and not on exact constants
var (
	pi            = math.Pi
	StepIncrement = pi / 360 // angular width of one gradient step
)

var errNoColors = errors.New("gradient requires at least one color")

// GradientStep is one sample of the gradient.
type GradientStep struct {
	Angle float64 // absolute angle, in radians
	Color ringcolor.Color
}

// Gradient is the ordered list of steps for one revolution.
// Angles are strictly increasing.
type Gradient struct {
	Steps      []GradientStep
	Start      float64 // start angle of the first section
	Sections   int
	PerSection int // number of steps in each section
}

// Len returns the number of steps.
func (g Gradient) Len() int { return len(g.Steps) }

// Section returns the steps of the i-th section.
func (g Gradient) Section(i int) []GradientStep {
	if i < 0 || i >= g.Sections {
		return nil
	}
	return g.Steps[i*g.PerSection : (i+1)*g.PerSection]
}

// SectionWidth returns 2π / n.
func SectionWidth(n int) float64 { return pi * 2 / float64(n) }

// StepsPerSection returns the number of steps emitted for each of
// `n` sections. The last partial step of a section is dropped, so
// that n * StepsPerSection(n) may be less than a full revolution.
func StepsPerSection(n int) int {
	if n <= 0 {
		return 0
	}
	section := SectionWidth(n)
	count := 0
	for theta := 0.; theta < section-StepIncrement; theta += StepIncrement {
		count++
	}
	return count
}

// Build samples the gradient between consecutive `colors`,
// the last one wrapping to the first.
// A single color yields a uniform ring.
func Build(colors []ringcolor.Color, startAngle float64) (Gradient, error) {
	n := len(colors)
	if n == 0 {
		return Gradient{}, errNoColors
	}
	section := SectionWidth(n)
	out := Gradient{Start: startAngle, Sections: n, PerSection: StepsPerSection(n)}
	out.Steps = make([]GradientStep, 0, n*out.PerSection)
	for i := 0; i < n; i++ {
		sectionStart := startAngle + section*float64(i)
		from, to := colors[i], colors[(i+1)%n]
		// theta restarts from 0 for each section
		for theta := 0.; theta < section-StepIncrement; theta += StepIncrement {
			out.Steps = append(out.Steps, GradientStep{
				Angle: theta + sectionStart,
				Color: ringcolor.Interpolate(from, to, theta/section),
			})
		}
	}
	return out, nil
}

// Locate returns the index of the step covering `angle`, that is
// the last step whose angle is less or equal to `angle`.
// `angle` is first normalized to [Start, Start + 2π).
// The boolean is false for an empty gradient.
func (g Gradient) Locate(angle float64) (int, bool) {
	if len(g.Steps) == 0 {
		return 0, false
	}
	if angle < g.Start || angle >= g.Start+2*pi {
		angle = g.Start + math.Mod(angle-g.Start, 2*pi)
		if angle < g.Start {
			angle += 2 * pi
		}
	}
	i := sort.Search(len(g.Steps), func(i int) bool { return g.Steps[i].Angle > angle })
	if i == 0 {
		return 0, true
	}
	return i - 1, true
}
