package ringpath

import "math"

// Range is a sub range [Lo, Hi) of gradient indices.
// Clockwise only selects the traversal order: ascending
// indices when true, descending otherwise.
type Range struct {
	Lo, Hi    int
	Clockwise bool
}

// RangeFor maps a progress change `from` -> `to` onto the steps
// of a gradient of size `length`.
// Fractions are not clamped: callers must validate them.
func RangeFor(from, to float64, length int) Range {
	lo, hi := math.Min(from, to), math.Max(from, to)
	return Range{
		Lo:        int(math.Floor(float64(length) * lo)),
		Hi:        int(math.Floor(float64(length) * hi)),
		Clockwise: from < to,
	}
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.Hi <= r.Lo {
		return 0
	}
	return r.Hi - r.Lo
}

// Empty is true when there is nothing to draw.
func (r Range) Empty() bool { return r.Len() == 0 }

// First returns the first index visited.
func (r Range) First() int {
	if r.Clockwise {
		return r.Lo
	}
	return r.Hi - 1
}

// Reversed returns the same indices, traversed the other way.
func (r Range) Reversed() Range {
	r.Clockwise = !r.Clockwise
	return r
}

// Union returns the smallest range containing r and `other`,
// keeping the direction of r. Empty ranges are ignored.
func (r Range) Union(other Range) Range {
	if other.Empty() {
		return r
	}
	if r.Empty() {
		other.Clockwise = r.Clockwise
		return other
	}
	if other.Lo < r.Lo {
		r.Lo = other.Lo
	}
	if other.Hi > r.Hi {
		r.Hi = other.Hi
	}
	return r
}

// Indices returns the indices in traversal order.
func (r Range) Indices() []int {
	out := make([]int, 0, r.Len())
	if r.Clockwise {
		for i := r.Lo; i < r.Hi; i++ {
			out = append(out, i)
		}
	} else {
		for i := r.Hi - 1; i >= r.Lo; i-- {
			out = append(out, i)
		}
	}
	return out
}
