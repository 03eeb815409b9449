package ringpath

import (
	"reflect"
	"testing"
)

func TestRangeFor(t *testing.T) {
	if r := RangeFor(0.25, 0.75, 100); r != (Range{25, 75, true}) {
		t.Errorf("unexpected %v", r)
	}
	if r := RangeFor(0.75, 0.25, 100); r != (Range{25, 75, false}) {
		t.Errorf("unexpected %v", r)
	}
	if r := RangeFor(0, 1, 720); r != (Range{0, 720, true}) {
		t.Errorf("unexpected %v", r)
	}
	r := RangeFor(0.4, 0.4, 100)
	if !r.Empty() || r.Clockwise {
		t.Errorf("expected empty range, got %v", r)
	}
}

func TestRangeIndices(t *testing.T) {
	r := Range{Lo: 3, Hi: 7, Clockwise: true}
	if got := r.Indices(); !reflect.DeepEqual(got, []int{3, 4, 5, 6}) {
		t.Errorf("unexpected %v", got)
	}
	if got := r.Reversed().Indices(); !reflect.DeepEqual(got, []int{6, 5, 4, 3}) {
		t.Errorf("unexpected %v", got)
	}
	if r.First() != 3 || r.Reversed().First() != 6 {
		t.Error("unexpected first index")
	}
	if len((Range{Lo: 5, Hi: 2}).Indices()) != 0 {
		t.Error("expected no indices")
	}
}

func TestRangeUnion(t *testing.T) {
	r := Range{Lo: 10, Hi: 20, Clockwise: false}
	if got := r.Union(Range{Lo: 5, Hi: 12}); got != (Range{5, 20, false}) {
		t.Errorf("unexpected %v", got)
	}
	if got := r.Union(Range{}); got != r {
		t.Errorf("unexpected %v", got)
	}
	if got := (Range{Clockwise: true}).Union(Range{Lo: 1, Hi: 4}); got != (Range{1, 4, true}) {
		t.Errorf("unexpected %v", got)
	}
}
