package board

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// hump is a single segment rising to y = 7.5 at t = 0.5 and returning to
// the baseline.
func hump(t *testing.T) *Bezier {
	t.Helper()
	b, err := NewBezier(
		[]Point{Pt(0, 0), Pt(10, 0)},
		[]Point{Pt(0, 10), Pt(10, 10)},
		DefaultStyle(),
	)
	require.NoError(t, err)
	return b
}

func TestNewBezierValidation(t *testing.T) {
	_, err := NewBezier([]Point{Pt(0, 0)}, nil, DefaultStyle())
	require.ErrorIs(t, err, ErrControlCount)

	_, err = NewBezier([]Point{Pt(0, 0), Pt(1, 0)}, []Point{Pt(0, 1)}, DefaultStyle())
	require.ErrorIs(t, err, ErrControlCount)

	_, err = NewBezier([]Point{Pt(0, 0), Pt(1, 0)}, []Point{Pt(0, 1), Pt(1, 1)}, DefaultStyle())
	require.NoError(t, err)
}

func TestBezierEvalEndpoints(t *testing.T) {
	b := hump(t)
	approxPoint(t, "Eval(0, 0)", b.Eval(0, 0), Pt(0, 0))
	approxPoint(t, "Eval(0, 1)", b.Eval(0, 1), Pt(10, 0))
	// At t = 0.5 the hump reaches 3/4 of the control height.
	approxPoint(t, "Eval(0, 0.5)", b.Eval(0, 0.5), Pt(5, 7.5))
}

func TestBezierExtremums(t *testing.T) {
	b := hump(t)
	p := b.PathThroughLocalExtremums()
	top := math.Inf(-1)
	for i := 0; i < p.Size(); i++ {
		top = math.Max(top, p.Point(i).Y)
	}
	if math.Abs(top-7.5) > 1e-9 {
		t.Errorf("extremum path peak = %v, want 7.5", top)
	}
}

func TestBezierBoundingBox(t *testing.T) {
	b := hump(t)
	box := b.BoundingBox(IgnoreLineWidth)
	if math.Abs(box.Top-7.5) > 1e-9 {
		t.Errorf("bbox top = %v, want 7.5", box.Top)
	}
	if math.Abs(box.Left) > 1e-9 || math.Abs(box.Right()-10) > 1e-9 {
		t.Errorf("bbox spans [%v, %v], want [0, 10]", box.Left, box.Right())
	}

	// With the stroke accounted for, the box must only grow.
	wide := b.BoundingBox(UseLineWidth)
	if wide.Top < box.Top || wide.Left > box.Left {
		t.Errorf("UseLineWidth box %+v smaller than geometry box %+v", wide, box)
	}
}

func TestBezierDiscretizedPath(t *testing.T) {
	b := hump(t)
	p := b.DiscretizedPath()
	require.Greater(t, p.Size(), 50)
	approxPoint(t, "first", p.Point(0), Pt(0, 0))
	approxPoint(t, "last", p.Point(p.Size()-1), Pt(10, 0))
}

func TestSmoothedPolyline(t *testing.T) {
	path := NewPath(Pt(0, 0), Pt(5, 5), Pt(10, 0))
	b, err := SmoothedPolyline(path, 1, DefaultStyle())
	require.NoError(t, err)
	require.Equal(t, 2, b.Segments())
	// The curve passes through every original vertex.
	approxPoint(t, "anchor 0", b.Eval(0, 0), Pt(0, 0))
	approxPoint(t, "anchor 1", b.Eval(0, 1), Pt(5, 5))
	approxPoint(t, "anchor 2", b.Eval(1, 1), Pt(10, 0))
}

func TestBezierConcat(t *testing.T) {
	a := hump(t)
	b := hump(t)
	b.Translate(20, 0)
	wantSegments := a.Segments() + b.Segments() + 1
	c := a.Concat(b)
	require.Equal(t, wantSegments, c.Segments())
	approxPoint(t, "start", c.Eval(0, 0), Pt(0, 0))
	approxPoint(t, "end", c.Eval(c.Segments()-1, 1), Pt(30, 0))
}

func TestBezierScaleKeepsShape(t *testing.T) {
	b := hump(t)
	b.ScaleAll(2, 3)
	approxPoint(t, "end anchor", b.Eval(b.Segments()-1, 1), Pt(20, 0))
	approxPoint(t, "midpoint", b.Eval(0, 0.5), Pt(10, 22.5))
}

func TestBezierCloneIsDeep(t *testing.T) {
	a := hump(t)
	c := a.Clone().(*Bezier)
	c.Translate(100, 0)
	approxPoint(t, "original start", a.Eval(0, 0), Pt(0, 0))
	approxPoint(t, "clone start", c.Eval(0, 0), Pt(100, 0))
}
