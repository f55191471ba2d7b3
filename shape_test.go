package board

import (
	"math"
	"testing"
)

func TestShapeCopyHelpers(t *testing.T) {
	line := NewLine(Pt(0, 0), Pt(2, 0), DefaultStyle())

	moved := Translated(line, 0, 5).(*Line)
	a, b := moved.Endpoints()
	approxPoint(t, "translated start", a, Pt(0, 5))
	approxPoint(t, "translated end", b, Pt(2, 5))

	turned := Rotated(line, math.Pi/2, Pt(0, 0)).(*Line)
	_, tb := turned.Endpoints()
	approxPoint(t, "rotated end", tb, Pt(0, 2))

	grown := Scaled(line, 2, 2).(*Line)
	ga, gb := grown.Endpoints()
	approxPoint(t, "scaled start", ga, Pt(-1, 0))
	approxPoint(t, "scaled end", gb, Pt(3, 0))

	// The original is untouched by all three.
	oa, ob := line.Endpoints()
	approxPoint(t, "original start", oa, Pt(0, 0))
	approxPoint(t, "original end", ob, Pt(2, 0))
}

func TestLineBoundingBox(t *testing.T) {
	line := NewLine(Pt(0, 0), Pt(10, 0), DefaultStyle().WithLineWidth(2))
	thin := line.BoundingBox(IgnoreLineWidth)
	if thin.Height != 0 {
		t.Errorf("geometry box height = %v, want 0", thin.Height)
	}
	thick := line.BoundingBox(UseLineWidth)
	if math.Abs(thick.Height-2) > testEps {
		t.Errorf("stroked box height = %v, want 2", thick.Height)
	}
	approxPoint(t, "center", line.Center(IgnoreLineWidth), Pt(5, 0))
}

func TestArrowHead(t *testing.T) {
	arrow := NewArrow(Pt(0, 0), Pt(10, 0), DefaultStyle())
	head := arrow.HeadPath()
	if !head.Closed() {
		t.Fatal("arrowhead path should be closed")
	}
	if head.Size() != 3 {
		t.Fatalf("arrowhead has %d points, want 3", head.Size())
	}
	approxPoint(t, "tip", head.Point(0), Pt(10, 0))
	// The head must contain points ahead of its base, toward the tip.
	box := head.BoundingBox()
	if box.Right() < 10-testEps {
		t.Errorf("arrowhead box %+v does not reach the tip", box)
	}
	// The arrow bounding box includes the head's lateral extent.
	wide := arrow.BoundingBox(IgnoreLineWidth)
	if wide.Height <= 0 {
		t.Errorf("arrow bbox height = %v, want > 0", wide.Height)
	}
}

func TestDot(t *testing.T) {
	d := NewDot(Pt(3, 4), DefaultStyle().WithLineWidth(2))
	box := d.BoundingBox(UseLineWidth)
	if math.Abs(box.Width-2) > testEps || math.Abs(box.Height-2) > testEps {
		t.Errorf("dot box = %+v, want 2x2", box)
	}
	// Scaling a dot is a no-op on its geometry.
	d.Scale(10, 10)
	approxPoint(t, "position", d.Position(), Pt(3, 4))
	d.ScaleAll(2, 2)
	approxPoint(t, "scaled position", d.Position(), Pt(6, 8))
}

func TestPolylineShape(t *testing.T) {
	p := NewPolyline(NewPath(Pt(0, 0), Pt(4, 0), Pt(4, 4)), DefaultStyle())
	box := p.BoundingBox(IgnoreLineWidth)
	if box.Width != 4 || box.Height != 4 {
		t.Errorf("polyline box = %+v", box)
	}
	// The stored path is a copy of the input.
	src := NewPath(Pt(0, 0))
	poly := NewPolyline(src, DefaultStyle())
	src.Translate(5, 5)
	approxPoint(t, "stored point", poly.Path().Point(0), Pt(0, 0))
}

func TestRectangleShape(t *testing.T) {
	r := NewRectangleShape(Rect{Left: 1, Top: 3, Width: 2, Height: 2}, DefaultStyle())
	if !r.Path().Closed() {
		t.Fatal("rectangle path should be closed")
	}
	if r.Path().Size() != 4 {
		t.Fatalf("rectangle has %d points, want 4", r.Path().Size())
	}
	box := r.BoundingBox(IgnoreLineWidth)
	if box.Left != 1 || box.Top != 3 || box.Width != 2 || box.Height != 2 {
		t.Errorf("rectangle box = %+v", box)
	}
}

func TestSetStyle(t *testing.T) {
	line := NewLine(Pt(0, 0), Pt(1, 0), DefaultStyle())
	line.SetStyle(DefaultStyle().WithPenColor(Red))
	if line.Style().PenColor != Red {
		t.Error("SetStyle did not update the style")
	}
}
