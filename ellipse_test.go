package board

import (
	"math"
	"testing"
)

func TestEllipseAccessors(t *testing.T) {
	e := NewEllipse(Pt(1, 2), 3, 4, 0, DefaultStyle())
	if c := e.CenterPoint(); c != Pt(1, 2) {
		t.Errorf("CenterPoint = %v", c)
	}
	rx, ry := e.Radii()
	if rx != 3 || ry != 4 {
		t.Errorf("Radii = %v, %v", rx, ry)
	}
	if e.IsCircle() {
		t.Error("IsCircle = true for distinct radii")
	}
	if !NewCircle(Pt(0, 0), 2, DefaultStyle()).IsCircle() {
		t.Error("IsCircle = false for a circle")
	}
}

func TestEllipseNegativeRadii(t *testing.T) {
	e := NewEllipse(Pt(0, 0), -3, -4, 0, DefaultStyle())
	rx, ry := e.Radii()
	if rx != 3 || ry != 4 {
		t.Errorf("Radii = %v, %v, want 3, 4", rx, ry)
	}
}

func TestEllipsePointAt(t *testing.T) {
	e := NewEllipse(Pt(1, 1), 2, 1, 0, DefaultStyle())
	approxPoint(t, "PointAt(0)", e.PointAt(0), Pt(3, 1))
	approxPoint(t, "PointAt(pi/2)", e.PointAt(math.Pi/2), Pt(1, 2))

	rot := NewEllipse(Pt(0, 0), 2, 1, math.Pi/2, DefaultStyle())
	approxPoint(t, "rotated PointAt(0)", rot.PointAt(0), Pt(0, 2))
}

func TestEllipseBoundingBox(t *testing.T) {
	e := NewEllipse(Pt(0, 0), 3, 1, 0, DefaultStyle())
	got := e.BoundingBox(IgnoreLineWidth)
	if math.Abs(got.Width-6) > testEps || math.Abs(got.Height-2) > testEps {
		t.Errorf("axis-aligned bbox = %+v, want 6x2", got)
	}

	// Rotating by 90 degrees swaps the extents.
	r := NewEllipse(Pt(0, 0), 3, 1, math.Pi/2, DefaultStyle())
	got = r.BoundingBox(IgnoreLineWidth)
	if math.Abs(got.Width-2) > 1e-6 || math.Abs(got.Height-6) > 1e-6 {
		t.Errorf("rotated bbox = %+v, want 2x6", got)
	}

	// Any sampled point must lie inside the box.
	tilted := NewEllipse(Pt(1, -2), 5, 2, 0.6, DefaultStyle())
	box := tilted.BoundingBox(IgnoreLineWidth).Grow(1e-9)
	for i := 0; i < 64; i++ {
		p := tilted.PointAt(float64(i) / 64 * 2 * math.Pi)
		if !box.Contains(p) {
			t.Errorf("point %v outside bbox %+v", p, box)
		}
	}
}

func TestEllipseUniformScale(t *testing.T) {
	e := NewEllipse(Pt(0, 0), 4, 2, math.Pi/6, DefaultStyle())
	e.Scale(2, 2)
	rx, ry := e.Radii()
	if math.Abs(rx-8) > 1e-9 || math.Abs(ry-4) > 1e-9 {
		t.Errorf("Radii after uniform scale = %v, %v, want 8, 4", rx, ry)
	}
	if math.Abs(e.Angle()-math.Pi/6) > 1e-9 {
		t.Errorf("Angle after uniform scale = %v, want %v", e.Angle(), math.Pi/6)
	}
}

func TestEllipseNonUniformScaleAxisAligned(t *testing.T) {
	e := NewEllipse(Pt(0, 0), 4, 2, 0, DefaultStyle())
	e.Scale(0.5, 3)
	rx, ry := e.Radii()
	if math.Abs(rx-2) > 1e-9 || math.Abs(ry-6) > 1e-9 {
		t.Errorf("Radii = %v, %v, want 2, 6", rx, ry)
	}
}

// Non-uniform scaling of a rotated ellipse goes through the conic form.
// Points sampled on the original, scaled directly, must land on the
// resulting ellipse.
func TestEllipseNonUniformScaleRotated(t *testing.T) {
	scales := []struct {
		name   string
		sx, sy float64
	}{
		{"wide", 2, 1},
		{"narrow", 0.5, 1},
		{"both", 2, 0.5},
	}
	for _, sc := range scales {
		t.Run(sc.name, func(t *testing.T) {
			orig := NewEllipse(Pt(0, 0), 10, 5, math.Pi/6, DefaultStyle())
			scaled := orig.Clone().(*Ellipse)
			scaled.Scale(sc.sx, sc.sy)

			rx, ry := scaled.Radii()
			angle := scaled.Angle()
			sin, cos := math.Sincos(angle)
			for i := 0; i < 32; i++ {
				p := orig.PointAt(float64(i) / 32 * 2 * math.Pi).ScaleXY(sc.sx, sc.sy)
				// Rotate into the scaled ellipse's frame and evaluate
				// the implicit equation.
				u := p.X*cos + p.Y*sin
				v := -p.X*sin + p.Y*cos
				val := u*u/(rx*rx) + v*v/(ry*ry)
				if math.Abs(val-1) > 1e-6 {
					t.Fatalf("scaled sample %d off the ellipse: %v", i, val)
				}
			}
		})
	}
}

// Scaling a rotated ellipse by (2,1) and back by (0.5,1) must recover
// the original radii, angle and center.
func TestEllipseNonUniformScaleRoundTrip(t *testing.T) {
	orig := NewEllipse(Pt(3, -1), 10, 5, math.Pi/6, DefaultStyle())
	e := orig.Clone().(*Ellipse)
	e.Scale(2, 1)
	e.Scale(0.5, 1)

	rx, ry := e.Radii()
	wantRx, wantRy := orig.Radii()
	if math.Abs(rx-wantRx) > 1e-9 || math.Abs(ry-wantRy) > 1e-9 {
		t.Errorf("Radii after round trip = %v, %v, want %v, %v", rx, ry, wantRx, wantRy)
	}
	if math.Abs(e.Angle()-orig.Angle()) > 1e-9 {
		t.Errorf("Angle after round trip = %v, want %v", e.Angle(), orig.Angle())
	}
	if !e.CenterPoint().Approx(orig.CenterPoint(), 1e-9) {
		t.Errorf("Center after round trip = %v, want %v", e.CenterPoint(), orig.CenterPoint())
	}
}

func TestEllipseCircleStaysCircleWhenRotationIrrelevant(t *testing.T) {
	c := NewCircle(Pt(0, 0), 3, DefaultStyle())
	c.Scale(2, 2)
	if !c.IsCircle() {
		t.Error("uniformly scaled circle is no longer a circle")
	}
	rx, _ := c.Radii()
	if math.Abs(rx-6) > 1e-9 {
		t.Errorf("radius = %v, want 6", rx)
	}
}

func TestEllipsePerimeter(t *testing.T) {
	c := NewCircle(Pt(0, 0), 2, DefaultStyle())
	want := 2 * math.Pi * 2
	if got := c.Perimeter(); math.Abs(got-want) > 1e-3 {
		t.Errorf("Perimeter = %v, want %v", got, want)
	}
}

func TestEllipseSampledPath(t *testing.T) {
	e := NewEllipse(Pt(0, 0), 3, 2, 0, DefaultStyle())
	p := e.SampledPath(16, 0)
	if p.Size() != 16 {
		t.Fatalf("Size = %d, want 16", p.Size())
	}
	if !p.Closed() {
		t.Error("sampled path should be closed")
	}
	for i := 0; i < p.Size(); i++ {
		q := p.Point(i)
		val := q.X*q.X/9 + q.Y*q.Y/4
		if math.Abs(val-1) > 1e-6 {
			t.Errorf("sample %d off the ellipse: %v", i, val)
		}
	}
}

func TestEllipseSampledPathInvalidCount(t *testing.T) {
	buf := captureLog(t)
	p := NewEllipse(Pt(0, 0), 1, 1, 0, DefaultStyle()).SampledPath(0, 0)
	if !p.Empty() {
		t.Errorf("Size = %d, want 0", p.Size())
	}
	if buf.Len() == 0 {
		t.Error("expected a warning for a non-positive sample count")
	}
}

func TestEllipseRotate(t *testing.T) {
	e := NewEllipse(Pt(2, 0), 3, 1, 0, DefaultStyle())
	e.Rotate(math.Pi/2, Pt(0, 0))
	approxPoint(t, "center", e.CenterPoint(), Pt(0, 2))
	if math.Abs(e.Angle()-math.Pi/2) > 1e-9 {
		t.Errorf("Angle = %v, want %v", e.Angle(), math.Pi/2)
	}
}
