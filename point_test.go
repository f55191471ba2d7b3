package board

import (
	"math"
	"testing"
)

const testEps = 1e-9

func approxPoint(t *testing.T, name string, got, want Point) {
	t.Helper()
	if math.Abs(got.X-want.X) > testEps || math.Abs(got.Y-want.Y) > testEps {
		t.Errorf("%s = (%v, %v), want (%v, %v)", name, got.X, got.Y, want.X, want.Y)
	}
}

func TestPointArithmetic(t *testing.T) {
	a := Pt(3, 4)
	b := Pt(1, -2)
	approxPoint(t, "Add", a.Add(b), Pt(4, 2))
	approxPoint(t, "Sub", a.Sub(b), Pt(2, 6))
	approxPoint(t, "Mul", a.Mul(2), Pt(6, 8))
	approxPoint(t, "Div", a.Div(2), Pt(1.5, 2))
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
	if got := a.Cross(b); got != -10 {
		t.Errorf("Cross = %v, want -10", got)
	}
	if got := a.Norm(); got != 5 {
		t.Errorf("Norm = %v, want 5", got)
	}
}

func TestPointRotate(t *testing.T) {
	tests := []struct {
		name  string
		p     Point
		angle float64
		want  Point
	}{
		{"quarter turn", Pt(1, 0), math.Pi / 2, Pt(0, 1)},
		{"half turn", Pt(1, 0), math.Pi, Pt(-1, 0)},
		{"negative quarter", Pt(0, 1), -math.Pi / 2, Pt(1, 0)},
		{"full turn", Pt(3, 7), 2 * math.Pi, Pt(3, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			approxPoint(t, "Rotate", tt.p.Rotate(tt.angle), tt.want)
		})
	}
}

func TestPointRotateAround(t *testing.T) {
	got := Pt(2, 1).RotateAround(math.Pi/2, Pt(1, 1))
	approxPoint(t, "RotateAround", got, Pt(1, 2))
}

func TestPointRotatedPI2(t *testing.T) {
	approxPoint(t, "RotatedPI2", Pt(1, 0).RotatedPI2(), Pt(0, 1))
	approxPoint(t, "RotatedPI2", Pt(0, 1).RotatedPI2(), Pt(-1, 0))
}

func TestPointNormalize(t *testing.T) {
	approxPoint(t, "Normalize", Pt(3, 4).Normalize(), Pt(0.6, 0.8))
	// The zero vector has no direction and stays zero.
	approxPoint(t, "Normalize zero", Pt(0, 0).Normalize(), Pt(0, 0))
}

func TestPointArgument(t *testing.T) {
	if got := Pt(0, 1).Argument(); math.Abs(got-math.Pi/2) > testEps {
		t.Errorf("Argument = %v, want %v", got, math.Pi/2)
	}
	if got := Pt(-1, 0).Argument(); math.Abs(got-math.Pi) > testEps {
		t.Errorf("Argument = %v, want %v", got, math.Pi)
	}
}

func TestPointLerp(t *testing.T) {
	approxPoint(t, "Lerp", Pt(0, 0).Lerp(Pt(10, -4), 0.25), Pt(2.5, -1))
	approxPoint(t, "Lerp at 0", Pt(2, 3).Lerp(Pt(5, 5), 0), Pt(2, 3))
	approxPoint(t, "Lerp at 1", Pt(2, 3).Lerp(Pt(5, 5), 1), Pt(5, 5))
}
