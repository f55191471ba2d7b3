package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRectCorners(t *testing.T) {
	r := Rect{Left: 1, Top: 5, Width: 4, Height: 3}
	if got := r.Right(); got != 5 {
		t.Errorf("Right = %v, want 5", got)
	}
	if got := r.Bottom(); got != 2 {
		t.Errorf("Bottom = %v, want 2", got)
	}
	if got := r.TopLeft(); got != Pt(1, 5) {
		t.Errorf("TopLeft = %v", got)
	}
	if got := r.BottomRight(); got != Pt(5, 2) {
		t.Errorf("BottomRight = %v", got)
	}
	if got := r.Center(); got != Pt(3, 3.5) {
		t.Errorf("Center = %v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 0, Top: 10, Width: 10, Height: 10}
	for _, p := range []Point{Pt(0, 0), Pt(10, 10), Pt(5, 5)} {
		if !r.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	for _, p := range []Point{Pt(-1, 5), Pt(5, 11), Pt(11, 5), Pt(5, -1)} {
		if r.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{Left: 0, Top: 2, Width: 2, Height: 2}
	b := Rect{Left: 3, Top: 5, Width: 1, Height: 1}
	want := Rect{Left: 0, Top: 5, Width: 4, Height: 5}
	if diff := cmp.Diff(want, a.Union(b), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Union mismatch (-want +got):\n%s", diff)
	}
}

func TestRectGrow(t *testing.T) {
	r := Rect{Left: 1, Top: 4, Width: 2, Height: 3}
	want := Rect{Left: 0, Top: 5, Width: 4, Height: 5}
	if diff := cmp.Diff(want, r.Grow(1), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Grow mismatch (-want +got):\n%s", diff)
	}
}

func TestRectGrowToContain(t *testing.T) {
	r := RectOf(Pt(1, 1))
	r.GrowToContain(Pt(3, 4), Pt(-2, 0))
	want := Rect{Left: -2, Top: 4, Width: 5, Height: 4}
	if diff := cmp.Diff(want, r, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("GrowToContain mismatch (-want +got):\n%s", diff)
	}
}

func TestRectIntersection(t *testing.T) {
	a := Rect{Left: 0, Top: 10, Width: 10, Height: 10}
	b := Rect{Left: 5, Top: 8, Width: 10, Height: 5}
	got := a.Intersection(b)
	want := Rect{Left: 5, Top: 8, Width: 5, Height: 5}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Intersection mismatch (-want +got):\n%s", diff)
	}
	if a.Intersects(b) != true {
		t.Error("Intersects = false, want true")
	}
}
