package board

import "math"

// Rect is an axis-aligned rectangle. Top is the maximum y coordinate:
// the library uses a "y increases upward" convention, so the bottom edge
// is at Top - Height. Well-formed rectangles have Width >= 0 and
// Height >= 0; Intersection may return a rectangle with negative extents
// when the inputs do not overlap.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// RectOf returns the degenerate zero-size rectangle containing exactly p.
// It is the usual seed for bounding-box accumulation.
func RectOf(p Point) Rect {
	return Rect{Left: p.X, Top: p.Y}
}

// Right returns the maximum x coordinate.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the minimum y coordinate.
func (r Rect) Bottom() float64 {
	return r.Top - r.Height
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.Left, Y: r.Top}
}

// TopRight returns the top-right corner.
func (r Rect) TopRight() Point {
	return Point{X: r.Left + r.Width, Y: r.Top}
}

// BottomLeft returns the bottom-left corner.
func (r Rect) BottomLeft() Point {
	return Point{X: r.Left, Y: r.Top - r.Height}
}

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point {
	return Point{X: r.Left + r.Width, Y: r.Top - r.Height}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top - r.Height/2}
}

// Diameter returns the length of the rectangle's diagonal.
func (r Rect) Diameter() float64 {
	return math.Hypot(r.Width, r.Height)
}

// Contains reports whether the point lies inside or on the boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Left+r.Width &&
		p.Y <= r.Top && p.Y >= r.Top-r.Height
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.Left <= o.Left+o.Width && o.Left <= r.Left+r.Width &&
		r.Top-r.Height <= o.Top && o.Top-o.Height <= r.Top
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(o Rect) Rect {
	left := math.Min(r.Left, o.Left)
	top := math.Max(r.Top, o.Top)
	right := math.Max(r.Left+r.Width, o.Left+o.Width)
	bottom := math.Min(r.Top-r.Height, o.Top-o.Height)
	return Rect{Left: left, Top: top, Width: right - left, Height: top - bottom}
}

// Intersection returns the overlap of the two rectangles. When the inputs
// do not overlap the result has negative Width or Height; callers that
// require a valid rectangle must check Intersects first.
func (r Rect) Intersection(o Rect) Rect {
	left := math.Max(r.Left, o.Left)
	top := math.Min(r.Top, o.Top)
	right := math.Min(r.Left+r.Width, o.Left+o.Width)
	bottom := math.Max(r.Top-r.Height, o.Top-o.Height)
	return Rect{Left: left, Top: top, Width: right - left, Height: top - bottom}
}

// Grow returns the rectangle expanded by margin in all four directions.
func (r Rect) Grow(margin float64) Rect {
	return Rect{
		Left:   r.Left - margin,
		Top:    r.Top + margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// GrowToContain expands the rectangle in place so that it contains the
// given points. A rectangle seeded with RectOf grows from that point;
// there is no sentinel "uninitialized" state.
func (r *Rect) GrowToContain(points ...Point) {
	for _, p := range points {
		if p.X < r.Left {
			r.Width += r.Left - p.X
			r.Left = p.X
		} else if p.X > r.Left+r.Width {
			r.Width = p.X - r.Left
		}
		if p.Y > r.Top {
			r.Height += p.Y - r.Top
			r.Top = p.Y
		} else if p.Y < r.Top-r.Height {
			r.Height = r.Top - p.Y
		}
	}
}

// IsNull reports whether the rectangle is the zero value.
func (r Rect) IsNull() bool {
	return r == Rect{}
}
