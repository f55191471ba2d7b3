package board

import "errors"

// Path errors reported through the package logger when a query degrades.
var (
	// ErrEmptyPath is reported when an operation requires at least one point.
	ErrEmptyPath = errors.New("board: empty path")

	// ErrPathLengthMismatch is reported when MixPaths is given paths with
	// different point counts.
	ErrPathLengthMismatch = errors.New("board: path point counts differ")
)

// Path is an ordered, open or closed sequence of points. A closed path
// does not store the duplicate closing point: the last-to-first segment is
// synthesized by consumers.
//
// The in-place mutators (Translate, Rotate, Scale) are the primitives; the
// copy-returning twins (Translated, Rotated, Scaled) copy then mutate.
type Path struct {
	points []Point
	closed bool
}

// NewPath creates an open path from the given points.
func NewPath(points ...Point) *Path {
	return &Path{points: append([]Point(nil), points...)}
}

// NewClosedPath creates a closed path from the given points.
func NewClosedPath(points ...Point) *Path {
	return &Path{points: append([]Point(nil), points...), closed: true}
}

// Append adds points to the end of the path.
func (p *Path) Append(points ...Point) *Path {
	p.points = append(p.points, points...)
	return p
}

// Size returns the number of stored points.
func (p *Path) Size() int {
	return len(p.points)
}

// Empty reports whether the path has no points.
func (p *Path) Empty() bool {
	return len(p.points) == 0
}

// Point returns the i-th point of the path.
func (p *Path) Point(i int) Point {
	return p.points[i]
}

// SetPoint replaces the i-th point of the path.
func (p *Path) SetPoint(i int, pt Point) {
	p.points[i] = pt
}

// Points returns the stored points. The slice is shared with the path;
// callers must not grow it.
func (p *Path) Points() []Point {
	return p.points
}

// Closed reports whether the path is closed.
func (p *Path) Closed() bool {
	return p.closed
}

// SetClosed marks the path open or closed.
func (p *Path) SetClosed(closed bool) {
	p.closed = closed
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	return &Path{points: append([]Point(nil), p.points...), closed: p.closed}
}

// Translate moves every point of the path in place.
func (p *Path) Translate(dx, dy float64) *Path {
	for i := range p.points {
		p.points[i].X += dx
		p.points[i].Y += dy
	}
	return p
}

// Translated returns a translated copy of the path.
func (p *Path) Translated(dx, dy float64) *Path {
	return p.Clone().Translate(dx, dy)
}

// Rotate rotates every point of the path in place around center.
func (p *Path) Rotate(angle float64, center Point) *Path {
	for i := range p.points {
		p.points[i] = p.points[i].RotateAround(angle, center)
	}
	return p
}

// Rotated returns a rotated copy of the path.
func (p *Path) Rotated(angle float64, center Point) *Path {
	return p.Clone().Rotate(angle, center)
}

// Scale scales every point of the path in place, relative to the center
// of the path's bounding box.
func (p *Path) Scale(sx, sy float64) *Path {
	if len(p.points) == 0 {
		return p
	}
	c := p.BoundingBox().Center()
	for i := range p.points {
		d := p.points[i].Sub(c)
		p.points[i] = c.Add(Point{X: d.X * sx, Y: d.Y * sy})
	}
	return p
}

// Scaled returns a scaled copy of the path.
func (p *Path) Scaled(sx, sy float64) *Path {
	return p.Clone().Scale(sx, sy)
}

// ScaleAll scales every point of the path in place relative to the origin.
func (p *Path) ScaleAll(sx, sy float64) *Path {
	for i := range p.points {
		p.points[i].X *= sx
		p.points[i].Y *= sy
	}
	return p
}

// BoundingBox returns the axis-aligned bounding box of the path's points.
// An empty path has no bounding box: the call logs a warning and returns
// the zero rectangle.
func (p *Path) BoundingBox() Rect {
	if len(p.points) == 0 {
		Logger().Warn("Path.BoundingBox called on an empty path", "err", ErrEmptyPath)
		return Rect{}
	}
	box := RectOf(p.points[0])
	box.GrowToContain(p.points[1:]...)
	return box
}

// signedArea returns twice the shoelace sum over consecutive vertices,
// including the wrap-around edge.
func (p *Path) signedArea() float64 {
	var sum float64
	n := len(p.points)
	for i := 0; i < n; i++ {
		a := p.points[i]
		b := p.points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

// IsClockwise reports whether the path's vertices are ordered clockwise.
// A path with fewer than 3 points is clockwise by convention.
func (p *Path) IsClockwise() bool {
	if len(p.points) < 3 {
		return true
	}
	return p.signedArea() <= 0
}

// IsCounterclockwise reports whether the path's vertices are ordered
// counter-clockwise.
func (p *Path) IsCounterclockwise() bool {
	return !p.IsClockwise()
}

// SetClockwise reverses the point order in place if needed so that the
// path is clockwise.
func (p *Path) SetClockwise() *Path {
	if !p.IsClockwise() {
		p.reverse()
	}
	return p
}

// SetCounterclockwise reverses the point order in place if needed so that
// the path is counter-clockwise.
func (p *Path) SetCounterclockwise() *Path {
	if !p.IsCounterclockwise() {
		p.reverse()
	}
	return p
}

// Clockwise returns a clockwise copy of the path.
func (p *Path) Clockwise() *Path {
	return p.Clone().SetClockwise()
}

// Counterclockwise returns a counter-clockwise copy of the path.
func (p *Path) Counterclockwise() *Path {
	return p.Clone().SetCounterclockwise()
}

func (p *Path) reverse() {
	for i, j := 0, len(p.points)-1; i < j; i, j = i+1, j-1 {
		p.points[i], p.points[j] = p.points[j], p.points[i]
	}
}

// MixPaths returns the element-wise linear interpolation between two paths
// of equal length (t=0 returns a, t=1 returns b). Paths are never resampled
// to match lengths: on a point-count mismatch the call logs a warning and
// returns a copy of a unchanged.
func MixPaths(a, b *Path, t float64) *Path {
	if a.Size() != b.Size() {
		Logger().Warn("MixPaths called with mismatched path lengths",
			"err", ErrPathLengthMismatch, "lenA", a.Size(), "lenB", b.Size())
		return a.Clone()
	}
	out := a.Clone()
	for i := range out.points {
		out.points[i] = a.points[i].Lerp(b.points[i], t)
	}
	return out
}

// Transformed returns a copy of the path with the transform applied to
// every point.
func (p *Path) Transformed(m Matrix) *Path {
	out := p.Clone()
	for i := range out.points {
		out.points[i] = m.Apply(out.points[i])
	}
	return out
}

// simplified returns the path's points with consecutive duplicates removed.
// For a closed path the wrap-around duplicate is removed as well.
func (p *Path) simplified() []Point {
	if len(p.points) == 0 {
		return nil
	}
	out := make([]Point, 0, len(p.points))
	out = append(out, p.points[0])
	for _, pt := range p.points[1:] {
		if pt != out[len(out)-1] {
			out = append(out, pt)
		}
	}
	if p.closed && len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}
