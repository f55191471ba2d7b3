package board

import "math"

// Line is a straight segment between two points.
type Line struct {
	styledShape
	a, b Point
}

// NewLine creates a line from a to b.
func NewLine(a, b Point, style Style) *Line {
	return &Line{styledShape: styledShape{style: style}, a: a, b: b}
}

// Name returns "Line".
func (l *Line) Name() string { return "Line" }

// Clone returns a deep copy of the line.
func (l *Line) Clone() Shape {
	c := *l
	return &c
}

// Endpoints returns the two endpoints of the line.
func (l *Line) Endpoints() (a, b Point) { return l.a, l.b }

// Path returns the line as an open two-point path.
func (l *Line) Path() *Path {
	return NewPath(l.a, l.b)
}

// Translate moves the line in place.
func (l *Line) Translate(dx, dy float64) {
	d := Point{X: dx, Y: dy}
	l.a = l.a.Add(d)
	l.b = l.b.Add(d)
}

// Rotate rotates the line in place around center.
func (l *Line) Rotate(angle float64, center Point) {
	l.a = l.a.RotateAround(angle, center)
	l.b = l.b.RotateAround(angle, center)
}

// Scale scales the line in place relative to its own center.
func (l *Line) Scale(sx, sy float64) {
	c := l.a.Add(l.b).Div(2)
	l.a = c.Add(l.a.Sub(c).ScaleXY(sx, sy))
	l.b = c.Add(l.b.Sub(c).ScaleXY(sx, sy))
}

// ScaleAll scales the line's absolute coordinates relative to the origin.
func (l *Line) ScaleAll(sx, sy float64) {
	l.a = l.a.ScaleXY(sx, sy)
	l.b = l.b.ScaleXY(sx, sy)
}

// BoundingBox returns the line's bounding box, stroke-aware under
// UseLineWidth.
func (l *Line) BoundingBox(flag LineWidthFlag) Rect {
	path := l.Path()
	if flag == UseLineWidth && l.style.LineWidth > 0 {
		return PathBoundingBox(path, l.style.LineWidth, l.style.LineCap, l.style.LineJoin, DefaultMiterLimit)
	}
	return path.BoundingBox()
}

// Center returns the midpoint of the line.
func (l *Line) Center(LineWidthFlag) Point {
	return l.a.Add(l.b).Div(2)
}

// Arrow is a line with a triangular head at its second endpoint.
type Arrow struct {
	Line
}

// arrowheadRatio scales the head size relative to the line width.
const arrowheadRatio = 2.5

// NewArrow creates an arrow from a to b, the head pointing at b.
func NewArrow(a, b Point, style Style) *Arrow {
	return &Arrow{Line: *NewLine(a, b, style)}
}

// Name returns "Arrow".
func (a *Arrow) Name() string { return "Arrow" }

// Clone returns a deep copy of the arrow.
func (a *Arrow) Clone() Shape {
	c := *a
	return &c
}

// HeadPath returns the closed triangular path of the arrowhead.
func (a *Arrow) HeadPath() *Path {
	size := math.Max(a.style.LineWidth, 0.5) * arrowheadRatio
	dir := a.b.Sub(a.a).Normalize()
	if dir == (Point{}) {
		dir = Point{X: 1}
	}
	side := dir.RotatedPI2().Mul(size / 2)
	base := a.b.Sub(dir.Mul(size * 2))
	return NewClosedPath(a.b, base.Add(side), base.Sub(side))
}

// BoundingBox returns the arrow's bounding box including the head.
func (a *Arrow) BoundingBox(flag LineWidthFlag) Rect {
	box := a.Line.BoundingBox(flag)
	head := a.HeadPath().BoundingBox()
	return box.Union(head)
}

// Center returns the center of the arrow's bounding box.
func (a *Arrow) Center(flag LineWidthFlag) Point {
	return shapeCenter(a, flag)
}
