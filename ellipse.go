package board

import "math"

// Ellipse is an ellipse with an explicit rotation angle. The shape stores
// (center, xRadius, yRadius, angle) rather than a general conic matrix, so
// rotation and non-uniform scaling recompute the stored parametrization in
// closed form.
//
// The angle is kept normalized in (-pi/2, pi/2]: an ellipse is symmetric
// under rotation by pi, so angles are folded by pi.
type Ellipse struct {
	styledShape
	center Point
	rx, ry float64
	angle  float64
}

// NewEllipse creates an ellipse with the given center, radii, rotation
// angle, and style.
func NewEllipse(center Point, rx, ry, angle float64, style Style) *Ellipse {
	return &Ellipse{
		styledShape: styledShape{style: style},
		center:      center,
		rx:          math.Abs(rx),
		ry:          math.Abs(ry),
		angle:       foldEllipseAngle(angle),
	}
}

// NewCircle creates a circle, an ellipse with equal radii.
func NewCircle(center Point, radius float64, style Style) *Ellipse {
	return NewEllipse(center, radius, radius, 0, style)
}

// Name returns "Ellipse".
func (e *Ellipse) Name() string { return "Ellipse" }

// Clone returns a deep copy of the ellipse.
func (e *Ellipse) Clone() Shape {
	c := *e
	return &c
}

// CenterPoint returns the ellipse center.
func (e *Ellipse) CenterPoint() Point { return e.center }

// Radii returns the x and y radii.
func (e *Ellipse) Radii() (rx, ry float64) { return e.rx, e.ry }

// Angle returns the rotation angle, normalized in (-pi/2, pi/2].
func (e *Ellipse) Angle() float64 { return e.angle }

// IsCircle reports whether the two radii coincide.
func (e *Ellipse) IsCircle() bool { return e.rx == e.ry }

// Translate moves the ellipse in place.
func (e *Ellipse) Translate(dx, dy float64) {
	e.center.X += dx
	e.center.Y += dy
}

// Rotate rotates the ellipse in place around center. The new angle is
// recovered from a representative axis point rotated together with the
// ellipse center, so rotation about an external point stays exact.
func (e *Ellipse) Rotate(angle float64, center Point) {
	axis := e.center.Add(Point{X: e.rx}.Rotate(e.angle))
	newCenter := e.center.RotateAround(angle, center)
	newAxis := axis.RotateAround(angle, center)
	e.center = newCenter
	e.angle = foldEllipseAngle(newAxis.Sub(newCenter).Argument())
}

// Scale scales the ellipse in place relative to its own center. For a
// rotated ellipse this re-diagonalizes the implicit conic form (see
// scaleAxes); the line width scales by the larger of sx and sy.
func (e *Ellipse) Scale(sx, sy float64) {
	e.scaleAxes(sx, sy)
	e.style.LineWidth *= math.Max(sx, sy)
}

// ScaleAll scales the ellipse's absolute coordinates relative to the
// origin.
func (e *Ellipse) ScaleAll(sx, sy float64) {
	e.center = e.center.ScaleXY(sx, sy)
	e.scaleAxes(sx, sy)
	e.style.LineWidth *= math.Max(sx, sy)
}

// scaleAxes applies a non-uniform scale to the radii and angle. When the
// ellipse is axis-aligned the radii scale directly. Otherwise the implicit
// conic coefficients (a, b, c) of a*x^2 + b*x*y + c*y^2 = 1 are derived
// from the current rotation and radii, rescaled by 1/sx^2, 1/(sx*sy) and
// 1/sy^2 (scaling point coordinates scales the quadratic form inversely),
// and the new angle and radii are recovered by diagonalizing the rescaled
// conic in closed form. Sampling-and-fitting would drift under repeated
// scaling; the closed form does not.
func (e *Ellipse) scaleAxes(sx, sy float64) {
	if e.angle == 0 {
		e.rx *= sx
		e.ry *= sy
		return
	}

	sin, cos := math.Sincos(e.angle)
	invRx2 := 1 / (e.rx * e.rx)
	invRy2 := 1 / (e.ry * e.ry)
	a := cos*cos*invRx2 + sin*sin*invRy2
	b := 2 * sin * cos * (invRx2 - invRy2)
	c := sin*sin*invRx2 + cos*cos*invRy2

	a /= sx * sx
	b /= sx * sy
	c /= sy * sy

	const eps = 1e-12
	switch {
	case math.Abs(b) < eps:
		e.angle = 0
		e.rx = 1 / math.Sqrt(a)
		e.ry = 1 / math.Sqrt(c)
	case math.Abs(a-c) < eps:
		e.angle = math.Pi / 4
		e.rx = 1 / math.Sqrt(a+b/2)
		e.ry = 1 / math.Sqrt(a-b/2)
	default:
		r := b / (a - c)
		// k carries the sign of (a-c) so the eigenvalues pair with the
		// half-angle below without an explicit swap.
		k := math.Sqrt(1+r*r) * (a - c)
		e.angle = 0.5 * math.Atan(r)
		e.rx = 1 / math.Sqrt(0.5*(a+c+k))
		e.ry = 1 / math.Sqrt(0.5*(a+c-k))
	}
	e.angle = foldEllipseAngle(e.angle)
}

// PointAt returns the point of the ellipse boundary at parameter t, in
// radians over the unrotated parametrization.
func (e *Ellipse) PointAt(t float64) Point {
	sin, cos := math.Sincos(t)
	return e.center.Add(Point{X: e.rx * cos, Y: e.ry * sin}.Rotate(e.angle))
}

// BoundingBox returns the axis-aligned bounding box of the ellipse. For a
// rotated ellipse the box corners come from the four closed-form critical
// parameter values where the tangent is horizontal or vertical, not from
// numeric optimization.
func (e *Ellipse) BoundingBox(flag LineWidthFlag) Rect {
	var box Rect
	if e.angle == 0 {
		box = Rect{
			Left:   e.center.X - e.rx,
			Top:    e.center.Y + e.ry,
			Width:  2 * e.rx,
			Height: 2 * e.ry,
		}
	} else {
		sin, cos := math.Sincos(e.angle)
		tx := math.Atan2(-e.ry*sin, e.rx*cos)
		ty := math.Atan2(e.ry*cos, e.rx*sin)
		box = RectOf(e.PointAt(tx))
		box.GrowToContain(e.PointAt(tx+math.Pi), e.PointAt(ty), e.PointAt(ty+math.Pi))
	}
	if flag == UseLineWidth && e.style.LineWidth > 0 {
		box = box.Grow(e.style.LineWidth / 2)
	}
	return box
}

// Center returns the center of the ellipse's bounding box, which is the
// ellipse center.
func (e *Ellipse) Center(LineWidthFlag) Point {
	return e.center
}

// perimeterStep is the fixed integration step, in radians, of the
// perimeter integral.
const perimeterStep = 1e-4

// Perimeter returns the circumference of the ellipse, computed as a
// fixed-step Riemann sum over the parametric speed.
func (e *Ellipse) Perimeter() float64 {
	var sum float64
	for t := 0.0; t < 2*math.Pi; t += perimeterStep {
		sum += math.Hypot(e.rx*math.Sin(t), e.ry*math.Cos(t)) * perimeterStep
	}
	return sum
}

// SampledPath returns a closed path of n points distributed approximately
// uniformly by arc length along the ellipse boundary (not uniformly by
// angle: the two differ markedly on eccentric ellipses). startQuadrant
// (0..3) selects the quadrant boundary where sampling starts.
func (e *Ellipse) SampledPath(n int, startQuadrant int) *Path {
	if n <= 0 {
		Logger().Warn("Ellipse.SampledPath called with a non-positive sample count", "n", n)
		return NewClosedPath()
	}
	spacing := e.Perimeter() / float64(n)
	start := float64(startQuadrant) * math.Pi / 2

	path := NewClosedPath(e.PointAt(start))
	var travelled float64
	emitted := 1
	for t := start; emitted < n && t < start+2*math.Pi; t += perimeterStep {
		travelled += math.Hypot(e.rx*math.Sin(t), e.ry*math.Cos(t)) * perimeterStep
		if travelled >= float64(emitted)*spacing {
			path.Append(e.PointAt(t))
			emitted++
		}
	}
	return path
}

// foldEllipseAngle normalizes an ellipse rotation angle into
// (-pi/2, pi/2] by folding by pi.
func foldEllipseAngle(a float64) float64 {
	for a > math.Pi/2 {
		a -= math.Pi
	}
	for a <= -math.Pi/2 {
		a += math.Pi
	}
	return a
}
