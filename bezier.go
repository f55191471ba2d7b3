package board

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrControlCount is returned when a Bezier is built with a control-point
// count that does not match its anchor-point count.
var ErrControlCount = errors.New("board: control count must be 2*(len(points)-1)")

// Bezier is a piecewise cubic Bezier curve. It stores a path of anchor
// points and a parallel path holding two control points per segment:
// segment i runs from anchor i to anchor i+1 with controls 2i and 2i+1.
type Bezier struct {
	styledShape
	anchors  *Path
	controls *Path
}

// NewBezier creates a Bezier curve from anchor and control points. It
// returns ErrControlCount unless len(controls) == 2*(len(points)-1) with
// at least two anchors.
func NewBezier(points, controls []Point, style Style) (*Bezier, error) {
	if len(points) < 2 || len(controls) != 2*(len(points)-1) {
		return nil, fmt.Errorf("%w: %d points, %d controls", ErrControlCount, len(points), len(controls))
	}
	return &Bezier{
		styledShape: styledShape{style: style},
		anchors:     NewPath(points...),
		controls:    NewPath(controls...),
	}, nil
}

// SmoothedPolyline converts a polyline into a Bezier curve passing through
// the same vertices. Each control point is placed along the local tangent
// direction, the normalized vector from the previous to the next vertex,
// at 0.3*roundness of the segment length (a Catmull-Rom-like heuristic,
// not a true spline fit).
func SmoothedPolyline(path *Path, roundness float64, style Style) (*Bezier, error) {
	pts := path.Points()
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: polyline needs at least 2 points", ErrControlCount)
	}
	tangent := func(i int) Point {
		prev := pts[max(i-1, 0)]
		next := pts[min(i+1, len(pts)-1)]
		return next.Sub(prev).Normalize()
	}
	controls := make([]Point, 0, 2*(len(pts)-1))
	for i := 0; i+1 < len(pts); i++ {
		length := pts[i+1].Sub(pts[i]).Norm()
		offset := 0.3 * roundness * length
		controls = append(controls,
			pts[i].Add(tangent(i).Mul(offset)),
			pts[i+1].Sub(tangent(i+1).Mul(offset)))
	}
	return NewBezier(pts, controls, style)
}

// Name returns "Bezier".
func (b *Bezier) Name() string { return "Bezier" }

// Clone returns a deep copy of the curve.
func (b *Bezier) Clone() Shape {
	return &Bezier{
		styledShape: b.styledShape,
		anchors:     b.anchors.Clone(),
		controls:    b.controls.Clone(),
	}
}

// Segments returns the number of cubic segments.
func (b *Bezier) Segments() int {
	return b.anchors.Size() - 1
}

// Anchors returns the curve's anchor path.
func (b *Bezier) Anchors() *Path { return b.anchors }

// Controls returns the curve's control path.
func (b *Bezier) Controls() *Path { return b.controls }

// segment returns the four control points of segment i.
func (b *Bezier) segment(i int) (p0, c1, c2, p3 Point) {
	return b.anchors.Point(i), b.controls.Point(2 * i), b.controls.Point(2*i + 1), b.anchors.Point(i + 1)
}

// Eval returns the point of segment i at parameter t in [0, 1], using the
// cubic Bernstein basis.
func (b *Bezier) Eval(i int, t float64) Point {
	p0, c1, c2, p3 := b.segment(i)
	return evalCubic(p0, c1, c2, p3, t)
}

func evalCubic(p0, c1, c2, p3 Point, t float64) Point {
	u := 1 - t
	return p0.Mul(u * u * u).
		Add(c1.Mul(3 * u * u * t)).
		Add(c2.Mul(3 * u * t * t)).
		Add(p3.Mul(t * t * t))
}

// discretizationStep is the fixed parameter step of DiscretizedPath.
const discretizationStep = 0.01

// DiscretizedPath returns the curve sampled with a fixed parameter step, a
// simple non-adaptive tessellation. Prefer PathThroughLocalExtremums for
// bounding boxes: it is both tighter and far smaller.
func (b *Bezier) DiscretizedPath() *Path {
	path := NewPath()
	for i := 0; i < b.Segments(); i++ {
		for t := 0.0; t < 1.0; t += discretizationStep {
			path.Append(b.Eval(i, t))
		}
	}
	path.Append(b.anchors.Point(b.anchors.Size() - 1))
	return path
}

// PathThroughLocalExtremums returns the open path through the curve's
// segment endpoints and every local extremum along either axis. Per
// segment the derivative is a quadratic in t per axis; its roots in (0, 1)
// are collected (deduplicated by near-equality) together with the segment
// start, and the curve is evaluated at exactly those parameter values.
// The result is the minimal point set whose bounding box bounds the curve.
func (b *Bezier) PathThroughLocalExtremums() *Path {
	path := NewPath()
	for i := 0; i < b.Segments(); i++ {
		p0, c1, c2, p3 := b.segment(i)
		ts := []float64{0}
		ts = appendExtremumParams(ts, p0.X, c1.X, c2.X, p3.X)
		ts = appendExtremumParams(ts, p0.Y, c1.Y, c2.Y, p3.Y)
		slices.Sort(ts)
		last := math.Inf(-1)
		for _, t := range ts {
			if t-last < 1e-9 {
				continue
			}
			last = t
			path.Append(evalCubic(p0, c1, c2, p3, t))
		}
	}
	path.Append(b.anchors.Point(b.anchors.Size() - 1))
	return path
}

// appendExtremumParams appends the parameters in (0, 1) where the cubic
// with the given one-axis control values has a horizontal derivative.
func appendExtremumParams(ts []float64, p0, c1, c2, p3 float64) []float64 {
	a := p3 - 3*c2 + 3*c1 - p0
	bb := 2 * (p0 - 2*c1 + c2)
	c := c1 - p0
	for _, t := range SolveQuadraticInUnitInterval(a, bb, c) {
		if t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	return ts
}

// Translate moves the curve in place.
func (b *Bezier) Translate(dx, dy float64) {
	b.anchors.Translate(dx, dy)
	b.controls.Translate(dx, dy)
}

// Rotate rotates the curve in place around center.
func (b *Bezier) Rotate(angle float64, center Point) {
	b.anchors.Rotate(angle, center)
	b.controls.Rotate(angle, center)
}

// Scale scales the curve in place relative to the center of its anchor
// bounding box. Control points are scaled relative to their anchor points
// rather than as absolute coordinates: the anchor-to-control offsets are
// scaled and re-added to the already-scaled anchors, which keeps the
// curvature consistent under translate-then-scale composition.
func (b *Bezier) Scale(sx, sy float64) {
	center := b.anchors.BoundingBox().Center()
	b.scaleAnchored(func(p Point) Point {
		d := p.Sub(center)
		return center.Add(Point{X: d.X * sx, Y: d.Y * sy})
	}, sx, sy)
}

// ScaleAll scales the curve's absolute coordinates relative to the origin,
// with the same anchor-relative control handling as Scale.
func (b *Bezier) ScaleAll(sx, sy float64) {
	b.scaleAnchored(func(p Point) Point {
		return p.ScaleXY(sx, sy)
	}, sx, sy)
}

func (b *Bezier) scaleAnchored(scalePoint func(Point) Point, sx, sy float64) {
	for i := 0; i < b.Segments(); i++ {
		d1 := b.controls.Point(2 * i).Sub(b.anchors.Point(i)).ScaleXY(sx, sy)
		d2 := b.controls.Point(2*i + 1).Sub(b.anchors.Point(i + 1)).ScaleXY(sx, sy)
		b.controls.SetPoint(2*i, d1)   // offsets stashed until anchors move
		b.controls.SetPoint(2*i+1, d2) //
	}
	for i := 0; i < b.anchors.Size(); i++ {
		b.anchors.SetPoint(i, scalePoint(b.anchors.Point(i)))
	}
	for i := 0; i < b.Segments(); i++ {
		b.controls.SetPoint(2*i, b.anchors.Point(i).Add(b.controls.Point(2*i)))
		b.controls.SetPoint(2*i+1, b.anchors.Point(i+1).Add(b.controls.Point(2*i+1)))
	}
}

// Concat appends another curve to this one. When the end of the receiver
// does not coincide with the start of other, two control points are
// synthesized at one third of the gap along the gap direction, an
// auto-smooth policy keeping the joint visually smooth rather than a hard
// geometric requirement.
func (b *Bezier) Concat(other *Bezier) *Bezier {
	last := b.anchors.Point(b.anchors.Size() - 1)
	first := other.anchors.Point(0)
	if last != first {
		gap := first.Sub(last)
		b.controls.Append(last.Add(gap.Div(3)), first.Sub(gap.Div(3)))
		b.anchors.Append(first)
	}
	b.anchors.Append(other.anchors.Points()[1:]...)
	b.controls.Append(other.controls.Points()...)
	return b
}

// BoundingBox returns the bounding box of the curve, computed from the
// local-extremum path rather than from oversampling. With UseLineWidth the
// box is inflated by the stroked outline of that path.
func (b *Bezier) BoundingBox(flag LineWidthFlag) Rect {
	extremums := b.PathThroughLocalExtremums()
	if flag == UseLineWidth && b.style.LineWidth > 0 {
		return PathBoundingBox(extremums, b.style.LineWidth, b.style.LineCap, b.style.LineJoin, DefaultMiterLimit)
	}
	return extremums.BoundingBox()
}

// Center returns the center of the curve's bounding box.
func (b *Bezier) Center(flag LineWidthFlag) Point {
	return shapeCenter(b, flag)
}

