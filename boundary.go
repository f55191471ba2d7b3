package board

import "math"

// Stroke-outline computation: turns a zero-width path plus stroke width,
// cap style and join style into the polygon boundary of the rendered
// stroke. Every stroke-aware bounding-box query goes through here; format
// writers and shapes never re-implement this geometry.

const boundaryEps = 1e-12

// PathBoundaryPoints returns the ordered points forming the polygon that
// bounds the region obtained by stroking path with the given width, cap
// and join. miterLimit is the usual SVG/PostScript ratio capping how far a
// miter may extend before falling back to a bevel (use DefaultMiterLimit
// when in doubt).
//
// Degenerate inputs are defined rather than undefined:
//   - width == 0 returns the path's own points (no inflation)
//   - an empty path logs a warning and returns nil
//   - a path that collapses to a single distinct point returns the
//     axis-aligned square of side width centered on that point
func PathBoundaryPoints(path *Path, width float64, capStyle LineCap, join LineJoin, miterLimit float64) []Point {
	if path.Empty() {
		Logger().Warn("PathBoundaryPoints called on an empty path", "err", ErrEmptyPath)
		return nil
	}
	if width == 0 {
		return append([]Point(nil), path.Points()...)
	}

	// Consecutive duplicate points make the join direction undefined, so
	// the path is simplified before any join or cap logic runs.
	pts := path.simplified()
	half := width / 2

	if len(pts) == 1 {
		c := pts[0]
		return []Point{
			{X: c.X - half, Y: c.Y - half},
			{X: c.X + half, Y: c.Y - half},
			{X: c.X + half, Y: c.Y + half},
			{X: c.X - half, Y: c.Y + half},
		}
	}

	var out []Point
	n := len(pts)
	if path.Closed() && n > 2 {
		for i := 0; i < n; i++ {
			prev := pts[(i+n-1)%n]
			next := pts[(i+1)%n]
			out = appendJoin(out, prev, pts[i], next, half, join, miterLimit)
		}
		return out
	}

	// Open path: caps at both extremities, joins at interior vertices.
	out = appendCap(out, pts[0], pts[1].Sub(pts[0]).Normalize(), half, capStyle)
	for i := 1; i < n-1; i++ {
		out = appendJoin(out, pts[i-1], pts[i], pts[i+1], half, join, miterLimit)
	}
	out = appendCap(out, pts[n-1], pts[n-2].Sub(pts[n-1]).Normalize(), half, capStyle)
	return out
}

// PathBoundingBox returns the axis-aligned bounding box of the stroked
// path. With width == 0 it equals path.BoundingBox(); otherwise it is the
// box of the full boundary-point set, which always contains the zero-width
// box.
func PathBoundingBox(path *Path, width float64, capStyle LineCap, join LineJoin, miterLimit float64) Rect {
	if path.Empty() {
		Logger().Warn("PathBoundingBox called on an empty path", "err", ErrEmptyPath)
		return Rect{}
	}
	box := path.BoundingBox()
	if width == 0 {
		return box
	}
	pts := PathBoundaryPoints(path, width, capStyle, join, miterLimit)
	box.GrowToContain(pts...)
	return box
}

// appendJoin emits the exterior boundary geometry at the corner prev->v->next.
// The exterior side of the turn is determined by the sign of the cross
// product of the consecutive edge vectors.
func appendJoin(out []Point, prev, v, next Point, half float64, join LineJoin, miterLimit float64) []Point {
	dA := v.Sub(prev).Normalize()
	dB := next.Sub(v).Normalize()
	turn := dA.Cross(dB)

	if math.Abs(turn) < boundaryEps {
		// Collinear edges: no corner, just the two side offsets.
		l := dA.RotatedPI2().Mul(half)
		return append(out, v.Add(l), v.Sub(l))
	}

	// Offset normals on the outside of the turn.
	nA := dA.RotatedPI2().Mul(half)
	nB := dB.RotatedPI2().Mul(half)
	if turn > 0 {
		nA = nA.Mul(-1)
		nB = nB.Mul(-1)
	}

	switch join {
	case LineJoinMiter:
		// sin of half the interior angle between the two segments.
		sinHalf := math.Sqrt((1 + dA.Dot(dB)) / 2)
		if sinHalf*miterLimit < 1 {
			// Corner too sharp: standard miter-limit fallback to bevel.
			return append(out, v.Add(nA), v.Add(nB))
		}
		if pt, ok := intersectOffsetLines(v.Add(nA), dA, v.Add(nB), dB); ok {
			return append(out, pt)
		}
		return append(out, v.Add(nA), v.Add(nB))
	case LineJoinRound:
		out = append(out, v.Add(nA))
		out = appendQuadrantArc(out, v, half, nA.Argument(), nB.Argument())
		return append(out, v.Add(nB))
	default: // LineJoinBevel
		return append(out, v.Add(nA), v.Add(nB))
	}
}

// appendCap emits the extremity geometry at an open path end. inward is
// the unit direction from the endpoint into the path.
func appendCap(out []Point, end, inward Point, half float64, capStyle LineCap) []Point {
	l := inward.RotatedPI2().Mul(half)
	p1 := end.Add(l)
	p2 := end.Sub(l)

	switch capStyle {
	case LineCapSquare:
		// Butt offsets pushed outward by half the width along the path
		// direction.
		push := inward.Mul(-half)
		return append(out, p1.Add(push), p2.Add(push))
	case LineCapRound:
		out = append(out, p1)
		// The half-circle from +l to -l sweeps through the outward
		// direction, which is +l rotated a quarter turn.
		a1 := l.Argument()
		out = appendQuadrantArc(out, end, half, a1, a1+math.Pi)
		return append(out, p2)
	default: // LineCapButt
		return append(out, p1, p2)
	}
}

// appendQuadrantArc emits the quadrant-crossing approximation of a swept
// arc: whenever the arc from angle a1 to angle a2 (shortest signed sweep)
// crosses a cardinal direction (0, 90, 180, 270 degrees), the axis-aligned
// point at that cardinal is added. This reproduces the legacy round-join
// construction instead of uniformly tessellating the arc.
func appendQuadrantArc(out []Point, center Point, radius, a1, a2 float64) []Point {
	delta := wrapAngle(a2 - a1)
	const quarter = math.Pi / 2

	if delta > 0 {
		k := math.Ceil(a1 / quarter)
		if k*quarter-a1 < boundaryEps {
			k++
		}
		for a := k * quarter; a < a1+delta-boundaryEps; a += quarter {
			sin, cos := math.Sincos(a)
			out = append(out, center.Add(Point{X: radius * cos, Y: radius * sin}))
		}
	} else {
		k := math.Floor(a1 / quarter)
		if a1-k*quarter < boundaryEps {
			k--
		}
		for a := k * quarter; a > a1+delta+boundaryEps; a -= quarter {
			sin, cos := math.Sincos(a)
			out = append(out, center.Add(Point{X: radius * cos, Y: radius * sin}))
		}
	}
	return out
}

// intersectOffsetLines intersects the two offset edge lines, each given by
// a point and a direction, using the a*x + b*y + c = 0 representation and
// a 2x2 determinant. Returns false for near-parallel lines.
func intersectOffsetLines(p1, d1, p2, d2 Point) (Point, bool) {
	a1, b1 := -d1.Y, d1.X
	c1 := -(a1*p1.X + b1*p1.Y)
	a2, b2 := -d2.Y, d2.X
	c2 := -(a2*p2.X + b2*p2.Y)

	det := a1*b2 - a2*b1
	if math.Abs(det) < boundaryEps {
		return Point{}, false
	}
	return Point{
		X: (b1*c2 - b2*c1) / det,
		Y: (a2*c1 - a1*c2) / det,
	}, true
}

// wrapAngle folds an angle into (-pi, pi].
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
