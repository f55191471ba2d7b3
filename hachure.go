package board

import (
	"math"
	"slices"
)

// Hachure generation: parallel line segments simulating a fill pattern
// inside closed shapes. Polygons use a classic active-edge-table scanline
// sweep that emits segments instead of pixels; ellipses are swept
// analytically through their quadratic equation.

// Segment is a single hachure stroke.
type Segment struct {
	A, B Point
}

// hachureEdge is an entry of the scanline edge table.
type hachureEdge struct {
	yMin, yMax float64
	xAtYMin    float64
	invSlope   float64
}

// Hachures returns the hachure segments filling the closed polygon
// described by path, one segment between every adjacent pair of
// edge crossings on each scanline. spacing is the distance between
// scanlines; angle is the hachure direction in radians.
//
// Perfectly horizontal polygon edges never intersect a non-horizontal
// scanline at a single point, so they are excluded from the edge table;
// with addHorizontals they are emitted directly as segments instead.
//
// The first scanline runs at spacing above the polygon's lowest point.
func Hachures(path *Path, spacing, angle float64, addHorizontals bool) []Segment {
	if path.Size() < 3 {
		Logger().Warn("Hachures called with a degenerate polygon", "points", path.Size())
		return nil
	}
	if spacing <= 0 {
		Logger().Warn("Hachures called with a non-positive spacing", "spacing", spacing)
		return nil
	}

	// Rotate the polygon so the requested hachure direction becomes
	// horizontal, sweep, then rotate the segments back.
	center := path.BoundingBox().Center()
	pts := path.Points()
	if angle != 0 {
		pts = path.Rotated(-angle, center).Points()
	}

	var segments []Segment
	var edges []hachureEdge
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		yMin = math.Min(yMin, math.Min(a.Y, b.Y))
		yMax = math.Max(yMax, math.Max(a.Y, b.Y))
		if a.Y == b.Y {
			if addHorizontals {
				segments = append(segments, Segment{A: a, B: b})
			}
			continue
		}
		if a.Y > b.Y {
			a, b = b, a
		}
		edges = append(edges, hachureEdge{
			yMin:     a.Y,
			yMax:     b.Y,
			xAtYMin:  a.X,
			invSlope: (b.X - a.X) / (b.Y - a.Y),
		})
	}
	slices.SortFunc(edges, func(a, b hachureEdge) int {
		switch {
		case a.yMin < b.yMin:
			return -1
		case a.yMin > b.yMin:
			return 1
		default:
			return 0
		}
	})

	var active []hachureEdge
	next := 0
	for y := yMin + spacing; y < yMax; y += spacing {
		// Drop edges whose top has been passed, insert edges whose
		// bottom has been reached.
		active = slices.DeleteFunc(active, func(e hachureEdge) bool {
			return e.yMax <= y
		})
		for next < len(edges) && edges[next].yMin <= y {
			if edges[next].yMax > y {
				active = append(active, edges[next])
			}
			next++
		}

		xs := make([]float64, 0, len(active))
		for _, e := range active {
			xs = append(xs, e.xAtYMin+(y-e.yMin)*e.invSlope)
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			segments = append(segments, Segment{
				A: Point{X: xs[i], Y: y},
				B: Point{X: xs[i+1], Y: y},
			})
		}
	}

	if angle != 0 {
		for i := range segments {
			segments[i].A = segments[i].A.RotateAround(angle, center)
			segments[i].B = segments[i].B.RotateAround(angle, center)
		}
	}
	return segments
}

// CrossingHachures returns a cross-hatch pattern: the union of the
// hachure sets at angle and angle+90 degrees.
func CrossingHachures(path *Path, spacing, angle float64) []Segment {
	segments := Hachures(path, spacing, angle, false)
	return append(segments, Hachures(path, spacing, angle+math.Pi/2, false)...)
}

// EllipseHachures returns the hachure segments filling an ellipse. No edge
// table is needed: on each scanline the two crossings are the roots of the
// rotated-ellipse quadratic, solved directly.
func EllipseHachures(e *Ellipse, spacing, angle float64) []Segment {
	if spacing <= 0 {
		Logger().Warn("EllipseHachures called with a non-positive spacing", "spacing", spacing)
		return nil
	}
	rx, ry := e.Radii()
	if rx == 0 || ry == 0 {
		return nil
	}

	// Work in coordinates where the hachures are horizontal and the
	// ellipse is centered on the origin: the ellipse keeps rotation beta.
	beta := e.Angle() - angle
	sin, cos := math.Sincos(beta)
	invRx2 := 1 / (rx * rx)
	invRy2 := 1 / (ry * ry)
	a := cos*cos*invRx2 + sin*sin*invRy2
	b := 2 * sin * cos * (invRx2 - invRy2)
	c := sin*sin*invRx2 + cos*cos*invRy2

	yExtent := math.Sqrt(rx*rx*sin*sin + ry*ry*cos*cos)
	center := e.CenterPoint()

	var segments []Segment
	for y := -yExtent + spacing; y < yExtent; y += spacing {
		roots := SolveQuadratic(a, b*y, c*y*y-1)
		if len(roots) < 2 {
			continue
		}
		segments = append(segments, Segment{
			A: Point{X: roots[0], Y: y}.Rotate(angle).Add(center),
			B: Point{X: roots[1], Y: y}.Rotate(angle).Add(center),
		})
	}
	return segments
}

// CrossingEllipseHachures returns a cross-hatch pattern inside an ellipse.
func CrossingEllipseHachures(e *Ellipse, spacing, angle float64) []Segment {
	segments := EllipseHachures(e, spacing, angle)
	return append(segments, EllipseHachures(e, spacing, angle+math.Pi/2)...)
}
