package board

import "math"

// Quadratic root solving used by Bezier extremum extraction and the
// analytic ellipse hachure sweep.

// SolveQuadratic finds the real roots of a*x^2 + b*x + c = 0, sorted in
// ascending order.
//
// Degenerate inputs are special-cased rather than left to produce NaN:
//   - a zero (or overflowing) leading coefficient solves the linear
//     equation b*x + c = 0
//   - all-zero coefficients yield the single root 0
//   - a negative discriminant yields no roots
func SolveQuadratic(a, b, c float64) []float64 {
	// Scale coefficients; non-finite results mean a is zero or tiny.
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		return solveLinear(b, c)
	}

	arg := sc1*sc1 - 4.0*sc0
	switch {
	case !isFinite(arg):
		// Discriminant overflow: find one root from sc1*x + x^2 = 0,
		// the other as sc0/root.
		return sortedPair(-sc1, sc0/-sc1)
	case arg < 0.0:
		return nil
	case arg == 0.0:
		return []float64{-0.5 * sc1}
	}

	// Numerically stable form avoiding cancellation.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	root2 := sc0 / root1
	return sortedPair(root1, root2)
}

// SolveQuadraticInUnitInterval returns the roots of a*x^2 + b*x + c = 0
// that lie in [0, 1], clamping near-boundary values. Useful for parameter
// values on Bezier curves.
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	const eps = 1e-12
	roots := SolveQuadratic(a, b, c)
	out := roots[:0]
	for _, r := range roots {
		if r >= -eps && r <= 1.0+eps {
			out = append(out, math.Min(math.Max(r, 0.0), 1.0))
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func solveLinear(b, c float64) []float64 {
	root := -c / b
	if isFinite(root) {
		return []float64{root}
	}
	if b == 0.0 && c == 0.0 {
		return []float64{0.0}
	}
	return nil
}

func sortedPair(r1, r2 float64) []float64 {
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		return []float64{r2, r1}
	}
	return []float64{r1, r2}
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
