// Package board provides a 2D vector-graphics authoring library for Go.
//
// # Overview
//
// board maintains an in-memory scene of geometric shapes (lines, polylines,
// ellipses, Bezier curves, text, bitmap images, nested groups) that can be
// composed programmatically and serialized to several vector formats
// (SVG, EPS, XFig, TikZ).
//
// # Quick Start
//
//	import "github.com/c-koi/board"
//
//	b := board.New()
//	b.SetPenColor(board.Red)
//	b.DrawLine(0, 0, 100, 50)
//	b.DrawCircle(50, 50, 20)
//	b.Save("figure.svg")
//
// # Coordinate System
//
//	- X increases right
//	- Y increases up (flipped on output for y-down formats)
//	- Angles in radians, counter-clockwise
//
// # Geometry Core
//
// Every shape builds on the same small set of geometric primitives:
// Point, Rect, Path, the stroke-boundary computation
// (PathBoundaryPoints/PathBoundingBox), closed-form ellipse transform
// algebra, cubic Bezier geometry, and a scanline hachure generator.
// Format writers call into this core and never re-implement geometry.
//
// # Errors
//
// Geometry queries never panic. Malformed inputs (empty paths, mismatched
// path lengths) are logged through the package logger and degrade to a
// deterministic result; constructors and I/O return errors.
package board

// Version is the current version of the library.
const Version = "1.0.0"
