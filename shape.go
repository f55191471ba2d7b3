package board

// Shape is the interface implemented by every drawable element of a
// board. Shapes own their geometry and a Style; all geometric queries
// delegate to the geometry core (Path, PathBoundingBox, the ellipse
// transform algebra) rather than re-implementing it.
//
// The in-place mutators are the primitives. Copy-returning variants are
// provided by the package-level Translated, Rotated and Scaled helpers,
// which clone then mutate.
type Shape interface {
	// Name returns the kind of the shape ("Line", "Ellipse", ...).
	Name() string

	// Clone returns a deep copy of the shape.
	Clone() Shape

	// Style returns the shape's stroke and fill attributes.
	Style() Style

	// SetStyle replaces the shape's stroke and fill attributes.
	SetStyle(Style)

	// BoundingBox returns the axis-aligned bounding box of the shape.
	// With UseLineWidth the box accounts for the stroked outline.
	BoundingBox(LineWidthFlag) Rect

	// Center returns the center of the shape's bounding box.
	Center(LineWidthFlag) Point

	// Translate moves the shape in place.
	Translate(dx, dy float64)

	// Rotate rotates the shape in place around center.
	Rotate(angle float64, center Point)

	// Scale scales the shape in place relative to its own center.
	Scale(sx, sy float64)

	// ScaleAll scales the shape's absolute coordinates relative to the
	// origin.
	ScaleAll(sx, sy float64)
}

// Translated returns a translated copy of the shape.
func Translated(s Shape, dx, dy float64) Shape {
	c := s.Clone()
	c.Translate(dx, dy)
	return c
}

// Rotated returns a copy of the shape rotated around center.
func Rotated(s Shape, angle float64, center Point) Shape {
	c := s.Clone()
	c.Rotate(angle, center)
	return c
}

// Scaled returns a copy of the shape scaled relative to its own center.
func Scaled(s Shape, sx, sy float64) Shape {
	c := s.Clone()
	c.Scale(sx, sy)
	return c
}

// styledShape carries the Style common to all concrete shapes.
type styledShape struct {
	style Style
}

func (s *styledShape) Style() Style {
	return s.style
}

func (s *styledShape) SetStyle(style Style) {
	s.style = style
}

// center returns the bounding-box center for a concrete shape.
func shapeCenter(s Shape, flag LineWidthFlag) Point {
	return s.BoundingBox(flag).Center()
}
