package board

// Polyline is an open or closed sequence of connected segments. A closed
// polyline with a visible fill color is a filled polygon.
type Polyline struct {
	styledShape
	path *Path
}

// NewPolyline creates a polyline over a copy of the given path.
func NewPolyline(path *Path, style Style) *Polyline {
	return &Polyline{styledShape: styledShape{style: style}, path: path.Clone()}
}

// NewRectangleShape creates a closed polyline tracing the given rectangle.
func NewRectangleShape(r Rect, style Style) *Polyline {
	return NewPolyline(NewClosedPath(
		r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft(),
	), style)
}

// Name returns "Polyline".
func (p *Polyline) Name() string { return "Polyline" }

// Clone returns a deep copy of the polyline.
func (p *Polyline) Clone() Shape {
	return &Polyline{styledShape: p.styledShape, path: p.path.Clone()}
}

// Path returns the polyline's underlying path. The path is shared with
// the shape; callers must not grow it.
func (p *Polyline) Path() *Path { return p.path }

// Translate moves the polyline in place.
func (p *Polyline) Translate(dx, dy float64) {
	p.path.Translate(dx, dy)
}

// Rotate rotates the polyline in place around center.
func (p *Polyline) Rotate(angle float64, center Point) {
	p.path.Rotate(angle, center)
}

// Scale scales the polyline in place relative to its own center.
func (p *Polyline) Scale(sx, sy float64) {
	p.path.Scale(sx, sy)
}

// ScaleAll scales the polyline's absolute coordinates relative to the
// origin.
func (p *Polyline) ScaleAll(sx, sy float64) {
	p.path.ScaleAll(sx, sy)
}

// BoundingBox returns the polyline's bounding box, stroke-aware under
// UseLineWidth.
func (p *Polyline) BoundingBox(flag LineWidthFlag) Rect {
	if flag == UseLineWidth && p.style.LineWidth > 0 {
		return PathBoundingBox(p.path, p.style.LineWidth, p.style.LineCap, p.style.LineJoin, DefaultMiterLimit)
	}
	return p.path.BoundingBox()
}

// Center returns the center of the polyline's bounding box.
func (p *Polyline) Center(flag LineWidthFlag) Point {
	return shapeCenter(p, flag)
}

// Hachures returns hachure segments filling the polyline, honoring the
// closed polygon outline.
func (p *Polyline) Hachures(spacing, angle float64) []Segment {
	return Hachures(p.path, spacing, angle, false)
}
