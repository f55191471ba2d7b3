package board

// Dot is a single point rendered as a dot of the current line width.
type Dot struct {
	styledShape
	pos Point
}

// NewDot creates a dot at the given position.
func NewDot(pos Point, style Style) *Dot {
	return &Dot{styledShape: styledShape{style: style}, pos: pos}
}

// Name returns "Dot".
func (d *Dot) Name() string { return "Dot" }

// Clone returns a deep copy of the dot.
func (d *Dot) Clone() Shape {
	c := *d
	return &c
}

// Position returns the dot's position.
func (d *Dot) Position() Point { return d.pos }

// Translate moves the dot in place.
func (d *Dot) Translate(dx, dy float64) {
	d.pos.X += dx
	d.pos.Y += dy
}

// Rotate rotates the dot in place around center. Rotation around the
// dot's own position is a no-op.
func (d *Dot) Rotate(angle float64, center Point) {
	d.pos = d.pos.RotateAround(angle, center)
}

// Scale is a no-op for a dot: a point has no extent of its own.
func (d *Dot) Scale(sx, sy float64) {}

// ScaleAll scales the dot's position relative to the origin.
func (d *Dot) ScaleAll(sx, sy float64) {
	d.pos = d.pos.ScaleXY(sx, sy)
}

// BoundingBox returns the dot's bounding box: degenerate at the position,
// or the square of the line width under UseLineWidth.
func (d *Dot) BoundingBox(flag LineWidthFlag) Rect {
	box := RectOf(d.pos)
	if flag == UseLineWidth && d.style.LineWidth > 0 {
		box = box.Grow(d.style.LineWidth / 2)
	}
	return box
}

// Center returns the dot's position.
func (d *Dot) Center(LineWidthFlag) Point {
	return d.pos
}
