package board

// Group is a composite shape owning a list of child shapes. Children are
// stored back-to-front: the first shape is drawn first and appears behind
// the others. Ownership is exclusive; Clone deep-copies every child, and
// there is no sharing between a group and the shapes added to it.
type Group struct {
	styledShape
	shapes []Shape
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{styledShape: styledShape{style: DefaultStyle()}}
}

// Name returns "Group".
func (g *Group) Name() string { return "Group" }

// Clone returns a deep copy of the group: every child shape is cloned.
func (g *Group) Clone() Shape {
	c := &Group{styledShape: g.styledShape, shapes: make([]Shape, len(g.shapes))}
	for i, s := range g.shapes {
		c.shapes[i] = s.Clone()
	}
	return c
}

// Add appends a deep copy of the shape on top of the group.
func (g *Group) Add(s Shape) {
	g.shapes = append(g.shapes, s.Clone())
}

// Size returns the number of child shapes.
func (g *Group) Size() int {
	return len(g.shapes)
}

// Shape returns the i-th child, counting back-to-front.
func (g *Group) Shape(i int) Shape {
	return g.shapes[i]
}

// Each calls fn on every child in back-to-front order.
func (g *Group) Each(fn func(Shape)) {
	for _, s := range g.shapes {
		fn(s)
	}
}

// Clear removes all child shapes.
func (g *Group) Clear() {
	g.shapes = nil
}

// Translate moves every child in place.
func (g *Group) Translate(dx, dy float64) {
	for _, s := range g.shapes {
		s.Translate(dx, dy)
	}
}

// Rotate rotates every child in place around center.
func (g *Group) Rotate(angle float64, center Point) {
	for _, s := range g.shapes {
		s.Rotate(angle, center)
	}
}

// Scale scales the group in place relative to the group's own center:
// children keep their relative layout.
func (g *Group) Scale(sx, sy float64) {
	if len(g.shapes) == 0 {
		return
	}
	center := g.Center(IgnoreLineWidth)
	for _, s := range g.shapes {
		c := s.Center(IgnoreLineWidth)
		s.Scale(sx, sy)
		moved := center.Add(c.Sub(center).ScaleXY(sx, sy))
		now := s.Center(IgnoreLineWidth)
		s.Translate(moved.X-now.X, moved.Y-now.Y)
	}
}

// ScaleAll scales every child's absolute coordinates relative to the
// origin.
func (g *Group) ScaleAll(sx, sy float64) {
	for _, s := range g.shapes {
		s.ScaleAll(sx, sy)
	}
}

// BoundingBox returns the union of the children's bounding boxes. An
// empty group has the zero box.
func (g *Group) BoundingBox(flag LineWidthFlag) Rect {
	if len(g.shapes) == 0 {
		return Rect{}
	}
	box := g.shapes[0].BoundingBox(flag)
	for _, s := range g.shapes[1:] {
		box = box.Union(s.BoundingBox(flag))
	}
	return box
}

// Center returns the center of the group's bounding box.
func (g *Group) Center(flag LineWidthFlag) Point {
	return shapeCenter(g, flag)
}
