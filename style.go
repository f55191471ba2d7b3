package board

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat cap: the stroke stops at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded cap.
	LineCapRound
	// LineCapSquare specifies a square cap extending half the line width
	// past the endpoint.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join, subject to the
	// miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// LineStyle specifies the dash pattern of a stroke.
type LineStyle int

const (
	// LineStyleSolid is a continuous stroke.
	LineStyleSolid LineStyle = iota
	// LineStyleDash is a dashed stroke.
	LineStyleDash
	// LineStyleDot is a dotted stroke.
	LineStyleDot
	// LineStyleDashDot alternates dashes and dots.
	LineStyleDashDot
	// LineStyleDashDotDot alternates one dash and two dots.
	LineStyleDashDotDot
	// LineStyleNone draws no stroke at all.
	LineStyleNone
)

// dashPattern returns the dash lengths for the style, in multiples of the
// line width. Solid and none return nil.
func (s LineStyle) dashPattern() []float64 {
	switch s {
	case LineStyleDash:
		return []float64{4, 3}
	case LineStyleDot:
		return []float64{1, 2}
	case LineStyleDashDot:
		return []float64{4, 2, 1, 2}
	case LineStyleDashDotDot:
		return []float64{4, 2, 1, 2, 1, 2}
	default:
		return nil
	}
}

// LineWidthFlag selects whether bounding-box queries account for the
// stroke width.
type LineWidthFlag int

const (
	// IgnoreLineWidth computes the box of the zero-width geometry.
	IgnoreLineWidth LineWidthFlag = iota
	// UseLineWidth inflates the box by the stroked outline.
	UseLineWidth
)

// DefaultMiterLimit is the ratio beyond which a miter join falls back to
// a bevel, matching the SVG and PostScript default.
const DefaultMiterLimit = 4.0

// Style gathers the stroke and fill attributes of a shape.
type Style struct {
	// PenColor is the stroke color. Transparent disables stroking.
	PenColor Color

	// FillColor is the fill color. Transparent disables filling.
	FillColor Color

	// LineWidth is the stroke width in board units.
	LineWidth float64

	// LineStyle is the dash pattern of the stroke.
	LineStyle LineStyle

	// LineCap is the shape of open-path endpoints.
	LineCap LineCap

	// LineJoin is the shape of corners.
	LineJoin LineJoin
}

// DefaultStyle returns the style new shapes start from: a solid black
// 1-unit stroke with butt caps and miter joins, and no fill.
func DefaultStyle() Style {
	return Style{
		PenColor:  Black,
		FillColor: Transparent,
		LineWidth: 1.0,
		LineStyle: LineStyleSolid,
		LineCap:   LineCapButt,
		LineJoin:  LineJoinMiter,
	}
}

// WithPenColor returns a copy of the style with the pen color set.
func (s Style) WithPenColor(c Color) Style {
	s.PenColor = c
	return s
}

// WithFillColor returns a copy of the style with the fill color set.
func (s Style) WithFillColor(c Color) Style {
	s.FillColor = c
	return s
}

// WithLineWidth returns a copy of the style with the line width set.
func (s Style) WithLineWidth(w float64) Style {
	s.LineWidth = w
	return s
}

// WithLineStyle returns a copy of the style with the dash style set.
func (s Style) WithLineStyle(ls LineStyle) Style {
	s.LineStyle = ls
	return s
}

// WithLineCap returns a copy of the style with the cap style set.
func (s Style) WithLineCap(c LineCap) Style {
	s.LineCap = c
	return s
}

// WithLineJoin returns a copy of the style with the join style set.
func (s Style) WithLineJoin(j LineJoin) Style {
	s.LineJoin = j
	return s
}

// StyleStack is an explicit stack of styles used by Board to scope style
// changes. There is no process-wide default style: every Board owns its
// own stack.
type StyleStack struct {
	stack []Style
}

// NewStyleStack returns a stack seeded with the given style.
func NewStyleStack(base Style) *StyleStack {
	return &StyleStack{stack: []Style{base}}
}

// Top returns the current style.
func (s *StyleStack) Top() Style {
	return s.stack[len(s.stack)-1]
}

// SetTop replaces the current style.
func (s *StyleStack) SetTop(style Style) {
	s.stack[len(s.stack)-1] = style
}

// Push saves the current style so a later Pop can restore it.
func (s *StyleStack) Push() {
	s.stack = append(s.stack, s.Top())
}

// Pop restores the style saved by the matching Push. Popping the last
// style logs a warning and leaves the stack unchanged.
func (s *StyleStack) Pop() {
	if len(s.stack) == 1 {
		Logger().Warn("StyleStack.Pop called on the base style")
		return
	}
	s.stack = s.stack[:len(s.stack)-1]
}

// Clone returns a copy of the stack.
func (s *StyleStack) Clone() *StyleStack {
	c := &StyleStack{stack: make([]Style, len(s.stack))}
	copy(c.stack, s.stack)
	return c
}

// Depth returns the number of styles on the stack.
func (s *StyleStack) Depth() int {
	return len(s.stack)
}
