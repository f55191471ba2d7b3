package board

import (
	"fmt"
	"io"
	"math"
	"sort"
)

// FIG coordinates are integers at 1200 dots per inch with a downward
// y axis. figScale converts board units to FIG units.
const (
	figScale  = 20.0
	figMargin = 10.0
	// FIG renders objects of larger depth first.
	figMaxDepth = 999
)

// figEmitter writes XFIG 3.2 documents. FIG has a fixed 32-color
// palette, so every color used on the board is registered as a numbered
// user color first.
type figEmitter struct {
	w      *errWriter
	left   float64
	top    float64
	colors map[string]int
	depth  int
}

func (e *figEmitter) xy(p Point) (int, int) {
	return int(math.Round((p.X - e.left + figMargin) * figScale)),
		int(math.Round((e.top - p.Y + figMargin) * figScale))
}

func (e *figEmitter) printf(format string, args ...any) {
	fmt.Fprintf(e.w, format, args...)
}

// WriteFIG writes the board as an XFIG 3.2 document.
func (b *Board) WriteFIG(w io.Writer) error {
	ew := &errWriter{w: w}
	bbox := b.BoundingBox(UseLineWidth)
	e := &figEmitter{
		w:      ew,
		left:   bbox.Left,
		top:    bbox.Top,
		colors: make(map[string]int),
		depth:  figMaxDepth,
	}
	e.printf("#FIG 3.2\nLandscape\nCenter\nInches\nLetter\n100.00\nSingle\n-2\n1200 2\n")

	if b.background.Visible() {
		e.register(b.background)
	}
	b.Each(e.collectColors)
	e.emitColors()

	if b.background.Visible() {
		e.polygon(bbox.Grow(figMargin), Style{
			PenColor:  Transparent,
			FillColor: b.background,
			LineStyle: LineStyleNone,
		})
	}
	b.Each(e.shape)
	return ew.err
}

func (e *figEmitter) collectColors(s Shape) {
	if g, ok := s.(*Group); ok {
		g.Each(e.collectColors)
		return
	}
	style := s.Style()
	if style.PenColor.Visible() {
		e.register(style.PenColor)
	}
	if style.FillColor.Visible() {
		e.register(style.FillColor)
	}
}

// register assigns the color a FIG user-color number, starting at 32
// past the built-in palette.
func (e *figEmitter) register(c Color) int {
	hex := c.HexString()
	if n, ok := e.colors[hex]; ok {
		return n
	}
	n := 32 + len(e.colors)
	e.colors[hex] = n
	return n
}

func (e *figEmitter) emitColors() {
	nums := make([]int, 0, len(e.colors))
	byNum := make(map[int]string, len(e.colors))
	for hex, n := range e.colors {
		nums = append(nums, n)
		byNum[n] = hex
	}
	sort.Ints(nums)
	for _, n := range nums {
		e.printf("0 %d %s\n", n, byNum[n])
	}
}

func (e *figEmitter) colorOf(c Color) int {
	if !c.Visible() {
		return -1
	}
	return e.colors[c.HexString()]
}

// nextDepth returns the drawing depth for the next shape. Later shapes
// get smaller depths so they render on top.
func (e *figEmitter) nextDepth() int {
	d := e.depth
	if e.depth > 0 {
		e.depth--
	}
	return d
}

func (e *figEmitter) shape(s Shape) {
	switch s := s.(type) {
	case *Group:
		s.Each(e.shape)
	case *Line:
		a, b := s.Endpoints()
		e.polyline(NewPath(a, b), s.Style(), false)
	case *Arrow:
		a, b := s.Endpoints()
		e.polyline(NewPath(a, b), s.Style(), false)
		head := s.Style().WithFillColor(s.Style().PenColor)
		e.polyline(s.HeadPath(), head, false)
	case *Polyline:
		e.polyline(s.Path(), s.Style(), false)
	case *Ellipse:
		e.ellipse(s)
	case *Bezier:
		e.polyline(s.DiscretizedPath(), s.Style(), false)
	case *Dot:
		e.polyline(NewPath(s.Position(), s.Position()), s.Style().WithLineCap(LineCapRound), true)
	case *Text:
		e.text(s)
	case *Image:
		// Bitmaps degrade to their mapped rectangle in FIG output.
		e.polyline(s.Quad(), s.Style(), false)
	}
}

func (e *figEmitter) polygon(r Rect, style Style) {
	e.polyline(NewClosedPath(r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()), style, false)
}

func (e *figEmitter) polyline(p *Path, style Style, forceStroke bool) {
	if p.Empty() {
		return
	}
	subType := 1
	n := p.Size()
	if p.Closed() {
		subType = 3
		n++
	}
	areaFill := -1
	if style.FillColor.Visible() {
		areaFill = 20
	}
	penColor := e.colorOf(style.PenColor)
	lineStyle := figLineStyle(style.LineStyle)
	thickness := int(math.Round(style.LineWidth * figScale / 15))
	if thickness < 1 && (style.PenColor.Visible() || forceStroke) {
		thickness = 1
	}
	if style.LineStyle == LineStyleNone || !style.PenColor.Visible() {
		thickness = 0
		lineStyle = 0
	}
	e.printf("2 %d %d %d %d %d %d -1 %d %.3f %d %d -1 0 0 %d\n",
		subType, lineStyle, thickness, penColor, e.colorOf(style.FillColor),
		e.nextDepth(), areaFill, 4.0*style.LineWidth,
		figJoin(style.LineJoin), figCap(style.LineCap), n)
	e.printf("\t")
	for i := 0; i < p.Size(); i++ {
		x, y := e.xy(p.Point(i))
		e.printf(" %d %d", x, y)
	}
	if p.Closed() {
		x, y := e.xy(p.Point(0))
		e.printf(" %d %d", x, y)
	}
	e.printf("\n")
}

func (e *figEmitter) ellipse(s *Ellipse) {
	style := s.Style()
	cx, cy := e.xy(s.CenterPoint())
	rx, ry := s.Radii()
	areaFill := -1
	if style.FillColor.Visible() {
		areaFill = 20
	}
	thickness := int(math.Round(style.LineWidth * figScale / 15))
	if thickness < 1 && style.PenColor.Visible() {
		thickness = 1
	}
	// The y flip reverses the rotation direction.
	e.printf("1 1 %d %d %d %d %d -1 %d %.3f 1 %.4f %d %d %d %d %d %d %d %d\n",
		figLineStyle(style.LineStyle), thickness,
		e.colorOf(style.PenColor), e.colorOf(style.FillColor),
		e.nextDepth(), areaFill, 4.0*style.LineWidth, -s.Angle(),
		cx, cy, int(math.Round(rx*figScale)), int(math.Round(ry*figScale)),
		cx, cy, cx+int(math.Round(rx*figScale)), cy)
}

func (e *figEmitter) text(s *Text) {
	x, y := e.xy(s.Position())
	e.printf("4 0 %d %d -1 0 %d %.4f 4 %d %d %d %d %s\\001\n",
		e.colorOf(s.Style().PenColor), e.nextDepth(),
		int(math.Round(s.Size())), s.Angle(),
		int(math.Round(s.Size()*figScale)),
		int(math.Round(float64(len(s.Content()))*s.Size()*figScale*0.6)),
		x, y, s.Content())
}

func figLineStyle(s LineStyle) int {
	switch s {
	case LineStyleDash:
		return 1
	case LineStyleDot:
		return 2
	case LineStyleDashDot:
		return 3
	case LineStyleDashDotDot:
		return 4
	default:
		return 0
	}
}

func figCap(c LineCap) int {
	switch c {
	case LineCapRound:
		return 1
	case LineCapSquare:
		return 2
	default:
		return 0
	}
}

func figJoin(j LineJoin) int {
	switch j {
	case LineJoinRound:
		return 1
	case LineJoinBevel:
		return 2
	default:
		return 0
	}
}
