package board

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo/float"
)

// svgMargin is the white border added around the drawing, in board
// units.
const svgMargin = 10.0

// errWriter remembers the first write error so the emitters can keep a
// flat fmt.Fprintf style and report failures at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	if _, err := ew.w.Write(p); err != nil {
		ew.err = err
	}
	return len(p), nil
}

// svgEmitter maps board coordinates (y axis up) onto the SVG canvas
// (y axis down).
type svgEmitter struct {
	canvas *svg.SVG
	left   float64
	top    float64
}

func (e *svgEmitter) xy(p Point) (float64, float64) {
	return p.X - e.left + svgMargin, e.top - p.Y + svgMargin
}

func (e *svgEmitter) pathCoords(p *Path) (xs, ys []float64) {
	xs = make([]float64, p.Size())
	ys = make([]float64, p.Size())
	for i := 0; i < p.Size(); i++ {
		xs[i], ys[i] = e.xy(p.Point(i))
	}
	return xs, ys
}

// WriteSVG writes the board as an SVG document.
func (b *Board) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	bbox := b.BoundingBox(UseLineWidth)
	e := &svgEmitter{canvas: svg.New(ew), left: bbox.Left, top: bbox.Top}
	width := bbox.Width + 2*svgMargin
	height := bbox.Height + 2*svgMargin

	e.canvas.Start(width, height)
	if b.background.Visible() {
		e.canvas.Rect(0, 0, width, height, "fill:"+b.background.HexString())
	}
	b.Each(e.shape)
	e.canvas.End()
	return ew.err
}

func (e *svgEmitter) shape(s Shape) {
	switch s := s.(type) {
	case *Group:
		s.Each(e.shape)
	case *Line:
		a, b := s.Endpoints()
		x1, y1 := e.xy(a)
		x2, y2 := e.xy(b)
		e.canvas.Line(x1, y1, x2, y2, svgStrokeAttrs(s.Style()))
	case *Arrow:
		a, b := s.Endpoints()
		x1, y1 := e.xy(a)
		x2, y2 := e.xy(b)
		e.canvas.Line(x1, y1, x2, y2, svgStrokeAttrs(s.Style()))
		xs, ys := e.pathCoords(s.HeadPath())
		e.canvas.Polygon(xs, ys, "fill:"+s.Style().PenColor.HexString())
	case *Polyline:
		xs, ys := e.pathCoords(s.Path())
		attrs := svgStrokeAttrs(s.Style()) + ";" + svgFillAttrs(s.Style())
		if s.Path().Closed() {
			e.canvas.Polygon(xs, ys, attrs)
		} else {
			e.canvas.Polyline(xs, ys, attrs)
		}
	case *Ellipse:
		e.ellipse(s)
	case *Bezier:
		e.bezier(s)
	case *Dot:
		// A dot renders as a filled disk of half the pen width.
		x, y := e.xy(s.Position())
		e.canvas.Circle(x, y, math.Max(s.Style().LineWidth, 0.5)/2,
			"fill:"+s.Style().PenColor.HexString())
	case *Text:
		e.text(s)
	case *Image:
		e.image(s)
	}
}

func (e *svgEmitter) ellipse(s *Ellipse) {
	cx, cy := e.xy(s.CenterPoint())
	rx, ry := s.Radii()
	attrs := svgStrokeAttrs(s.Style()) + ";" + svgFillAttrs(s.Style())
	if s.Angle() == 0 {
		e.canvas.Ellipse(cx, cy, rx, ry, attrs)
		return
	}
	// Counterclockwise board rotation is clockwise on the flipped SVG
	// canvas, which is what a positive SVG rotate produces.
	e.canvas.Gtransform(fmt.Sprintf("rotate(%s,%s,%s)",
		svgNum(s.Angle()*180/math.Pi), svgNum(cx), svgNum(cy)))
	e.canvas.Ellipse(cx, cy, rx, ry, attrs)
	e.canvas.Gend()
}

func (e *svgEmitter) bezier(s *Bezier) {
	var d strings.Builder
	anchors := s.Anchors()
	controls := s.Controls()
	x, y := e.xy(anchors.Point(0))
	fmt.Fprintf(&d, "M %s %s", svgNum(x), svgNum(y))
	for i := 0; i+1 < anchors.Size(); i++ {
		c1x, c1y := e.xy(controls.Point(2 * i))
		c2x, c2y := e.xy(controls.Point(2*i + 1))
		px, py := e.xy(anchors.Point(i + 1))
		fmt.Fprintf(&d, " C %s %s, %s %s, %s %s",
			svgNum(c1x), svgNum(c1y), svgNum(c2x), svgNum(c2y), svgNum(px), svgNum(py))
	}
	e.canvas.Path(d.String(), svgStrokeAttrs(s.Style())+";fill:none")
}

func (e *svgEmitter) text(s *Text) {
	x, y := e.xy(s.Position())
	attrs := fmt.Sprintf("font-family:sans-serif;font-size:%s;fill:%s",
		svgNum(s.Size()), s.Style().PenColor.HexString())
	if s.Angle() == 0 {
		e.canvas.Text(x, y, s.Content(), attrs)
		return
	}
	e.canvas.Gtransform(fmt.Sprintf("rotate(%s,%s,%s)",
		svgNum(s.Angle()*180/math.Pi), svgNum(x), svgNum(y)))
	e.canvas.Text(x, y, s.Content(), attrs)
	e.canvas.Gend()
}

func (e *svgEmitter) image(s *Image) {
	uri, err := s.base64PNG()
	if err != nil {
		Logger().Warn("skipping image in SVG output", "error", err)
		return
	}
	quad := s.Quad()
	bottomLeft := quad.Point(3)
	edge := quad.Point(2).Sub(bottomLeft)
	width := edge.Norm()
	height := quad.Point(0).Sub(bottomLeft).Norm()
	angle := edge.Argument()
	topLeft := quad.Point(0)
	x, y := e.xy(topLeft)
	if math.Abs(angle) < 1e-12 {
		e.canvas.Image(x, y, int(math.Round(width)), int(math.Round(height)), uri)
		return
	}
	e.canvas.Gtransform(fmt.Sprintf("rotate(%s,%s,%s)",
		svgNum(angle*180/math.Pi), svgNum(x), svgNum(y)))
	e.canvas.Image(x, y, int(math.Round(width)), int(math.Round(height)), uri)
	e.canvas.Gend()
}

func svgStrokeAttrs(s Style) string {
	if s.LineStyle == LineStyleNone || !s.PenColor.Visible() {
		return "stroke:none"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "stroke:%s;stroke-width:%s", s.PenColor.HexString(), svgNum(s.LineWidth))
	if s.PenColor.A < 1 {
		fmt.Fprintf(&sb, ";stroke-opacity:%s", svgNum(s.PenColor.A))
	}
	switch s.LineCap {
	case LineCapRound:
		sb.WriteString(";stroke-linecap:round")
	case LineCapSquare:
		sb.WriteString(";stroke-linecap:square")
	}
	switch s.LineJoin {
	case LineJoinRound:
		sb.WriteString(";stroke-linejoin:round")
	case LineJoinBevel:
		sb.WriteString(";stroke-linejoin:bevel")
	}
	if dashes := s.LineStyle.dashPattern(); len(dashes) > 0 {
		sb.WriteString(";stroke-dasharray:")
		for i, d := range dashes {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(svgNum(d * s.LineWidth))
		}
	}
	return sb.String()
}

func svgFillAttrs(s Style) string {
	if !s.FillColor.Visible() {
		return "fill:none"
	}
	attr := "fill:" + s.FillColor.HexString()
	if s.FillColor.A < 1 {
		attr += ";fill-opacity:" + svgNum(s.FillColor.A)
	}
	return attr
}

// svgNum formats a coordinate without trailing zeros.
func svgNum(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", v), "0"), ".")
}
