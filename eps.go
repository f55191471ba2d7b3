package board

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"
)

const epsMargin = 10.0

// epsEmitter writes Encapsulated PostScript. PostScript shares the
// board's upward y axis, so only a translation to the origin is needed.
type epsEmitter struct {
	w    *errWriter
	left float64
	bot  float64
}

func (e *epsEmitter) xy(p Point) (float64, float64) {
	return p.X - e.left + epsMargin, p.Y - e.bot + epsMargin
}

func (e *epsEmitter) printf(format string, args ...any) {
	fmt.Fprintf(e.w, format, args...)
}

// WriteEPS writes the board as an Encapsulated PostScript document.
func (b *Board) WriteEPS(w io.Writer) error {
	ew := &errWriter{w: w}
	bbox := b.BoundingBox(UseLineWidth)
	e := &epsEmitter{w: ew, left: bbox.Left, bot: bbox.Bottom()}
	width := bbox.Width + 2*epsMargin
	height := bbox.Height + 2*epsMargin

	e.printf("%%!PS-Adobe-3.0 EPSF-3.0\n")
	e.printf("%%%%Creator: board %s\n", Version)
	e.printf("%%%%CreationDate: %s\n", time.Now().Format(time.RFC1123))
	e.printf("%%%%BoundingBox: 0 0 %d %d\n", int(math.Ceil(width)), int(math.Ceil(height)))
	e.printf("%%%%EndComments\n")
	if b.background.Visible() {
		e.setColor(b.background)
		e.printf("newpath 0 0 moveto %g 0 lineto %g %g lineto 0 %g lineto closepath fill\n",
			width, width, height, height)
	}
	b.Each(e.shape)
	e.printf("showpage\n%%%%EOF\n")
	return ew.err
}

func (e *epsEmitter) shape(s Shape) {
	switch s := s.(type) {
	case *Group:
		s.Each(e.shape)
	case *Line:
		a, b := s.Endpoints()
		e.strokePath(NewPath(a, b), s.Style())
	case *Arrow:
		a, b := s.Endpoints()
		e.strokePath(NewPath(a, b), s.Style())
		e.fillPath(s.HeadPath(), s.Style().PenColor)
	case *Polyline:
		if s.Style().FillColor.Visible() && s.Path().Closed() {
			e.fillPath(s.Path(), s.Style().FillColor)
		}
		e.strokePath(s.Path(), s.Style())
	case *Ellipse:
		e.ellipse(s)
	case *Bezier:
		e.bezier(s)
	case *Dot:
		x, y := e.xy(s.Position())
		e.setColor(s.Style().PenColor)
		e.printf("newpath %g %g %g 0 360 arc fill\n", x, y, math.Max(s.Style().LineWidth, 0.5)/2)
	case *Text:
		e.text(s)
	case *Image:
		// Bitmaps are not embedded in PostScript output; the mapped
		// rectangle is drawn instead.
		e.printf("%% bitmap omitted, outline only\n")
		e.strokePath(s.Quad(), s.Style())
	}
}

func (e *epsEmitter) emitPath(p *Path) {
	x, y := e.xy(p.Point(0))
	e.printf("newpath %g %g moveto", x, y)
	for i := 1; i < p.Size(); i++ {
		x, y = e.xy(p.Point(i))
		e.printf(" %g %g lineto", x, y)
	}
	if p.Closed() {
		e.printf(" closepath")
	}
}

func (e *epsEmitter) strokePath(p *Path, style Style) {
	if p.Empty() || style.LineStyle == LineStyleNone || !style.PenColor.Visible() {
		return
	}
	e.setStroke(style)
	e.emitPath(p)
	e.printf(" stroke\n")
}

func (e *epsEmitter) fillPath(p *Path, c Color) {
	if p.Empty() || !c.Visible() {
		return
	}
	e.setColor(c)
	e.emitPath(p)
	e.printf(" fill\n")
}

func (e *epsEmitter) ellipse(s *Ellipse) {
	cx, cy := e.xy(s.CenterPoint())
	rx, ry := s.Radii()
	deg := s.Angle() * 180 / math.Pi
	// An ellipse is a unit circle under translate/rotate/scale; the
	// saved matrix restores line-width semantics before stroking.
	ellipsePath := func() {
		e.printf("matrix currentmatrix newpath %g %g translate %g rotate %g %g scale 0 0 1 0 360 arc setmatrix closepath",
			cx, cy, deg, rx, ry)
	}
	if s.Style().FillColor.Visible() {
		e.setColor(s.Style().FillColor)
		ellipsePath()
		e.printf(" fill\n")
	}
	if s.Style().LineStyle != LineStyleNone && s.Style().PenColor.Visible() {
		e.setStroke(s.Style())
		ellipsePath()
		e.printf(" stroke\n")
	}
}

func (e *epsEmitter) bezier(s *Bezier) {
	style := s.Style()
	if style.LineStyle == LineStyleNone || !style.PenColor.Visible() {
		return
	}
	e.setStroke(style)
	anchors := s.Anchors()
	controls := s.Controls()
	x, y := e.xy(anchors.Point(0))
	e.printf("newpath %g %g moveto", x, y)
	for i := 0; i+1 < anchors.Size(); i++ {
		c1x, c1y := e.xy(controls.Point(2 * i))
		c2x, c2y := e.xy(controls.Point(2*i + 1))
		px, py := e.xy(anchors.Point(i + 1))
		e.printf(" %g %g %g %g %g %g curveto", c1x, c1y, c2x, c2y, px, py)
	}
	e.printf(" stroke\n")
}

func (e *epsEmitter) text(s *Text) {
	x, y := e.xy(s.Position())
	e.setColor(s.Style().PenColor)
	e.printf("/Helvetica findfont %g scalefont setfont\n", s.Size())
	if s.Angle() != 0 {
		e.printf("gsave %g %g translate %g rotate 0 0 moveto (%s) show grestore\n",
			x, y, s.Angle()*180/math.Pi, epsEscape(s.Content()))
		return
	}
	e.printf("%g %g moveto (%s) show\n", x, y, epsEscape(s.Content()))
}

func (e *epsEmitter) setColor(c Color) {
	e.printf("%.4f %.4f %.4f setrgbcolor\n", clamp01(c.R), clamp01(c.G), clamp01(c.B))
}

func (e *epsEmitter) setStroke(s Style) {
	e.setColor(s.PenColor)
	e.printf("%g setlinewidth %d setlinecap %d setlinejoin %g setmiterlimit\n",
		s.LineWidth, epsCap(s.LineCap), epsJoin(s.LineJoin), DefaultMiterLimit)
	if dashes := s.LineStyle.dashPattern(); len(dashes) > 0 {
		e.printf("[")
		for i, d := range dashes {
			if i > 0 {
				e.printf(" ")
			}
			e.printf("%g", d*s.LineWidth)
		}
		e.printf("] 0 setdash\n")
	} else {
		e.printf("[] 0 setdash\n")
	}
}

func epsCap(c LineCap) int {
	switch c {
	case LineCapRound:
		return 1
	case LineCapSquare:
		return 2
	default:
		return 0
	}
}

func epsJoin(j LineJoin) int {
	switch j {
	case LineJoinRound:
		return 1
	case LineJoinBevel:
		return 2
	default:
		return 0
	}
}

func epsEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
