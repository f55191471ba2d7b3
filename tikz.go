package board

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// tikzEmitter writes TikZ pictures for inclusion in LaTeX documents.
// TikZ shares the board's upward y axis, so coordinates pass through
// unchanged. Colors are declared once with \definecolor and referenced
// by name.
type tikzEmitter struct {
	w      *errWriter
	colors map[string]string
}

func (e *tikzEmitter) printf(format string, args ...any) {
	fmt.Fprintf(e.w, format, args...)
}

// WriteTikZ writes the board as a standalone tikzpicture environment.
func (b *Board) WriteTikZ(w io.Writer) error {
	ew := &errWriter{w: w}
	e := &tikzEmitter{w: ew, colors: make(map[string]string)}

	if b.background.Visible() {
		e.register(b.background)
	}
	b.Each(e.collectColors)

	names := make([]string, 0, len(e.colors))
	byName := make(map[string]string, len(e.colors))
	for hex, name := range e.colors {
		names = append(names, name)
		byName[name] = hex
	}
	sort.Strings(names)
	for _, name := range names {
		e.printf("\\definecolor{%s}{HTML}{%s}\n", name, strings.ToUpper(byName[name][1:7]))
	}

	e.printf("\\begin{tikzpicture}[x=1pt,y=1pt]\n")
	if b.background.Visible() {
		bbox := b.BoundingBox(UseLineWidth).Grow(svgMargin)
		e.printf("\\fill[%s] (%s,%s) rectangle (%s,%s);\n",
			e.name(b.background),
			svgNum(bbox.Left), svgNum(bbox.Bottom()),
			svgNum(bbox.Right()), svgNum(bbox.Top))
	}
	b.Each(e.shape)
	e.printf("\\end{tikzpicture}\n")
	return ew.err
}

func (e *tikzEmitter) collectColors(s Shape) {
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

func (e *tikzEmitter) register(c Color) string {
	hex := c.HexString()
	if name, ok := e.colors[hex]; ok {
		return name
	}
	name := fmt.Sprintf("boardcolor%d", len(e.colors))
	e.colors[hex] = name
	return name
}

func (e *tikzEmitter) name(c Color) string {
	return e.colors[c.HexString()]
}

func (e *tikzEmitter) shape(s Shape) {
	switch s := s.(type) {
	case *Group:
		s.Each(e.shape)
	case *Line:
		a, b := s.Endpoints()
		e.printf("\\draw[%s] %s -- %s;\n", e.strokeOpts(s.Style()), tikzPt(a), tikzPt(b))
	case *Arrow:
		a, b := s.Endpoints()
		e.printf("\\draw[%s,->] %s -- %s;\n", e.strokeOpts(s.Style()), tikzPt(a), tikzPt(b))
	case *Polyline:
		e.polyline(s)
	case *Ellipse:
		e.ellipse(s)
	case *Bezier:
		e.bezier(s)
	case *Dot:
		e.printf("\\fill[%s] %s circle [radius=%s];\n",
			e.name(s.Style().PenColor), tikzPt(s.Position()),
			svgNum(math.Max(s.Style().LineWidth, 0.5)/2))
	case *Text:
		e.text(s)
	case *Image:
		// Bitmaps degrade to their mapped rectangle in TikZ output.
		quad := NewPolyline(s.Quad(), s.Style())
		e.polyline(quad)
	}
}

func (e *tikzEmitter) polyline(s *Polyline) {
	p := s.Path()
	if p.Empty() {
		return
	}
	var coords strings.Builder
	for i := 0; i < p.Size(); i++ {
		if i > 0 {
			coords.WriteString(" -- ")
		}
		coords.WriteString(tikzPt(p.Point(i)))
	}
	if p.Closed() {
		coords.WriteString(" -- cycle")
	}
	e.draw(s.Style(), coords.String())
}

func (e *tikzEmitter) ellipse(s *Ellipse) {
	rx, ry := s.Radii()
	var opts []string
	if s.Angle() != 0 {
		opts = append(opts, fmt.Sprintf("rotate around={%s:%s}",
			svgNum(s.Angle()*180/math.Pi), tikzPt(s.CenterPoint())))
	}
	body := fmt.Sprintf("%s ellipse [x radius=%s, y radius=%s]",
		tikzPt(s.CenterPoint()), svgNum(rx), svgNum(ry))
	e.draw(s.Style(), body, opts...)
}

func (e *tikzEmitter) bezier(s *Bezier) {
	anchors := s.Anchors()
	controls := s.Controls()
	var coords strings.Builder
	coords.WriteString(tikzPt(anchors.Point(0)))
	for i := 0; i+1 < anchors.Size(); i++ {
		fmt.Fprintf(&coords, " .. controls %s and %s .. %s",
			tikzPt(controls.Point(2*i)), tikzPt(controls.Point(2*i+1)),
			tikzPt(anchors.Point(i+1)))
	}
	e.printf("\\draw[%s] %s;\n", e.strokeOpts(s.Style()), coords.String())
}

func (e *tikzEmitter) text(s *Text) {
	opts := []string{"anchor=base west", "text=" + e.name(s.Style().PenColor),
		fmt.Sprintf("font=\\fontsize{%s}{%s}\\selectfont",
			svgNum(s.Size()), svgNum(s.Size()*1.2))}
	if s.Angle() != 0 {
		opts = append(opts, "rotate="+svgNum(s.Angle()*180/math.Pi))
	}
	e.printf("\\node[%s] at %s {%s};\n",
		strings.Join(opts, ","), tikzPt(s.Position()), tikzEscape(s.Content()))
}

// draw picks \draw, \fill or \filldraw depending on which parts of the
// style are visible.
func (e *tikzEmitter) draw(style Style, body string, extra ...string) {
	stroke := style.LineStyle != LineStyleNone && style.PenColor.Visible()
	fill := style.FillColor.Visible()
	var cmd string
	var opts []string
	switch {
	case stroke && fill:
		cmd = "\\filldraw"
		opts = append(opts, e.strokeOpts(style), "fill="+e.name(style.FillColor))
	case fill:
		cmd = "\\fill"
		opts = append(opts, e.name(style.FillColor))
	case stroke:
		cmd = "\\draw"
		opts = append(opts, e.strokeOpts(style))
	default:
		return
	}
	opts = append(opts, extra...)
	e.printf("%s[%s] %s;\n", cmd, strings.Join(opts, ","), body)
}

func (e *tikzEmitter) strokeOpts(s Style) string {
	opts := []string{e.name(s.PenColor), "line width=" + svgNum(s.LineWidth) + "pt"}
	switch s.LineCap {
	case LineCapRound:
		opts = append(opts, "cap=round")
	case LineCapSquare:
		opts = append(opts, "cap=rect")
	}
	switch s.LineJoin {
	case LineJoinRound:
		opts = append(opts, "line join=round")
	case LineJoinBevel:
		opts = append(opts, "line join=bevel")
	}
	if dashes := s.LineStyle.dashPattern(); len(dashes) > 0 {
		var pat strings.Builder
		pat.WriteString("dash pattern=")
		for i := 0; i+1 < len(dashes); i += 2 {
			if i > 0 {
				pat.WriteString(" ")
			}
			fmt.Fprintf(&pat, "on %spt off %spt",
				svgNum(dashes[i]*s.LineWidth), svgNum(dashes[i+1]*s.LineWidth))
		}
		opts = append(opts, pat.String())
	}
	return strings.Join(opts, ",")
}

func tikzPt(p Point) string {
	return fmt.Sprintf("(%s,%s)", svgNum(p.X), svgNum(p.Y))
}

func tikzEscape(s string) string {
	r := strings.NewReplacer(
		`\`, `\textbackslash{}`,
		`#`, `\#`, `$`, `\$`, `%`, `\%`, `&`, `\&`,
		`_`, `\_`, `{`, `\{`, `}`, `\}`,
		`~`, `\textasciitilde{}`, `^`, `\textasciicircum{}`,
	)
	return r.Replace(s)
}
