package board

import (
	"math"
	"math/rand/v2"
)

// FillStyle selects how the rough filter renders a shape's fill.
type FillStyle int

const (
	// NoRoughFill discards fills entirely.
	NoRoughFill FillStyle = iota
	// PlainRoughFill keeps the original solid fill under the sketched
	// outline.
	PlainRoughFill
	// HachureRoughFill replaces fills with parallel hachure lines.
	HachureRoughFill
	// CrossingRoughFill replaces fills with two perpendicular sets of
	// hachure lines.
	CrossingRoughFill
)

const (
	defaultRoughRepeat    = 2
	defaultRoughMagnitude = 0.6
	defaultRoughSpacing   = 4.0
	defaultRoughAngle     = math.Pi / 4
	roughSampleCount      = 32
)

// Rougher rewrites shapes to look hand-drawn: outlines are redrawn
// several times with small random perturbations and fills are replaced
// by hachures. The random source is explicit and seeded, so the same
// seed always produces the same drawing.
type Rougher struct {
	rng       *rand.Rand
	repeat    int
	magnitude float64
	fill      FillStyle
	angle     float64
	spacing   float64
}

// RougherOption configures a Rougher during creation.
type RougherOption func(*Rougher)

// WithRepeat sets how many perturbed copies of each outline are drawn.
func WithRepeat(n int) RougherOption {
	return func(r *Rougher) {
		if n >= 1 {
			r.repeat = n
		}
	}
}

// WithMagnitude sets the maximum perturbation of outline points, in
// board units.
func WithMagnitude(m float64) RougherOption {
	return func(r *Rougher) { r.magnitude = math.Abs(m) }
}

// WithFillStyle selects how fills are rendered.
func WithFillStyle(f FillStyle) RougherOption {
	return func(r *Rougher) { r.fill = f }
}

// WithHachures sets the angle and spacing of the hachure fill lines.
func WithHachures(angle, spacing float64) RougherOption {
	return func(r *Rougher) {
		r.angle = angle
		if spacing > 0 {
			r.spacing = spacing
		}
	}
}

// NewRougher returns a rough filter driven by the given seed.
func NewRougher(seed uint64, options ...RougherOption) *Rougher {
	r := &Rougher{
		rng:       rand.New(rand.NewPCG(seed, seed)),
		repeat:    defaultRoughRepeat,
		magnitude: defaultRoughMagnitude,
		fill:      HachureRoughFill,
		angle:     defaultRoughAngle,
		spacing:   defaultRoughSpacing,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Apply returns a hand-drawn rendition of s as a Group. The input shape
// is not modified.
func (r *Rougher) Apply(s Shape) *Group {
	out := NewGroup()
	r.rough(s, out)
	return out
}

// Board returns a copy of b with every shape passed through the filter.
// The board's style stack and background are preserved.
func (r *Rougher) Board(b *Board) *Board {
	out := b.Clone()
	out.Clear()
	b.Each(func(s Shape) {
		out.Add(r.Apply(s))
	})
	return out
}

func (r *Rougher) rough(s Shape, out *Group) {
	switch s := s.(type) {
	case *Group:
		s.Each(func(child Shape) { r.rough(child, out) })
	case *Line:
		a, b := s.Endpoints()
		r.roughPath(NewPath(a, b), s.Style(), out)
	case *Arrow:
		a, b := s.Endpoints()
		r.roughPath(NewPath(a, b), s.Style(), out)
		r.fillPath(s.HeadPath(), s.Style().WithFillColor(s.Style().PenColor), out)
		r.roughPath(s.HeadPath(), s.Style(), out)
	case *Polyline:
		r.fillPath(s.Path(), s.Style(), out)
		r.roughPath(s.Path(), s.Style(), out)
	case *Ellipse:
		r.roughEllipse(s, out)
	case *Bezier:
		r.roughPath(s.DiscretizedPath(), s.Style(), out)
	case *Dot:
		// A dot has no outline to sketch.
		out.Add(s)
	default:
		// Text and images pass through untouched.
		out.Add(s)
	}
}

// roughPath adds repeat perturbed copies of p, each drawn without fill.
func (r *Rougher) roughPath(p *Path, style Style, out *Group) {
	if p.Empty() {
		return
	}
	stroke := style.WithFillColor(Transparent)
	for i := 0; i < r.repeat; i++ {
		out.Add(NewPolyline(r.jitter(p), stroke))
	}
}

// fillPath adds the fill rendition of the closed path p.
func (r *Rougher) fillPath(p *Path, style Style, out *Group) {
	if !style.FillColor.Visible() {
		return
	}
	switch r.fill {
	case PlainRoughFill:
		out.Add(NewPolyline(p, style.WithPenColor(Transparent)))
	case HachureRoughFill:
		r.addHachures(Hachures(p, r.spacing, r.angle, false), style, out)
	case CrossingRoughFill:
		r.addHachures(CrossingHachures(p, r.spacing, r.angle), style, out)
	}
}

func (r *Rougher) addHachures(segments []Segment, style Style, out *Group) {
	lineStyle := style.WithPenColor(style.FillColor).WithFillColor(Transparent)
	for _, seg := range segments {
		a := r.perturb(seg.A)
		b := r.perturb(seg.B)
		out.Add(NewLine(a, b, lineStyle))
	}
}

func (r *Rougher) roughEllipse(e *Ellipse, out *Group) {
	if e.Style().FillColor.Visible() {
		switch r.fill {
		case PlainRoughFill:
			filled := e.Clone()
			filled.SetStyle(e.Style().WithPenColor(Transparent))
			out.Add(filled)
		case HachureRoughFill:
			r.addHachures(EllipseHachures(e, r.spacing, r.angle), e.Style(), out)
		case CrossingRoughFill:
			r.addHachures(CrossingEllipseHachures(e, r.spacing, r.angle), e.Style(), out)
		}
	}
	// Each pass starts in a different quadrant so the overlapping
	// sketch strokes do not share their visible seam.
	stroke := e.Style().WithFillColor(Transparent)
	for i := 0; i < r.repeat; i++ {
		sampled := e.SampledPath(roughSampleCount, i%4)
		out.Add(NewPolyline(r.jitter(sampled), stroke))
	}
}

// jitter returns a copy of p with every point displaced by at most the
// filter magnitude along each axis.
func (r *Rougher) jitter(p *Path) *Path {
	c := p.Clone()
	for i := 0; i < c.Size(); i++ {
		c.SetPoint(i, r.perturb(c.Point(i)))
	}
	return c
}

func (r *Rougher) perturb(p Point) Point {
	return Point{
		X: p.X + r.magnitude*(2*r.rng.Float64()-1),
		Y: p.Y + r.magnitude*(2*r.rng.Float64()-1),
	}
}
