package board

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Text is a text label anchored at the left end of its baseline. The
// shape carries only enough font knowledge to measure itself: extents
// come from the embedded Go Regular face metrics, while glyph outlines
// are left to the output format's own text machinery.
type Text struct {
	styledShape
	pos    Point
	text   string
	size   float64
	angle  float64
	xScale float64
	yScale float64
}

var (
	fontOnce sync.Once
	fontFace *sfnt.Font
	fontErr  error
)

func measuringFont() (*sfnt.Font, error) {
	fontOnce.Do(func() {
		fontFace, fontErr = sfnt.Parse(goregular.TTF)
	})
	return fontFace, fontErr
}

// NewText creates a text label at pos with the given font size in board
// units.
func NewText(pos Point, text string, size float64, style Style) *Text {
	return &Text{
		styledShape: styledShape{style: style},
		pos:         pos,
		text:        text,
		size:        size,
		xScale:      1,
		yScale:      1,
	}
}

// Name returns "Text".
func (t *Text) Name() string { return "Text" }

// Clone returns a deep copy of the text shape.
func (t *Text) Clone() Shape {
	c := *t
	return &c
}

// Position returns the baseline anchor point.
func (t *Text) Position() Point { return t.pos }

// Content returns the label's text.
func (t *Text) Content() string { return t.text }

// Size returns the font size in board units.
func (t *Text) Size() float64 { return t.size }

// Angle returns the label rotation in radians.
func (t *Text) Angle() float64 { return t.angle }

// Translate moves the label in place.
func (t *Text) Translate(dx, dy float64) {
	t.pos.X += dx
	t.pos.Y += dy
}

// Rotate rotates the label in place around center.
func (t *Text) Rotate(angle float64, center Point) {
	t.pos = t.pos.RotateAround(angle, center)
	t.angle += angle
}

// Scale stretches the label in place. Uniform scaling adjusts the font
// size; anisotropy accumulates in per-axis stretch factors.
func (t *Text) Scale(sx, sy float64) {
	t.xScale *= sx
	t.yScale *= sy
}

// ScaleAll scales the label's absolute coordinates relative to the
// origin, with the same stretch handling as Scale.
func (t *Text) ScaleAll(sx, sy float64) {
	t.pos = t.pos.ScaleXY(sx, sy)
	t.Scale(sx, sy)
}

// extents measures the label's advance width, ascent and descent in board
// units. Unknown glyphs and font errors degrade to a box estimated from
// the glyph count.
func (t *Text) extents() (width, ascent, descent float64) {
	f, err := measuringFont()
	if err != nil {
		Logger().Warn("text measuring font unavailable", "err", err)
		return t.size * 0.6 * float64(len(t.text)), t.size, t.size * 0.25
	}

	var buf sfnt.Buffer
	ppem := fixed.Int26_6(t.size * 64)
	var adv fixed.Int26_6
	for _, r := range t.text {
		gi, err := f.GlyphIndex(&buf, r)
		if err != nil || gi == 0 {
			adv += ppem / 2
			continue
		}
		a, err := f.GlyphAdvance(&buf, gi, ppem, font.HintingNone)
		if err != nil {
			adv += ppem / 2
			continue
		}
		adv += a
	}
	m, err := f.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		return fixedToFloat(adv), t.size, t.size * 0.25
	}
	return fixedToFloat(adv), fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// boxPath returns the closed path around the label's extent, honoring
// stretch and rotation.
func (t *Text) boxPath() *Path {
	width, ascent, descent := t.extents()
	w := width * t.xScale
	up := ascent * t.yScale
	down := descent * t.yScale
	path := NewClosedPath(
		Point{X: t.pos.X, Y: t.pos.Y - down},
		Point{X: t.pos.X + w, Y: t.pos.Y - down},
		Point{X: t.pos.X + w, Y: t.pos.Y + up},
		Point{X: t.pos.X, Y: t.pos.Y + up},
	)
	if t.angle != 0 {
		path.Rotate(t.angle, t.pos)
	}
	return path
}

// BoundingBox returns the label's bounding box. Text has no stroke, so
// the flag has no effect.
func (t *Text) BoundingBox(LineWidthFlag) Rect {
	return t.boxPath().BoundingBox()
}

// Center returns the center of the label's bounding box.
func (t *Text) Center(flag LineWidthFlag) Point {
	return shapeCenter(t, flag)
}
