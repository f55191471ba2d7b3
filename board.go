package board

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned by Save when the file extension does not
// match any supported output format.
var ErrUnknownFormat = errors.New("board: unknown output format")

// Board is a drawing surface: an ordered collection of shapes plus a
// style stack whose top is applied to every shape drawn through the
// Draw* helpers. Shapes are painted back-to-front in insertion order.
type Board struct {
	shapes     *Group
	styles     *StyleStack
	background Color
}

// BoardOption configures a Board during creation.
//
// Example:
//
//	b := board.New(board.WithBackground(board.White))
type BoardOption func(*Board)

// WithStyle sets the initial style at the base of the board's style
// stack.
func WithStyle(s Style) BoardOption {
	return func(b *Board) {
		b.styles.SetTop(s)
	}
}

// WithBackground sets the color painted behind all shapes when the board
// is exported.
func WithBackground(c Color) BoardOption {
	return func(b *Board) {
		b.background = c
	}
}

// New creates an empty board with a transparent background and the
// default style.
func New(options ...BoardOption) *Board {
	b := &Board{
		shapes:     NewGroup(),
		styles:     NewStyleStack(DefaultStyle()),
		background: Transparent,
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// Style returns the style currently on top of the stack.
func (b *Board) Style() Style { return b.styles.Top() }

// SetStyle replaces the style on top of the stack.
func (b *Board) SetStyle(s Style) { b.styles.SetTop(s) }

// PushStyle duplicates the current style so later changes can be undone
// with PopStyle.
func (b *Board) PushStyle() { b.styles.Push() }

// PopStyle restores the style that was current before the matching
// PushStyle.
func (b *Board) PopStyle() { b.styles.Pop() }

// SetPenColor sets the stroke color of the current style.
func (b *Board) SetPenColor(c Color) { b.SetStyle(b.Style().WithPenColor(c)) }

// SetFillColor sets the fill color of the current style.
func (b *Board) SetFillColor(c Color) { b.SetStyle(b.Style().WithFillColor(c)) }

// SetLineWidth sets the stroke width of the current style.
func (b *Board) SetLineWidth(w float64) { b.SetStyle(b.Style().WithLineWidth(w)) }

// SetLineStyle sets the dash pattern of the current style.
func (b *Board) SetLineStyle(ls LineStyle) { b.SetStyle(b.Style().WithLineStyle(ls)) }

// SetLineCap sets the stroke end-cap of the current style.
func (b *Board) SetLineCap(c LineCap) { b.SetStyle(b.Style().WithLineCap(c)) }

// SetLineJoin sets the stroke join of the current style.
func (b *Board) SetLineJoin(j LineJoin) { b.SetStyle(b.Style().WithLineJoin(j)) }

// Background returns the board's background color.
func (b *Board) Background() Color { return b.background }

// SetBackground sets the color painted behind all shapes on export.
func (b *Board) SetBackground(c Color) { b.background = c }

// Add appends a copy of s styled as-is, without applying the board
// style. It returns the board for chaining.
func (b *Board) Add(s Shape) *Board {
	b.shapes.Add(s)
	return b
}

// addStyled applies the current board style to s and appends it.
func (b *Board) addStyled(s Shape) {
	s.SetStyle(b.Style())
	b.shapes.Add(s)
}

// DrawLine draws a straight segment from (x1,y1) to (x2,y2) with the
// current style.
func (b *Board) DrawLine(x1, y1, x2, y2 float64) {
	b.addStyled(NewLine(Point{X: x1, Y: y1}, Point{X: x2, Y: y2}, b.Style()))
}

// DrawArrow draws a segment from (x1,y1) to (x2,y2) ending in a filled
// arrowhead at the second point.
func (b *Board) DrawArrow(x1, y1, x2, y2 float64) {
	b.addStyled(NewArrow(Point{X: x1, Y: y1}, Point{X: x2, Y: y2}, b.Style()))
}

// DrawRectangle draws the outline of r with the current style.
func (b *Board) DrawRectangle(r Rect) {
	b.addStyled(NewRectangleShape(r, b.Style()))
}

// DrawPolyline draws a polyline through the given path with the current
// style. The path is copied.
func (b *Board) DrawPolyline(p *Path) {
	b.addStyled(NewPolyline(p, b.Style()))
}

// DrawEllipse draws an axis-aligned ellipse centered at (x,y) with the
// given radii.
func (b *Board) DrawEllipse(x, y, rx, ry float64) {
	b.addStyled(NewEllipse(Point{X: x, Y: y}, rx, ry, 0, b.Style()))
}

// DrawCircle draws a circle of the given radius centered at (x,y).
func (b *Board) DrawCircle(x, y, radius float64) {
	b.addStyled(NewCircle(Point{X: x, Y: y}, radius, b.Style()))
}

// DrawDot draws a single point marker at (x,y).
func (b *Board) DrawDot(x, y float64) {
	b.addStyled(NewDot(Point{X: x, Y: y}, b.Style()))
}

// DrawText draws s with its baseline starting at (x,y), using the
// current pen color and the given size in board units.
func (b *Board) DrawText(x, y float64, s string, size float64) {
	b.addStyled(NewText(Point{X: x, Y: y}, s, size, b.Style()))
}

// DrawImage places img with its bottom-left corner at (x,y), mapped onto
// a width x height rectangle.
func (b *Board) DrawImage(img image.Image, x, y, width, height float64) {
	b.addStyled(NewImage(img, Point{X: x, Y: y}, width, height))
}

// DrawBezier draws bz with the current style.
func (b *Board) DrawBezier(bz *Bezier) {
	b.addStyled(bz)
}

// Each calls fn for every top-level shape, back to front.
func (b *Board) Each(fn func(Shape)) { b.shapes.Each(fn) }

// Size returns the number of top-level shapes on the board.
func (b *Board) Size() int { return b.shapes.Size() }

// Clear removes every shape. The style stack and background are kept.
func (b *Board) Clear() { b.shapes.Clear() }

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		shapes:     b.shapes.Clone().(*Group),
		styles:     b.styles.Clone(),
		background: b.background,
	}
}

// Translate moves every shape on the board.
func (b *Board) Translate(dx, dy float64) { b.shapes.Translate(dx, dy) }

// Rotate rotates every shape around center.
func (b *Board) Rotate(angle float64, center Point) { b.shapes.Rotate(angle, center) }

// Scale scales the whole drawing relative to the origin.
func (b *Board) Scale(sx, sy float64) { b.shapes.ScaleAll(sx, sy) }

// BoundingBox returns the bounding box of all shapes on the board.
func (b *Board) BoundingBox(flag LineWidthFlag) Rect {
	return b.shapes.BoundingBox(flag)
}

// Save writes the board to path in the format selected by the file
// extension: .svg, .eps, .fig or .tikz/.tex.
func (b *Board) Save(path string) error {
	var write func(io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		write = b.WriteSVG
	case ".eps":
		write = b.WriteEPS
	case ".fig":
		write = b.WriteFIG
	case ".tikz", ".tex":
		write = b.WriteTikZ
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("board: creating %q: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
