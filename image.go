package board

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
)

// Image is a bitmap placed on the board. The bitmap itself is never
// resampled: the shape tracks the quadrilateral the image is mapped onto
// as a closed four-point path, so translation, rotation and scaling are
// pure geometry.
type Image struct {
	styledShape
	img  image.Image
	quad *Path
}

// NewImage places img with its bottom-left corner at pos, mapped onto a
// width x height rectangle in board units.
func NewImage(img image.Image, pos Point, width, height float64) *Image {
	return &Image{
		styledShape: styledShape{style: DefaultStyle()},
		img:         img,
		quad: NewClosedPath(
			Point{X: pos.X, Y: pos.Y + height},
			Point{X: pos.X + width, Y: pos.Y + height},
			Point{X: pos.X + width, Y: pos.Y},
			pos,
		),
	}
}

// LoadImage reads a PNG, JPEG or GIF file and places it like NewImage.
func LoadImage(path string, pos Point, width, height float64) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("board: opening image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("board: decoding image %q: %w", path, err)
	}
	return NewImage(img, pos, width, height), nil
}

// Name returns "Image".
func (im *Image) Name() string { return "Image" }

// Clone returns a copy of the shape. The pixel data is immutable by
// convention and shared; the geometry is deep-copied.
func (im *Image) Clone() Shape {
	return &Image{styledShape: im.styledShape, img: im.img, quad: im.quad.Clone()}
}

// Bitmap returns the underlying bitmap.
func (im *Image) Bitmap() image.Image { return im.img }

// Quad returns the closed path of the four corners the bitmap is mapped
// onto, in top-left, top-right, bottom-right, bottom-left order.
func (im *Image) Quad() *Path { return im.quad }

// Translate moves the image in place.
func (im *Image) Translate(dx, dy float64) {
	im.quad.Translate(dx, dy)
}

// Rotate rotates the image in place around center.
func (im *Image) Rotate(angle float64, center Point) {
	im.quad.Rotate(angle, center)
}

// Scale scales the image in place relative to its own center.
func (im *Image) Scale(sx, sy float64) {
	im.quad.Scale(sx, sy)
}

// ScaleAll scales the image's absolute coordinates relative to the
// origin.
func (im *Image) ScaleAll(sx, sy float64) {
	im.quad.ScaleAll(sx, sy)
}

// BoundingBox returns the bounding box of the image quadrilateral. Images
// have no stroke, so the flag has no effect.
func (im *Image) BoundingBox(LineWidthFlag) Rect {
	return im.quad.BoundingBox()
}

// Center returns the center of the image's bounding box.
func (im *Image) Center(flag LineWidthFlag) Point {
	return shapeCenter(im, flag)
}

// base64PNG encodes the bitmap as a base64 PNG data URI for embedding in
// SVG output.
func (im *Image) base64PNG() (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, im.img); err != nil {
		return "", fmt.Errorf("board: encoding image: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
