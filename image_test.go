package board

import (
	"image"
	"image/color"
	"math"
	"strings"
	"testing"
)

func testBitmap() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 60), A: 255})
		}
	}
	return img
}

func TestImageGeometry(t *testing.T) {
	im := NewImage(testBitmap(), Pt(1, 2), 8, 4)
	box := im.BoundingBox(IgnoreLineWidth)
	if box.Left != 1 || box.Bottom() != 2 || box.Width != 8 || box.Height != 4 {
		t.Errorf("image box = %+v", box)
	}
	approxPoint(t, "center", im.Center(IgnoreLineWidth), Pt(5, 4))
}

func TestImageTransforms(t *testing.T) {
	im := NewImage(testBitmap(), Pt(0, 0), 4, 2)
	im.Translate(1, 1)
	box := im.BoundingBox(IgnoreLineWidth)
	if box.Left != 1 || box.Bottom() != 1 {
		t.Errorf("translated box = %+v", box)
	}

	im = NewImage(testBitmap(), Pt(0, 0), 4, 2)
	im.Rotate(math.Pi/2, Pt(0, 0))
	box = im.BoundingBox(IgnoreLineWidth)
	if math.Abs(box.Width-2) > testEps || math.Abs(box.Height-4) > testEps {
		t.Errorf("rotated box = %+v, want 2x4", box)
	}

	im = NewImage(testBitmap(), Pt(0, 0), 4, 2)
	im.ScaleAll(2, 3)
	box = im.BoundingBox(IgnoreLineWidth)
	if math.Abs(box.Width-8) > testEps || math.Abs(box.Height-6) > testEps {
		t.Errorf("scaled box = %+v, want 8x6", box)
	}
}

func TestImageCloneSharesBitmap(t *testing.T) {
	im := NewImage(testBitmap(), Pt(0, 0), 4, 2)
	c := im.Clone().(*Image)
	if c.Bitmap() != im.Bitmap() {
		t.Error("clone should share the immutable bitmap")
	}
	c.Translate(10, 0)
	if im.BoundingBox(IgnoreLineWidth).Left != 0 {
		t.Error("clone translation moved the original")
	}
}

func TestImageBase64PNG(t *testing.T) {
	im := NewImage(testBitmap(), Pt(0, 0), 4, 4)
	uri, err := im.base64PNG()
	if err != nil {
		t.Fatalf("base64PNG: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("unexpected data URI prefix: %.40s", uri)
	}
	if len(uri) < 100 {
		t.Errorf("suspiciously short data URI: %d bytes", len(uri))
	}
}
