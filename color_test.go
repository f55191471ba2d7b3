package board

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Red},
		{"#00ff00", Green},
		{"#0000ff", Blue},
		{"#000000", Black},
		{"#ffffff", White},
		{"#f00", Red},
		{"#ff000080", Color{R: 1, A: 128.0 / 255}},
		{"#f008", Color{R: 1, A: 136.0 / 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Hex(tt.in)
			assert.InDelta(t, tt.want.R, got.R, 1e-9)
			assert.InDelta(t, tt.want.G, got.G, 1e-9)
			assert.InDelta(t, tt.want.B, got.B, 1e-9)
			assert.InDelta(t, tt.want.A, got.A, 1e-2)
		})
	}
}

func TestHexInvalid(t *testing.T) {
	buf := captureLog(t)
	got := Hex("not-a-color")
	assert.Equal(t, Black, got)
	assert.NotZero(t, buf.Len(), "expected a warning for an invalid hex string")
}

func TestHexString(t *testing.T) {
	assert.Equal(t, "#ff0000", Red.HexString())
	assert.Equal(t, "#ffffff", White.HexString())
	// Round trip through the string form.
	c := RGB(0.2, 0.4, 0.6)
	rt := Hex(c.HexString())
	assert.InDelta(t, c.R, rt.R, 1.0/255)
	assert.InDelta(t, c.G, rt.G, 1.0/255)
	assert.InDelta(t, c.B, rt.B, 1.0/255)
}

func TestHSV(t *testing.T) {
	red := HSV(0, 1, 1)
	assert.InDelta(t, 1, red.R, 1e-9)
	assert.InDelta(t, 0, red.G, 1e-9)
	assert.InDelta(t, 0, red.B, 1e-9)

	h, s, v := RGB(0, 1, 0).HSV()
	assert.InDelta(t, 120, h, 1e-6)
	assert.InDelta(t, 1, s, 1e-9)
	assert.InDelta(t, 1, v, 1e-9)
}

func TestColorVisible(t *testing.T) {
	assert.False(t, Transparent.Visible())
	assert.True(t, Black.Visible())
	assert.False(t, Color{R: 1, G: 1, B: 1, A: 0}.Visible())
}

func TestColorImageBridge(t *testing.T) {
	c := RGBA(1, 0.5, 0, 0.5)
	r, g, b, a := c.Color().RGBA()
	// Premultiplied 16-bit channels.
	assert.InDelta(t, 0.5, float64(a)/65535, 1.0/255)
	assert.True(t, r >= g && g >= b)

	// An opaque color survives the round trip unchanged.
	o := RGB(1, 0.5, 0)
	back := FromColor(o.Color())
	assert.InDelta(t, o.R, back.R, 1.0/255)
	assert.InDelta(t, o.G, back.G, 1.0/255)
	assert.InDelta(t, 1, back.A, 1e-9)
}

func TestClamp01(t *testing.T) {
	if clamp01(2) != 1 || clamp01(-1) != 0 || clamp01(0.5) != 0.5 {
		t.Error("clamp01 misbehaves")
	}
	if math.IsNaN(clamp01(0.3)) {
		t.Error("unexpected NaN")
	}
}

func TestPaletteHexStrings(t *testing.T) {
	for _, tt := range []struct {
		c    Color
		want string
	}{
		{Yellow, "#ffff00"},
		{Cyan, "#00ffff"},
		{Magenta, "#ff00ff"},
	} {
		if got := tt.c.HexString(); !strings.EqualFold(got, tt.want) {
			t.Errorf("HexString = %s, want %s", got, tt.want)
		}
	}
}
