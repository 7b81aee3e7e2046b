package poster

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple with channels in [0,1].
type Color struct {
	R, G, B float64
}

// Palette is an ordered list of colours sampled once per poster.
type Palette []Color

// Gray returns a colour with all three channels set to v.
func Gray(v float64) Color { return Color{R: v, G: v, B: v} }

// ColorFromHex parses a "#rrggbb" string.
func ColorFromHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return Color{R: c.R, G: c.G, B: c.B}, nil
}

// Clamped returns c with every channel limited to [0,1].
func (c Color) Clamped() Color {
	cc := c.colorful().Clamped()
	return Color{R: cc.R, G: cc.G, B: cc.B}
}

// IsValid reports whether every channel lies in [0,1].
func (c Color) IsValid() bool { return c.colorful().IsValid() }

// Hex formats c as "#rrggbb", clamping out-of-range channels.
func (c Color) Hex() string { return c.colorful().Clamped().Hex() }

// IsGray reports whether all channels are equal.
func (c Color) IsGray() bool { return c.R == c.G && c.G == c.B }

// RGBA converts c to an opaque 8-bit colour.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.colorful().Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}
