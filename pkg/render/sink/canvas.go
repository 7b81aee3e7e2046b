package sink

import (
	"math"

	"github.com/matzehuels/blobposter/pkg/poster"
)

const (
	// DefaultWidth is the canvas width in pixels.
	DefaultWidth = 700.0

	defaultAspect = 0.7
	figureInches  = 7.0
	pointsPerInch = 72.0
)

// Background is the default paper colour.
var Background = poster.Color{R: 0.98, G: 0.98, B: 0.97}

// Option configures a sink.
type Option func(*canvas)

// WithWidth sets the canvas width in pixels. Non-positive widths are ignored.
func WithWidth(w float64) Option {
	return func(c *canvas) {
		if w > 0 && !math.IsInf(w, 0) {
			c.width = w
		}
	}
}

// WithBackground sets the background colour.
func WithBackground(bg poster.Color) Option {
	return func(c *canvas) { c.background = bg }
}

// canvas maps normalized coordinates to pixels, flipping the y axis.
type canvas struct {
	width, height float64
	background    poster.Color
}

func newCanvas(opts []Option) canvas {
	c := canvas{width: DefaultWidth, background: Background}
	for _, opt := range opts {
		opt(&c)
	}
	c.resize(defaultAspect)
	return c
}

func (c *canvas) resize(aspect float64) {
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		aspect = defaultAspect
	}
	c.height = math.Round(c.width / aspect)
}

func (c canvas) px(p poster.Point) (float64, float64) {
	return p.X * c.width, (1 - p.Y) * c.height
}

// fontPx converts points to pixels on this canvas.
func (c canvas) fontPx(pt float64) float64 {
	return pt * c.width / figureInches / pointsPerInch
}
