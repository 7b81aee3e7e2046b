package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/blobposter/pkg/fonts"
	"github.com/matzehuels/blobposter/pkg/poster"
)

// PNG renders posters as PNG images.
type PNG struct {
	canvas
	dc  *gg.Context
	err error
}

// NewPNG creates a PNG sink.
func NewPNG(opts ...Option) *PNG {
	return &PNG{canvas: newCanvas(opts)}
}

// ClearCanvas implements render.Renderer.
func (p *PNG) ClearCanvas(aspectRatio float64) {
	p.resize(aspectRatio)
	p.err = nil
	p.dc = gg.NewContext(int(math.Round(p.width)), int(p.height))
	p.dc.SetColor(p.background.RGBA())
	p.dc.Clear()
}

// FillPolygon implements render.Renderer.
func (p *PNG) FillPolygon(vertices []poster.Point, c poster.Color, opacity float64) {
	p.ensureStarted()
	if len(vertices) == 0 {
		return
	}

	p.dc.NewSubPath()
	for i, v := range vertices {
		x, y := p.px(v)
		if i == 0 {
			p.dc.MoveTo(x, y)
		} else {
			p.dc.LineTo(x, y)
		}
	}
	p.dc.ClosePath()

	cc := c.Clamped()
	p.dc.SetRGBA(cc.R, cc.G, cc.B, max(0, min(opacity, 1)))
	p.dc.Fill()
}

// DrawText implements render.Renderer. Font errors are reported by Present.
func (p *PNG) DrawText(x, y float64, text string, fontSize float64, bold bool) {
	p.ensureStarted()

	face, err := fonts.Face(p.fontPx(fontSize), bold)
	if err != nil {
		if p.err == nil {
			p.err = fmt.Errorf("load font: %w", err)
		}
		return
	}
	px, py := p.px(poster.Point{X: x, Y: y})
	p.dc.SetFontFace(face)
	p.dc.SetRGB(0, 0, 0)
	p.dc.DrawString(text, px, py)
}

// Present implements render.Renderer.
func (p *PNG) Present() ([]byte, error) {
	p.ensureStarted()
	defer func() { p.dc = nil }()

	if p.err != nil {
		return nil, p.err
	}
	var buf bytes.Buffer
	if err := p.dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *PNG) ensureStarted() {
	if p.dc == nil {
		p.ClearCanvas(p.width / p.height)
	}
}
