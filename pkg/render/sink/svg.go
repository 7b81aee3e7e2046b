package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/matzehuels/blobposter/pkg/fonts"
	"github.com/matzehuels/blobposter/pkg/poster"
)

// SVG renders posters as SVG markup.
type SVG struct {
	canvas
	buf     bytes.Buffer
	started bool
}

// NewSVG creates an SVG sink.
func NewSVG(opts ...Option) *SVG {
	return &SVG{canvas: newCanvas(opts)}
}

// ClearCanvas implements render.Renderer.
func (s *SVG) ClearCanvas(aspectRatio float64) {
	s.resize(aspectRatio)
	s.buf.Reset()
	s.started = true

	fmt.Fprintf(&s.buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		s.width, s.height, s.width, s.height)
	fmt.Fprintf(&s.buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", s.background.Hex())
}

// FillPolygon implements render.Renderer.
func (s *SVG) FillPolygon(vertices []poster.Point, c poster.Color, opacity float64) {
	s.ensureStarted()
	if len(vertices) == 0 {
		return
	}

	s.buf.WriteString(`  <polygon points="`)
	var num []byte
	for i, v := range vertices {
		if i > 0 {
			s.buf.WriteByte(' ')
		}
		x, y := s.px(v)
		num = strconv.AppendFloat(num[:0], x, 'f', 2, 64)
		s.buf.Write(num)
		s.buf.WriteByte(',')
		num = strconv.AppendFloat(num[:0], y, 'f', 2, 64)
		s.buf.Write(num)
	}
	fmt.Fprintf(&s.buf, `" fill="%s" fill-opacity="%.3f" stroke="none"/>`+"\n", c.Hex(), opacity)
}

// DrawText implements render.Renderer.
func (s *SVG) DrawText(x, y float64, text string, fontSize float64, bold bool) {
	s.ensureStarted()

	px, py := s.px(poster.Point{X: x, Y: y})
	weight := "normal"
	if bold {
		weight = "bold"
	}
	fmt.Fprintf(&s.buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.2f" font-weight="%s" fill="#000000">%s</text>`+"\n",
		px, py, escapeXML(fonts.FontFamily), s.fontPx(fontSize), weight, escapeXML(text))
}

// Present implements render.Renderer. The sink can be reused after a new
// ClearCanvas.
func (s *SVG) Present() ([]byte, error) {
	s.ensureStarted()
	s.buf.WriteString("</svg>\n")
	out := bytes.Clone(s.buf.Bytes())
	s.buf.Reset()
	s.started = false
	return out, nil
}

func (s *SVG) ensureStarted() {
	if !s.started {
		s.ClearCanvas(s.width / s.height)
	}
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
