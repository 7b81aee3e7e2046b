// Package fonts provides embedded font faces for raster rendering.
//
// The Go fonts ship inside golang.org/x/image, so rendering text into PNG
// output never depends on fonts installed on the host.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the CSS font-family used by the SVG renderer.
const FontFamily = `'Go', 'Helvetica Neue', Helvetica, Arial, sans-serif`

// Parsed fonts (computed once on first access).
var (
	regular, bold *truetype.Font
	parseErr      error
	parseOnce     sync.Once
)

func parse() {
	if regular, parseErr = truetype.Parse(goregular.TTF); parseErr != nil {
		parseErr = fmt.Errorf("parse regular font: %w", parseErr)
		return
	}
	if bold, parseErr = truetype.Parse(gobold.TTF); parseErr != nil {
		parseErr = fmt.Errorf("parse bold font: %w", parseErr)
	}
}

// Face returns a font face of the given size in points at 72 DPI.
// A face caches glyphs and is not safe for concurrent use, so every call
// returns a new one; the parsed fonts behind it are shared.
func Face(size float64, isBold bool) (font.Face, error) {
	parseOnce.Do(parse)
	if parseErr != nil {
		return nil, parseErr
	}

	ttf := regular
	if isBold {
		ttf = bold
	}
	return truetype.NewFace(ttf, &truetype.Options{Size: size, Hinting: font.HintingFull}), nil
}
