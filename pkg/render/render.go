package render

import (
	"github.com/matzehuels/blobposter/pkg/poster"
)

// Poster layout defaults, matching a 7×10 inch figure.
const (
	DefaultAspectRatio = 0.7
	DefaultTitle       = "Generative Poster"
	DefaultSubtitle    = "Week 2 • Arts & Advanced Big Data"

	titleX, titleY       = 0.05, 0.95
	subtitleX, subtitleY = 0.05, 0.91
	titleSize            = 18.0
	subtitleSize         = 11.0
)

// Renderer is a drawing surface in normalized coordinates.
type Renderer interface {
	// ClearCanvas discards previous content and starts a canvas whose width
	// divided by its height equals aspectRatio.
	ClearCanvas(aspectRatio float64)
	// FillPolygon fills the closed outline through vertices. The last vertex
	// connects back to the first.
	FillPolygon(vertices []poster.Point, c poster.Color, opacity float64)
	// DrawText draws text with its baseline starting at (x, y). fontSize is in
	// points relative to a 7 inch wide canvas.
	DrawText(x, y float64, text string, fontSize float64, bold bool)
	// Present finalizes the canvas and returns its encoded bytes.
	Present() ([]byte, error)
}

// Option configures Draw.
type Option func(*drawOptions)

type drawOptions struct {
	title       string
	subtitle    string
	aspectRatio float64
}

// WithTitle replaces the title. An empty title is not drawn.
func WithTitle(s string) Option { return func(o *drawOptions) { o.title = s } }

// WithSubtitle replaces the subtitle. An empty subtitle is not drawn.
func WithSubtitle(s string) Option { return func(o *drawOptions) { o.subtitle = s } }

// WithAspectRatio sets the canvas aspect ratio (width / height).
func WithAspectRatio(r float64) Option { return func(o *drawOptions) { o.aspectRatio = r } }

// Draw renders p onto r and returns the presented output.
func Draw(r Renderer, p poster.Poster, opts ...Option) ([]byte, error) {
	o := drawOptions{
		title:       DefaultTitle,
		subtitle:    DefaultSubtitle,
		aspectRatio: DefaultAspectRatio,
	}
	for _, opt := range opts {
		opt(&o)
	}

	r.ClearCanvas(o.aspectRatio)
	for _, l := range p.Layers {
		r.FillPolygon(l.Vertices, l.Color, l.Opacity)
	}
	if o.title != "" {
		r.DrawText(titleX, titleY, o.title, titleSize, true)
	}
	if o.subtitle != "" {
		r.DrawText(subtitleX, subtitleY, o.subtitle, subtitleSize, false)
	}
	return r.Present()
}
