// Package pipeline provides the generate → render pipeline for blobposter.
//
// This package ties the poster generator to the output sinks so the CLI,
// the interactive TUI and the HTTP server all produce identical posters for
// identical options.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: seed a fresh random source, select a palette, generate layers
//  2. Render: draw the poster into one or more output formats (SVG, PNG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.Style = "Noise Touch"
//	opts.Formats = []string{"svg", "png"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Options can also be read from a TOML file with [LoadOptionsFile].
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blobposter/pkg/errors"
	"github.com/matzehuels/blobposter/pkg/poster"
	"github.com/matzehuels/blobposter/pkg/render"
	"github.com/matzehuels/blobposter/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, TUI, and Server
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = sink.DefaultWidth

	// DefaultBackground is the default paper colour.
	DefaultBackground = "#fafaf7"
)

// Control bounds of the interactive surfaces (TUI sliders, server query
// parameters). The library itself accepts any finite value.
const (
	MinLayers = 3
	MaxLayers = 20

	MinWobble = 0.0
	MaxWobble = 0.5

	MinRadius = 0.05
	MaxRadius = 0.5

	// ControlStep is the increment of the wobble and radius controls.
	ControlStep = 0.01
)

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one poster.
// This struct supports JSON and TOML serialization.
type Options struct {
	// Generate options
	Layers       int     `json:"layers" toml:"layers"`
	Seed         int64   `json:"seed" toml:"seed"`
	Palette      string  `json:"palette" toml:"palette"`
	Style        string  `json:"style" toml:"style"`
	WobbleMin    float64 `json:"wobble_min" toml:"wobble_min"`
	WobbleMax    float64 `json:"wobble_max" toml:"wobble_max"`
	RadiusMin    float64 `json:"radius_min" toml:"radius_min"`
	RadiusMax    float64 `json:"radius_max" toml:"radius_max"`
	Points       int     `json:"points,omitempty" toml:"points"`
	Perturbation string  `json:"perturbation,omitempty" toml:"perturbation"`
	PaletteSize  int     `json:"palette_size,omitempty" toml:"palette_size"`

	// Render options
	Formats    []string `json:"formats,omitempty" toml:"formats"`
	Width      float64  `json:"width,omitempty" toml:"width"`
	Title      string   `json:"title,omitempty" toml:"title"`
	Subtitle   string   `json:"subtitle,omitempty" toml:"subtitle"`
	HideText   bool     `json:"hide_text,omitempty" toml:"hide_text"`
	Background string   `json:"background,omitempty" toml:"background"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`
}

// DefaultOptions returns the default poster options.
func DefaultOptions() Options {
	spec := poster.DefaultSpec()
	return Options{
		Layers:       spec.Layers,
		Seed:         spec.Seed,
		Palette:      string(spec.Palette),
		Style:        string(spec.Style),
		WobbleMin:    spec.Wobble.Min,
		WobbleMax:    spec.Wobble.Max,
		RadiusMin:    spec.Radius.Min,
		RadiusMax:    spec.Radius.Max,
		Points:       spec.Points,
		Perturbation: string(spec.Perturbation),
		PaletteSize:  spec.PaletteSize,
		Formats:      []string{FormatSVG},
		Width:        DefaultWidth,
		Title:        render.DefaultTitle,
		Subtitle:     render.DefaultSubtitle,
		Background:   DefaultBackground,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Poster is the generated poster, including the resolved seed.
	Poster poster.Poster

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LayerCount   int
	VertexCount  int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f, ValidFormats); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePerturbation checks that a perturbation mode name is known.
func ValidatePerturbation(mode string) error {
	if _, ok := poster.ParsePerturbationMode(mode); !ok {
		return errors.New(errors.ErrCodeInvalidMode, "invalid perturbation mode: %q (must be one of: standard, soft)", mode)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset render options. Generation parameters are left
// alone: zero layers or zero wobble are legitimate requests.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Palette == "" {
		o.Palette = string(poster.PaletteRandom)
	}
	if o.Style == "" {
		o.Style = string(poster.StyleVivid)
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks everything generation and rendering
// cannot recover from. Unknown palette and style names are not errors; they
// fall back to Random and Vivid.
func (o *Options) Validate() error {
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidatePerturbation(o.Perturbation); err != nil {
		return err
	}
	if o.Width < 0 || math.IsNaN(o.Width) || math.IsInf(o.Width, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "width must be a positive number, got %v", o.Width)
	}
	if err := errors.ValidateHexColor(o.Background); err != nil {
		return err
	}
	return o.Spec().Validate()
}

// Spec converts the generation options into a poster spec.
func (o *Options) Spec() poster.PosterSpec {
	palette, _ := poster.ParsePalette(o.Palette)
	style, _ := poster.ParseStyle(o.Style)
	mode, _ := poster.ParsePerturbationMode(o.Perturbation)
	return poster.PosterSpec{
		Layers:       o.Layers,
		Seed:         o.Seed,
		Palette:      palette,
		Style:        style,
		Wobble:       poster.Range{Min: o.WobbleMin, Max: o.WobbleMax},
		Radius:       poster.Range{Min: o.RadiusMin, Max: o.RadiusMax},
		Points:       o.Points,
		Perturbation: mode,
		PaletteSize:  o.PaletteSize,
	}
}

// Clamp limits the interactive controls to their slider bounds.
func (o *Options) Clamp() {
	o.Layers = min(max(o.Layers, MinLayers), MaxLayers)
	o.WobbleMin = clamp(o.WobbleMin, MinWobble, MaxWobble)
	o.WobbleMax = clamp(o.WobbleMax, MinWobble, MaxWobble)
	o.RadiusMin = clamp(o.RadiusMin, MinRadius, MaxRadius)
	o.RadiusMax = clamp(o.RadiusMax, MinRadius, MaxRadius)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// drawOptions returns the render options for the title block.
func (o *Options) drawOptions() []render.Option {
	if o.HideText {
		return []render.Option{render.WithTitle(""), render.WithSubtitle("")}
	}
	return []render.Option{render.WithTitle(o.Title), render.WithSubtitle(o.Subtitle)}
}
