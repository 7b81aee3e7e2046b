package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/blobposter/pkg/pipeline"
	"github.com/matzehuels/blobposter/pkg/poster"
)

// control is one adjustable row of the TUI sidebar.
type control struct {
	label string

	// value formats the current setting.
	value func(o *pipeline.Options) string

	// adjust moves the setting by delta steps, staying within bounds.
	adjust func(o *pipeline.Options, delta int)

	// position reports where a bounded numeric setting sits in its range,
	// as a fraction in [0,1]. Nil for unbounded or enumerated settings.
	position func(o *pipeline.Options) float64
}

// controls lists the sidebar rows in display order.
var controls = []control{
	{
		label:  "Layers",
		value:  func(o *pipeline.Options) string { return strconv.Itoa(o.Layers) },
		adjust: func(o *pipeline.Options, d int) { o.Layers = min(max(o.Layers+d, pipeline.MinLayers), pipeline.MaxLayers) },
		position: func(o *pipeline.Options) float64 {
			return fraction(float64(o.Layers), pipeline.MinLayers, pipeline.MaxLayers)
		},
	},
	{
		label:  "Seed",
		value:  func(o *pipeline.Options) string { return strconv.FormatInt(o.Seed, 10) },
		adjust: func(o *pipeline.Options, d int) { o.Seed = stepSeed(o.Seed, d) },
	},
	{
		label:  "Palette",
		value:  func(o *pipeline.Options) string { return o.Palette },
		adjust: func(o *pipeline.Options, d int) { o.Palette = cyclePalette(o.Palette, d) },
	},
	{
		label:  "Style",
		value:  func(o *pipeline.Options) string { return o.Style },
		adjust: func(o *pipeline.Options, d int) { o.Style = cycleStyle(o.Style, d) },
	},
	floatControl("Wobble min", func(o *pipeline.Options) *float64 { return &o.WobbleMin }, pipeline.MinWobble, pipeline.MaxWobble),
	floatControl("Wobble max", func(o *pipeline.Options) *float64 { return &o.WobbleMax }, pipeline.MinWobble, pipeline.MaxWobble),
	floatControl("Radius min", func(o *pipeline.Options) *float64 { return &o.RadiusMin }, pipeline.MinRadius, pipeline.MaxRadius),
	floatControl("Radius max", func(o *pipeline.Options) *float64 { return &o.RadiusMax }, pipeline.MinRadius, pipeline.MaxRadius),
	{
		label: "Mode",
		value: func(o *pipeline.Options) string {
			mode, _ := poster.ParsePerturbationMode(o.Perturbation)
			return string(mode)
		},
		adjust: func(o *pipeline.Options, d int) { o.Perturbation = string(cycleMode(o.Perturbation, d)) },
	},
}

// stepSeed moves seed by d, saturating at 0 and math.MaxInt64.
func stepSeed(seed int64, d int) int64 {
	delta := int64(d)
	switch {
	case delta > 0 && seed > math.MaxInt64-delta:
		return math.MaxInt64
	case seed+delta < 0:
		return 0
	}
	return seed + delta
}

// floatControl builds a slider stepping by pipeline.ControlStep.
func floatControl(label string, field func(*pipeline.Options) *float64, lo, hi float64) control {
	return control{
		label: label,
		value: func(o *pipeline.Options) string { return fmt.Sprintf("%.2f", *field(o)) },
		adjust: func(o *pipeline.Options, d int) {
			p := field(o)
			v := *p + float64(d)*pipeline.ControlStep
			v = math.Round(v/pipeline.ControlStep) * pipeline.ControlStep
			*p = math.Min(math.Max(v, lo), hi)
		},
		position: func(o *pipeline.Options) float64 { return fraction(*field(o), lo, hi) },
	}
}

func fraction(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return math.Min(math.Max((v-lo)/(hi-lo), 0), 1)
}

func cyclePalette(current string, d int) string {
	name, _ := poster.ParsePalette(current)
	return string(cycle(poster.Palettes, name, d))
}

func cycleStyle(current string, d int) string {
	st, _ := poster.ParseStyle(current)
	return string(cycle(poster.Styles, st, d))
}

func cycleMode(current string, d int) poster.PerturbationMode {
	mode, _ := poster.ParsePerturbationMode(current)
	return cycle(poster.PerturbationModes, mode, d)
}

// cycle steps through values with wrap-around. Values not in the list
// start from the first entry.
func cycle[T comparable](values []T, current T, d int) T {
	i := 0
	for j, v := range values {
		if v == current {
			i = j
			break
		}
	}
	n := len(values)
	return values[((i+d)%n+n)%n]
}
