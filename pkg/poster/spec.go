package poster

import (
	"github.com/matzehuels/blobposter/pkg/errors"
)

// Generation defaults.
const (
	DefaultLayers     = 8
	DefaultPointCount = 200
)

// PosterSpec is the full parameter set for one poster. Numeric fields are
// not range-checked: any finite combination produces a well-defined, if
// possibly degenerate, poster.
type PosterSpec struct {
	Layers       int              `json:"layers" toml:"layers"`
	Seed         int64            `json:"seed" toml:"seed"`
	Palette      PaletteName      `json:"palette" toml:"palette"`
	Style        Style            `json:"style" toml:"style"`
	Wobble       Range            `json:"wobble" toml:"wobble"`
	Radius       Range            `json:"radius" toml:"radius"`
	Points       int              `json:"points,omitempty" toml:"points"`
	Perturbation PerturbationMode `json:"perturbation,omitempty" toml:"perturbation"`
	PaletteSize  int              `json:"palette_size,omitempty" toml:"palette_size"`
}

// DefaultSpec returns the default poster parameters.
func DefaultSpec() PosterSpec {
	return PosterSpec{
		Layers:       DefaultLayers,
		Seed:         0,
		Palette:      PaletteRandom,
		Style:        StyleVivid,
		Wobble:       Range{0.05, 0.25},
		Radius:       Range{0.15, 0.45},
		Points:       DefaultPointCount,
		Perturbation: PerturbStandard,
		PaletteSize:  DefaultPaletteSize,
	}
}

// Validate reports non-finite numeric input. It is the only precondition
// generation has.
func (s PosterSpec) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"wobble min", s.Wobble.Min},
		{"wobble max", s.Wobble.Max},
		{"radius min", s.Radius.Min},
		{"radius max", s.Radius.Max},
	}
	for _, f := range fields {
		if err := errors.ValidateFinite(f.name, f.v); err != nil {
			return err
		}
	}
	return nil
}

func (s PosterSpec) pointCount() int {
	if s.Points <= 0 {
		return DefaultPointCount
	}
	return s.Points
}
