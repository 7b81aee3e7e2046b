package poster

// Poster is the result of one generation request.
type Poster struct {
	// Seed is the seed actually used, after resolving RandomSeed.
	Seed    int64      `json:"seed"`
	Spec    PosterSpec `json:"spec"`
	Palette Palette    `json:"palette"`
	Layers  []Layer    `json:"layers"`
}

// Generate resolves the seed, seeds a fresh source and runs palette
// selection followed by field generation.
func Generate(spec PosterSpec) (Poster, error) {
	if err := spec.Validate(); err != nil {
		return Poster{}, err
	}
	seed := ResolveSeed(spec.Seed)
	rng := NewSource(seed)

	palette := SelectPalette(rng, spec.Palette, spec.Style, spec.PaletteSize)
	layers, err := GenerateField(rng, spec, palette)
	if err != nil {
		return Poster{}, err
	}
	return Poster{Seed: seed, Spec: spec, Palette: palette, Layers: layers}, nil
}
