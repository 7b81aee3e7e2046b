package poster

// DefaultPaletteSize is the number of colours sampled when no size is given.
const DefaultPaletteSize = 6

var (
	minimalDark  = Gray(0.2)
	minimalLight = Gray(0.8)
	monoRange    = Range{0.2, 0.8}
)

// channelBounds holds per-channel sampling ranges for one palette family.
type channelBounds struct {
	r, g, b Range
}

var unitBounds = channelBounds{Range{0, 1}, Range{0, 1}, Range{0, 1}}

var paletteBounds = map[PaletteName]channelBounds{
	PaletteRandom:     unitBounds,
	PalettePastel:     {Range{0.6, 1.0}, Range{0.6, 1.0}, Range{0.6, 1.0}},
	PaletteVibrant:    {Range{0.5, 1.0}, Range{0.0, 0.8}, Range{0.0, 0.8}},
	PaletteEarthy:     {Range{0.4, 0.7}, Range{0.3, 0.6}, Range{0.2, 0.4}},
	PaletteCoolBlues:  {Range{0.2, 0.5}, Range{0.4, 0.8}, Range{0.7, 1.0}},
	PaletteWarmSunset: {Range{0.8, 1.0}, Range{0.3, 0.5}, Range{0.2, 0.4}},
}

// SelectPalette samples a palette of k colours (DefaultPaletteSize when
// k <= 0). The style takes precedence over the palette family:
//
//   - Monochrome: one gray level from [0.2,0.8], repeated k times.
//   - Noise Touch: k colours with every channel uniform in [0,1].
//   - Minimal: exactly dark gray and light gray; k is ignored and no draws
//     are consumed.
//   - Vivid (and unknown styles): per-channel bounds of the palette family,
//     with unknown families falling back to Random.
//
// Channels are drawn in R, G, B order, one colour at a time.
func SelectPalette(rng RandomSource, name PaletteName, style Style, k int) Palette {
	if k <= 0 {
		k = DefaultPaletteSize
	}

	switch style {
	case StyleMonochrome:
		base := monoRange.Sample(rng)
		p := make(Palette, k)
		for i := range p {
			p[i] = Gray(base)
		}
		return p
	case StyleNoiseTouch:
		return sampleColors(rng, unitBounds, k)
	case StyleMinimal:
		return Palette{minimalDark, minimalLight}
	}

	bounds, ok := paletteBounds[name]
	if !ok {
		bounds = unitBounds
	}
	return sampleColors(rng, bounds, k)
}

func sampleColors(rng RandomSource, b channelBounds, k int) Palette {
	p := make(Palette, k)
	for i := range p {
		p[i] = Color{
			R: b.r.Sample(rng),
			G: b.g.Sample(rng),
			B: b.b.Sample(rng),
		}
	}
	return p
}
