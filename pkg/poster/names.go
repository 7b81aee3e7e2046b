package poster

import "strings"

// PaletteName selects a palette family. It only matters for [StyleVivid];
// the other styles bring their own colouring rule.
type PaletteName string

// Palette families.
const (
	PaletteRandom     PaletteName = "Random"
	PalettePastel     PaletteName = "Pastel"
	PaletteVibrant    PaletteName = "Vibrant"
	PaletteEarthy     PaletteName = "Earthy"
	PaletteCoolBlues  PaletteName = "Cool Blues"
	PaletteWarmSunset PaletteName = "Warm Sunset"
)

// Palettes lists every palette family in display order.
var Palettes = []PaletteName{
	PaletteRandom, PalettePastel, PaletteVibrant,
	PaletteEarthy, PaletteCoolBlues, PaletteWarmSunset,
}

// Style is a named preset that overrides numeric ranges and, for some
// styles, the palette rule.
type Style string

// Poster styles.
const (
	StyleVivid      Style = "Vivid"
	StyleMonochrome Style = "Monochrome"
	StyleNoiseTouch Style = "Noise Touch"
	StyleMinimal    Style = "Minimal"
)

// Styles lists every style in display order.
var Styles = []Style{StyleVivid, StyleMonochrome, StyleNoiseTouch, StyleMinimal}

// PerturbationMode selects the per-vertex radius formula.
type PerturbationMode string

// Perturbation modes. Standard computes r·(1 + w·u); Soft computes
// r·(0.5 + w·u), which yields blobs of roughly half the nominal radius.
const (
	PerturbStandard PerturbationMode = "standard"
	PerturbSoft     PerturbationMode = "soft"
)

// PerturbationModes lists every perturbation mode, default first.
var PerturbationModes = []PerturbationMode{PerturbStandard, PerturbSoft}

// ParsePalette matches s against the palette names, ignoring case and
// treating '-' and '_' as spaces. Unknown names return PaletteRandom, false.
func ParsePalette(s string) (PaletteName, bool) {
	key := normalizeName(s)
	for _, p := range Palettes {
		if normalizeName(string(p)) == key {
			return p, true
		}
	}
	return PaletteRandom, false
}

// ParseStyle matches s against the style names the same way ParsePalette
// does. Unknown names return StyleVivid, false.
func ParseStyle(s string) (Style, bool) {
	key := normalizeName(s)
	for _, st := range Styles {
		if normalizeName(string(st)) == key {
			return st, true
		}
	}
	return StyleVivid, false
}

// ParsePerturbationMode accepts "standard" or "soft" in any case. The empty
// string means standard.
func ParsePerturbationMode(s string) (PerturbationMode, bool) {
	switch normalizeName(s) {
	case "", string(PerturbStandard):
		return PerturbStandard, true
	case string(PerturbSoft):
		return PerturbSoft, true
	}
	return PerturbStandard, false
}

func normalizeName(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
