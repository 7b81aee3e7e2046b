// Package poster generates layered blob posters.
//
// # Overview
//
// A poster is an ordered stack of blobs: closed polygons that approximate a
// circle whose radius is perturbed per vertex ("wobble"). Each blob carries a
// colour drawn from a palette and an opacity. Layers are produced back to
// front, so later layers partially occlude earlier ones once rendered.
//
// Generation has two stages:
//
//  1. [SelectPalette] samples a small palette for a named palette family, or
//     applies the colouring rule of the chosen [Style].
//  2. [GenerateField] resolves the style's [StyleProfile] and samples one
//     [Layer] per resolved layer count.
//
// # Reproducible Randomness
//
// All randomness flows through an explicit [RandomSource]. Nothing reads
// global random state, so the same seed and [PosterSpec] always produce the
// same palette and the same geometry:
//
//	rng := poster.NewSource(42)
//	palette := poster.SelectPalette(rng, poster.PalettePastel, poster.StyleVivid, 6)
//	layers, err := poster.GenerateField(rng, spec, palette)
//
// The draw order within one layer is fixed: centre x, centre y, radius,
// wobble, one perturbation per vertex, palette index, opacity. Changing that
// order changes every poster for a given seed.
//
// [Generate] runs both stages with a freshly seeded source.
//
// # Coordinates
//
// Vertices live in normalized canvas space, [0,1]×[0,1] with the origin at
// the bottom-left corner. Blobs near the border extend past it; renderers clip.
package poster
