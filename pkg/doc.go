// Package pkg provides the core libraries for blobposter.
//
// # Overview
//
// Blobposter generates abstract posters from stacked, semi-transparent,
// wobbly blobs. Every poster is a pure function of its options and seed: the
// same inputs always produce the same layers and the same output bytes.
//
// # Architecture
//
// The typical data flow:
//
//	Options (flags, TOML file, query string, TUI controls)
//	         ↓
//	    [pipeline] package (validate, seed, orchestrate)
//	         ↓
//	    [poster] package (style profile, palette, blob field)
//	         ↓
//	    [render] package (background, blobs back to front, title block)
//	         ↓
//	    [render/sink] package (SVG, PNG)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/blobposter/pkg/poster"
//	    "github.com/matzehuels/blobposter/pkg/render"
//	    "github.com/matzehuels/blobposter/pkg/render/sink"
//	)
//
//	spec := poster.DefaultSpec()
//	spec.Seed = 7
//	spec.Style = poster.StyleNoiseTouch
//
//	p, _ := poster.Generate(spec)
//	svg, _ := render.Draw(sink.NewSVG(), p)
//
// # Main Packages
//
// [poster] - Palette selection, style profiles and the blob field generator.
// All randomness flows through an explicit [poster.RandomSource].
//
// [render] - The drawing order of a poster against the [render.Renderer]
// interface.
//
// [render/sink] - SVG and PNG renderers.
//
// [pipeline] - Options, validation, TOML loading and the Runner used by the
// CLI, the TUI and the HTTP server.
//
// [fonts] - Embedded Go fonts for rasterized text.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Hooks for generation, rendering and HTTP events.
//
// [poster]: https://pkg.go.dev/github.com/matzehuels/blobposter/pkg/poster
// [render]: https://pkg.go.dev/github.com/matzehuels/blobposter/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/blobposter/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/blobposter/pkg/pipeline
// [fonts]: https://pkg.go.dev/github.com/matzehuels/blobposter/pkg/fonts
// [errors]: https://pkg.go.dev/github.com/matzehuels/blobposter/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/blobposter/pkg/observability
package pkg
