// Package render draws generated posters through a [Renderer].
//
// # Overview
//
// Generation (package poster) only produces geometry and colours. Turning
// them into pixels or markup is the job of a Renderer, a small drawing
// surface with four operations:
//
//   - ClearCanvas: start a fresh canvas with a fixed aspect ratio
//   - FillPolygon: fill a closed polygon with a colour and opacity
//   - DrawText: draw a label at normalized coordinates
//   - Present: finish the canvas and return the encoded output
//
// All coordinates are normalized to [0,1]×[0,1] with the origin at the
// bottom-left, matching the generator.
//
// [Draw] composes a whole poster: background, every layer in generation
// order (back to front) and the title block.
//
//	p, _ := poster.Generate(spec)
//	svg, err := render.Draw(sink.NewSVG(), p)
//	png, err := render.Draw(sink.NewPNG(sink.WithWidth(1400)), p,
//	    render.WithTitle("Untitled #3"),
//	)
//
// Concrete renderers live in the [sink] subpackage.
//
// [sink]: github.com/matzehuels/blobposter/pkg/render/sink
package render
