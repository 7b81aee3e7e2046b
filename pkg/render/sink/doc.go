// Package sink provides concrete renderers for posters.
//
// # Overview
//
// A "sink" implements [render.Renderer] and encodes the drawn canvas into a
// final output format:
//
//   - [SVG]: scalable vector markup, one <polygon> per layer
//   - [PNG]: anti-aliased raster image drawn with fogleman/gg
//
// Both map normalized coordinates onto a canvas of the configured pixel
// width; the height follows from the aspect ratio passed to ClearCanvas.
// Shapes that extend past the unit square are clipped by the canvas edge.
//
//	svg, err := render.Draw(sink.NewSVG(sink.WithWidth(700)), p)
//	png, err := render.Draw(sink.NewPNG(sink.WithBackground(poster.Gray(1))), p)
//
// Font sizes are given in points relative to a 7 inch wide canvas, so text
// scales with the output width.
//
// [render.Renderer]: github.com/matzehuels/blobposter/pkg/render.Renderer
package sink
