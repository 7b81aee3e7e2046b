package poster

import (
	"math"

	"github.com/matzehuels/blobposter/pkg/errors"
)

// Point is a vertex in normalized canvas coordinates.
type Point struct {
	X, Y float64
}

// Layer is one generated blob. Its position in the output slice is its
// z-order; there is no other identity.
type Layer struct {
	Center   Point   `json:"center"`
	Radius   float64 `json:"radius"`
	Wobble   float64 `json:"wobble"`
	Vertices []Point `json:"vertices"`
	Color    Color   `json:"color"`
	Opacity  float64 `json:"opacity"`
}

// GenerateField produces the layers of a poster, back to front.
//
// For every resolved layer it draws, in order: centre x and y from [0,1],
// the base radius, the wobble amplitude, one perturbation per vertex, a
// palette index and the opacity. Vertex j sits at angle 2πj/(P-1), so the
// first and last vertices coincide and close the outline.
//
// It fails only for non-finite input or an empty palette.
func GenerateField(rng RandomSource, spec PosterSpec, palette Palette) ([]Layer, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if len(palette) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "palette is empty")
	}

	profile := ResolveProfile(spec)
	if profile.Layers <= 0 {
		return []Layer{}, nil
	}

	base := 1.0
	if spec.Perturbation == PerturbSoft {
		base = 0.5
	}
	angles := evenAngles(spec.pointCount())

	layers := make([]Layer, 0, profile.Layers)
	for range profile.Layers {
		center := Point{X: rng.Float64(), Y: rng.Float64()}
		r := profile.Radius.Sample(rng)
		w := profile.Wobble.Sample(rng)
		vertices := blob(rng, center, r, w, base, angles)
		c := palette[rng.IntN(len(palette))]
		opacity := profile.Opacity.Sample(rng)

		layers = append(layers, Layer{
			Center:   center,
			Radius:   r,
			Wobble:   w,
			Vertices: vertices,
			Color:    c,
			Opacity:  opacity,
		})
	}
	return layers, nil
}

// blob perturbs a circle of radius r around center. Each vertex consumes one
// draw u from [-0.5,0.5) and sits at radius r·(base + w·u).
func blob(rng RandomSource, center Point, r, w, base float64, angles []float64) []Point {
	pts := make([]Point, len(angles))
	for j, theta := range angles {
		u := rng.Float64() - 0.5
		rr := r * (base + w*u)
		pts[j] = Point{
			X: center.X + rr*math.Cos(theta),
			Y: center.Y + rr*math.Sin(theta),
		}
	}
	return pts
}

// evenAngles returns n angles spaced evenly over [0, 2π], both ends included.
func evenAngles(n int) []float64 {
	angles := make([]float64, n)
	if n == 1 {
		return angles
	}
	step := 2 * math.Pi / float64(n-1)
	for i := range angles {
		angles[i] = float64(i) * step
	}
	angles[n-1] = 2 * math.Pi
	return angles
}
