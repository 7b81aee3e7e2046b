package poster

// StyleProfile holds the effective generation ranges after a style has been
// applied to the raw slider values of a PosterSpec.
type StyleProfile struct {
	Layers  int
	Wobble  Range
	Radius  Range
	Opacity Range
}

// ResolveProfile applies the style presets:
//
//	style        layers         wobble       radius        opacity
//	Vivid        n              as given     as given      [0.25,0.6]
//	Monochrome   max(3, n-2)    [0.05,0.15]  [0.1,0.3]     [0.3,0.5]
//	Noise Touch  max(10, n+5)   [0.2,0.5]    [0.05,0.45]   [0.2,0.7]
//	Minimal      min(5, n)      [0.05,0.1]   [0.1,0.3]     [0.3,0.4]
//
// Unknown styles resolve like Vivid.
func ResolveProfile(spec PosterSpec) StyleProfile {
	n := spec.Layers
	switch spec.Style {
	case StyleMonochrome:
		return StyleProfile{
			Layers:  max(3, n-2),
			Wobble:  Range{0.05, 0.15},
			Radius:  Range{0.1, 0.3},
			Opacity: Range{0.3, 0.5},
		}
	case StyleNoiseTouch:
		return StyleProfile{
			Layers:  max(10, n+5),
			Wobble:  Range{0.2, 0.5},
			Radius:  Range{0.05, 0.45},
			Opacity: Range{0.2, 0.7},
		}
	case StyleMinimal:
		return StyleProfile{
			Layers:  min(5, n),
			Wobble:  Range{0.05, 0.1},
			Radius:  Range{0.1, 0.3},
			Opacity: Range{0.3, 0.4},
		}
	default:
		return StyleProfile{
			Layers:  n,
			Wobble:  spec.Wobble,
			Radius:  spec.Radius,
			Opacity: Range{0.25, 0.6},
		}
	}
}
