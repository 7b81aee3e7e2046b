package poster

import "testing"

func TestResolveProfileLayers(t *testing.T) {
	tests := []struct {
		style Style
		n     int
		want  int
	}{
		{StyleVivid, 8, 8},
		{StyleMonochrome, 8, 6},
		{StyleNoiseTouch, 8, 13},
		{StyleMinimal, 8, 5},

		{StyleMonochrome, 3, 3},
		{StyleMonochrome, 20, 18},
		{StyleNoiseTouch, 3, 10},
		{StyleNoiseTouch, 20, 25},
		{StyleMinimal, 3, 3},
		{StyleMinimal, 20, 5},
		{Style("unknown"), 8, 8},
	}

	for _, tt := range tests {
		spec := DefaultSpec()
		spec.Style = tt.style
		spec.Layers = tt.n
		if got := ResolveProfile(spec).Layers; got != tt.want {
			t.Errorf("ResolveProfile(%q, n=%d).Layers = %d, want %d", tt.style, tt.n, got, tt.want)
		}
	}
}

func TestResolveProfileRanges(t *testing.T) {
	spec := DefaultSpec()
	spec.Wobble = Range{0.01, 0.02}
	spec.Radius = Range{0.3, 0.31}

	tests := []struct {
		style   Style
		wobble  Range
		radius  Range
		opacity Range
	}{
		{StyleVivid, Range{0.01, 0.02}, Range{0.3, 0.31}, Range{0.25, 0.6}},
		{StyleMonochrome, Range{0.05, 0.15}, Range{0.1, 0.3}, Range{0.3, 0.5}},
		{StyleNoiseTouch, Range{0.2, 0.5}, Range{0.05, 0.45}, Range{0.2, 0.7}},
		{StyleMinimal, Range{0.05, 0.1}, Range{0.1, 0.3}, Range{0.3, 0.4}},
	}

	for _, tt := range tests {
		spec.Style = tt.style
		p := ResolveProfile(spec)
		if p.Wobble != tt.wobble {
			t.Errorf("%s wobble = %v, want %v", tt.style, p.Wobble, tt.wobble)
		}
		if p.Radius != tt.radius {
			t.Errorf("%s radius = %v, want %v", tt.style, p.Radius, tt.radius)
		}
		if p.Opacity != tt.opacity {
			t.Errorf("%s opacity = %v, want %v", tt.style, p.Opacity, tt.opacity)
		}
	}
}
