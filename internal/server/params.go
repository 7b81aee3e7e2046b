package server

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/blobposter/pkg/errors"
	"github.com/matzehuels/blobposter/pkg/pipeline"
	"github.com/matzehuels/blobposter/pkg/poster"
)

// optionsFromQuery applies query parameters on top of base. Numeric controls
// are clamped to the slider bounds; unparseable numbers are INVALID_INPUT.
func optionsFromQuery(base pipeline.Options, q url.Values) (pipeline.Options, error) {
	opts := base
	opts.Formats = nil
	opts.Logger = nil

	if v := q.Get("layers"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "layers: %q is not an integer", v)
		}
		opts.Layers = n
	}

	if v := q.Get("seed"); v != "" {
		if strings.EqualFold(v, "random") {
			opts.Seed = poster.RandomSeed
		} else {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "seed: %q is not an integer", v)
			}
			opts.Seed = n
		}
	}

	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"wobble_min", &opts.WobbleMin},
		{"wobble_max", &opts.WobbleMax},
		{"radius_min", &opts.RadiusMin},
		{"radius_max", &opts.RadiusMax},
	} {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			return opts, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not a finite number", f.name, v)
		}
		*f.dst = x
	}

	if v := q.Get("palette"); v != "" {
		opts.Palette = v
	}
	if v := q.Get("style"); v != "" {
		opts.Style = v
	}
	if v := q.Get("mode"); v != "" {
		opts.Perturbation = v
	}
	if q.Has("title") {
		opts.Title = q.Get("title")
	}

	opts.Clamp()
	return opts, nil
}
