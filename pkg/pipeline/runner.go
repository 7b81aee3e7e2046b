package pipeline

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/blobposter/pkg/errors"
	"github.com/matzehuels/blobposter/pkg/observability"
	"github.com/matzehuels/blobposter/pkg/poster"
	"github.com/matzehuels/blobposter/pkg/render"
	"github.com/matzehuels/blobposter/pkg/render/sink"
)

// Runner executes the pipeline.
//
// The Runner holds no per-poster state: every call seeds its own random
// source, so multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs generate → render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	genStart := time.Now()
	p, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result := &Result{Poster: p}
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.LayerCount = len(p.Layers)
	for _, l := range p.Layers {
		result.Stats.VertexCount += len(l.Vertices)
	}

	renderStart := time.Now()
	artifacts, err := r.Render(ctx, p, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Debug("rendered poster",
		"seed", p.Seed,
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate produces the poster for opts without rendering it.
func (r *Runner) Generate(ctx context.Context, opts Options) (poster.Poster, error) {
	if err := ctx.Err(); err != nil {
		return poster.Poster{}, err
	}
	r.warnUnknownNames(opts)

	spec := opts.Spec()
	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, string(spec.Style), spec.Layers)

	start := time.Now()
	p, err := poster.Generate(spec)
	hooks.OnGenerateComplete(ctx, string(spec.Style), len(p.Layers), time.Since(start), err)
	if err != nil {
		return poster.Poster{}, err
	}

	r.Logger.Info("generated poster",
		"seed", p.Seed,
		"style", spec.Style,
		"palette", spec.Palette,
		"layers", len(p.Layers))
	return p, nil
}

// Render draws p into every requested format.
func (r *Runner) Render(ctx context.Context, p poster.Poster, opts Options) (map[string][]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	bg, err := poster.ColorFromHex(opts.Background)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "background %q", opts.Background)
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte, len(opts.Formats))
	size := 0
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			hooks.OnRenderComplete(ctx, opts.Formats, size, time.Since(start), err)
			return nil, err
		}
		renderer, err := newRenderer(format, opts.Width, bg)
		if err != nil {
			hooks.OnRenderComplete(ctx, opts.Formats, size, time.Since(start), err)
			return nil, err
		}
		data, err := render.Draw(renderer, p, opts.drawOptions()...)
		if err != nil {
			err = errors.Wrap(errors.ErrCodeInternal, err, "draw %s", format)
			hooks.OnRenderComplete(ctx, opts.Formats, size, time.Since(start), err)
			return nil, err
		}
		r.Logger.Debugf("Generated %s: %d bytes", format, len(data))
		artifacts[format] = data
		size += len(data)
	}

	hooks.OnRenderComplete(ctx, opts.Formats, size, time.Since(start), nil)
	return artifacts, nil
}

// ExecuteBatch renders count posters with consecutive seeds starting at
// opts.Seed. At most concurrency posters are generated at once; results keep
// seed order.
//
// Every seed in the batch must stay non-negative, so an explicit base above
// math.MaxInt64-(count-1) is rejected. A random base is drawn from the range
// that leaves room for the whole batch.
func (r *Runner) ExecuteBatch(ctx context.Context, opts Options, count, concurrency int) ([]*Result, error) {
	if count <= 0 {
		return nil, nil
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	base, err := batchBase(opts.Seed, count)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, count)
	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i := range count {
		o := opts
		o.Seed = base + int64(i)
		g.Go(func() error {
			res, err := r.Execute(gctx, o)
			if err != nil {
				return fmt.Errorf("seed %d: %w", o.Seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// batchBase resolves the first seed of a batch of count posters.
func batchBase(seed int64, count int) (int64, error) {
	last := math.MaxInt64 - int64(count-1)
	if seed < 0 {
		if last == math.MaxInt64 {
			return rand.Int64(), nil
		}
		return rand.Int64N(last + 1), nil
	}
	if seed > last {
		return 0, errors.New(errors.ErrCodeInvalidInput,
			"seed %d leaves no room for a batch of %d (max %d)", seed, count, last)
	}
	return seed, nil
}

func (r *Runner) warnUnknownNames(opts Options) {
	if _, ok := poster.ParsePalette(opts.Palette); !ok {
		r.Logger.Warn("unknown palette, using Random", "palette", opts.Palette)
	}
	if _, ok := poster.ParseStyle(opts.Style); !ok {
		r.Logger.Warn("unknown style, using Vivid", "style", opts.Style)
	}
}

func newRenderer(format string, width float64, bg poster.Color) (render.Renderer, error) {
	opts := []sink.Option{sink.WithWidth(width), sink.WithBackground(bg)}
	switch format {
	case FormatSVG:
		return sink.NewSVG(opts...), nil
	case FormatPNG:
		return sink.NewPNG(opts...), nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "no renderer for format %q", format)
}
