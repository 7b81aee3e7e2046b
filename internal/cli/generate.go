package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blobposter/pkg/pipeline"
	"github.com/matzehuels/blobposter/pkg/poster"
)

// generateOpts holds the flags of the generate command that are not poster
// options.
type generateOpts struct {
	config      string // TOML options file
	output      string // output file, base path for several outputs, or "-" for stdout
	formats     string // comma-separated output formats
	random      bool   // ignore --seed and draw a random one
	count       int    // number of posters with consecutive seeds
	concurrency int    // posters rendered at once when count > 1
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var g generateOpts
	flags := pipeline.DefaultOptions()

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"render"},
		Short:   "Generate poster files",
		Long: `Generate one or more posters and write them as SVG and/or PNG.

Explicit flags override values from --config. With --count N, posters are
generated for N consecutive seeds starting at --seed.`,
		Example: `  blobposter generate --seed 7 -o poster.svg
  blobposter generate --style Monochrome --format svg,png -o out/mono
  blobposter generate --config poster.toml --count 10 -o batch/poster`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(g, flags, cmd.Flags().Changed)
			if err != nil {
				return err
			}
			if g.random && cmd.Flags().Changed("seed") {
				printWarning("--random overrides --seed %d", flags.Seed)
			}
			return c.runGenerate(cmd.Context(), opts, g)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&g.config, "config", "c", "", "TOML file with poster options")
	f.StringVarP(&g.output, "output", "o", defaultOutput, `output file, base path for several outputs, or "-" for stdout`)
	f.StringVarP(&g.formats, "format", "f", "", "output format(s): svg (default), png (comma-separated)")
	f.BoolVar(&g.random, "random", false, "use a random seed")
	f.IntVarP(&g.count, "count", "n", 1, "number of posters, with consecutive seeds")
	f.IntVar(&g.concurrency, "concurrency", runtime.NumCPU(), "posters rendered in parallel")

	f.IntVarP(&flags.Layers, "layers", "l", flags.Layers, "number of blobs")
	f.Int64VarP(&flags.Seed, "seed", "s", flags.Seed, "random seed (negative for a random one)")
	f.StringVarP(&flags.Palette, "palette", "p", flags.Palette, "palette family (see 'blobposter styles')")
	f.StringVar(&flags.Style, "style", flags.Style, "style: Vivid, Monochrome, Noise Touch, Minimal")
	f.Float64Var(&flags.WobbleMin, "wobble-min", flags.WobbleMin, "minimum wobble")
	f.Float64Var(&flags.WobbleMax, "wobble-max", flags.WobbleMax, "maximum wobble")
	f.Float64Var(&flags.RadiusMin, "radius-min", flags.RadiusMin, "minimum radius")
	f.Float64Var(&flags.RadiusMax, "radius-max", flags.RadiusMax, "maximum radius")
	f.IntVar(&flags.Points, "points", flags.Points, "vertices per blob outline")
	f.StringVar(&flags.Perturbation, "mode", flags.Perturbation, "perturbation mode: standard, soft")
	f.IntVar(&flags.PaletteSize, "palette-size", flags.PaletteSize, "colours per palette")
	f.Float64Var(&flags.Width, "width", flags.Width, "canvas width in pixels")
	f.StringVar(&flags.Title, "title", flags.Title, "poster title")
	f.StringVar(&flags.Subtitle, "subtitle", flags.Subtitle, "poster subtitle")
	f.BoolVar(&flags.HideText, "no-text", false, "omit title and subtitle")
	f.StringVar(&flags.Background, "background", flags.Background, "background colour (#rrggbb)")

	return cmd
}

// optionFlags maps poster option flags to the field they set.
var optionFlags = map[string]func(dst *pipeline.Options, src pipeline.Options){
	"layers":       func(d *pipeline.Options, s pipeline.Options) { d.Layers = s.Layers },
	"seed":         func(d *pipeline.Options, s pipeline.Options) { d.Seed = s.Seed },
	"palette":      func(d *pipeline.Options, s pipeline.Options) { d.Palette = s.Palette },
	"style":        func(d *pipeline.Options, s pipeline.Options) { d.Style = s.Style },
	"wobble-min":   func(d *pipeline.Options, s pipeline.Options) { d.WobbleMin = s.WobbleMin },
	"wobble-max":   func(d *pipeline.Options, s pipeline.Options) { d.WobbleMax = s.WobbleMax },
	"radius-min":   func(d *pipeline.Options, s pipeline.Options) { d.RadiusMin = s.RadiusMin },
	"radius-max":   func(d *pipeline.Options, s pipeline.Options) { d.RadiusMax = s.RadiusMax },
	"points":       func(d *pipeline.Options, s pipeline.Options) { d.Points = s.Points },
	"mode":         func(d *pipeline.Options, s pipeline.Options) { d.Perturbation = s.Perturbation },
	"palette-size": func(d *pipeline.Options, s pipeline.Options) { d.PaletteSize = s.PaletteSize },
	"width":        func(d *pipeline.Options, s pipeline.Options) { d.Width = s.Width },
	"title":        func(d *pipeline.Options, s pipeline.Options) { d.Title = s.Title },
	"subtitle":     func(d *pipeline.Options, s pipeline.Options) { d.Subtitle = s.Subtitle },
	"no-text":      func(d *pipeline.Options, s pipeline.Options) { d.HideText = s.HideText },
	"background":   func(d *pipeline.Options, s pipeline.Options) { d.Background = s.Background },
}

// resolveOptions merges the config file (or the defaults) with the flags the
// user set explicitly.
func resolveOptions(g generateOpts, flags pipeline.Options, changed func(string) bool) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	if g.config != "" {
		var err error
		if opts, err = pipeline.LoadOptionsFile(g.config); err != nil {
			return opts, err
		}
	}

	for name, apply := range optionFlags {
		if changed(name) {
			apply(&opts, flags)
		}
	}

	switch {
	case g.formats != "":
		opts.Formats = parseFormats(g.formats)
	case g.config == "":
		if ext := strings.TrimPrefix(filepath.Ext(g.output), "."); pipeline.ValidFormats[ext] {
			opts.Formats = []string{ext}
		}
	}
	if g.random {
		opts.Seed = poster.RandomSeed
	}

	if g.count > 1 && g.output == "-" {
		return opts, fmt.Errorf("cannot write %d posters to stdout", g.count)
	}
	if len(opts.Formats) > 1 && g.output == "-" {
		return opts, fmt.Errorf("cannot write %d formats to stdout", len(opts.Formats))
	}
	return opts, pipeline.ValidateFormats(opts.Formats)
}

// parseFormats parses a comma-separated format string into a slice.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	formats := strings.Split(s, ",")
	for i := range formats {
		formats[i] = strings.ToLower(strings.TrimSpace(formats[i]))
	}
	return formats
}

// runGenerate renders the posters and writes every artifact.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, g generateOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	runner := c.newRunner()

	var results []*pipeline.Result
	if g.count <= 1 {
		res, err := runner.Execute(ctx, opts)
		if err != nil {
			return err
		}
		results = []*pipeline.Result{res}
	} else {
		spinner := newSpinner(ctx, fmt.Sprintf("Rendering %d posters...", g.count))
		spinner.Start()
		var err error
		results, err = runner.ExecuteBatch(ctx, opts, g.count, g.concurrency)
		if err != nil {
			if spinner.Cancelled() {
				spinner.Stop()
				return err
			}
			spinner.StopWithError("Rendering failed")
			return err
		}
		spinner.StopWithSuccess(fmt.Sprintf("Generated %d posters", len(results)))
	}

	multiFormat := len(opts.Formats) > 1
	var written []string
	for _, res := range results {
		for _, format := range opts.Formats {
			path := outputPath(g.output, format, res.Poster.Seed, multiFormat, g.count > 1)
			if err := writeArtifact(path, res.Artifacts[format]); err != nil {
				return err
			}
			if path != "" {
				written = append(written, path)
			}
		}
	}

	if g.output == "-" {
		return nil
	}
	if len(results) == 1 {
		printSuccess("Generated poster")
		printStats(results[0])
	}
	for _, path := range written {
		printFile(path)
	}
	prog.done(fmt.Sprintf("Rendered %d file(s)", len(written)))
	return nil
}

// outputPath derives the path for one artifact. The output's own extension
// is kept only when it is the single format being written for one poster.
// Batches append the seed; several formats swap the extension.
func outputPath(output, format string, seed int64, multiFormat, batch bool) string {
	if output == "-" {
		return ""
	}
	if output == "" {
		output = defaultOutput
	}
	ext := filepath.Ext(output)
	base := output
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		base = strings.TrimSuffix(output, ext)
	}
	if !multiFormat && !batch && strings.EqualFold(ext, "."+format) {
		return output
	}
	if batch {
		base = fmt.Sprintf("%s-%d", base, seed)
	}
	return base + "." + format
}

// writeArtifact writes data to path, creating parent directories. An empty
// path writes to stdout.
func writeArtifact(path string, data []byte) error {
	if path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
	}
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}
