package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/blobposter/pkg/errors"
	"github.com/matzehuels/blobposter/pkg/pipeline"
	"github.com/matzehuels/blobposter/pkg/poster"
)

// captureStdout redirects status output into a buffer for the test.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = orig })
	return &buf
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(&logs)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return logs.String(), err
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	for _, name := range []string{"generate", "render", "serve", "tui", "styles", "completion"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.NotEqual(t, root, cmd, "%s should resolve to a subcommand", name)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "blobposter version:")
}

func TestGenerateWritesFile(t *testing.T) {
	status := captureStdout(t)
	path := filepath.Join(t.TempDir(), "nested", "poster.svg")

	_, err := execute(t, "generate", "--seed", "3", "--layers", "5", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, bytes.Count(data, []byte("<polygon")))
	assert.Contains(t, status.String(), "seed 3")
	assert.Contains(t, status.String(), path)
}

func TestGenerateMatchesPipeline(t *testing.T) {
	captureStdout(t)
	path := filepath.Join(t.TempDir(), "poster.svg")

	_, err := execute(t, "render", "--seed", "11", "--style", "noise-touch", "-o", path)
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)

	opts := pipeline.DefaultOptions()
	opts.Seed = 11
	opts.Style = "noise-touch"
	res, err := pipeline.NewRunner(New(&bytes.Buffer{}, LogInfo).Logger).Execute(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, res.Artifacts[pipeline.FormatSVG], got)
}

func TestGeneratePNGFromExtension(t *testing.T) {
	captureStdout(t)
	path := filepath.Join(t.TempDir(), "poster.png")

	_, err := execute(t, "generate", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestGenerateBatch(t *testing.T) {
	status := captureStdout(t)
	dir := t.TempDir()

	_, err := execute(t, "generate", "--seed", "20", "--count", "3", "--format", "svg,png",
		"-o", filepath.Join(dir, "batch", "poster"))
	require.NoError(t, err)

	for _, seed := range []string{"20", "21", "22"} {
		for _, ext := range []string{"svg", "png"} {
			assert.FileExists(t, filepath.Join(dir, "batch", "poster-"+seed+"."+ext))
		}
	}
	assert.Contains(t, status.String(), "Generated 3 posters")
}

func TestGenerateInvalidFormat(t *testing.T) {
	captureStdout(t)
	_, err := execute(t, "generate", "--format", "gif", "-o", filepath.Join(t.TempDir(), "p"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestResolveOptions(t *testing.T) {
	config := filepath.Join(t.TempDir(), "poster.toml")
	require.NoError(t, os.WriteFile(config, []byte(`
layers = 12
style = "Monochrome"
seed = 4
`), 0o644))

	flags := pipeline.DefaultOptions()
	flags.Layers = 3
	flags.Seed = 99
	changed := func(name string) bool { return name == "layers" }

	opts, err := resolveOptions(generateOpts{config: config, output: "out.svg"}, flags, changed)
	require.NoError(t, err)
	assert.Equal(t, 3, opts.Layers, "explicit flag wins over the file")
	assert.Equal(t, int64(4), opts.Seed, "unchanged flag keeps the file value")
	assert.Equal(t, "Monochrome", opts.Style)
}

func TestResolveOptionsRandomSeed(t *testing.T) {
	opts, err := resolveOptions(generateOpts{output: "p.svg", random: true}, pipeline.DefaultOptions(), func(string) bool { return false })
	require.NoError(t, err)
	assert.Equal(t, int64(poster.RandomSeed), opts.Seed)
}

func TestResolveOptionsStdout(t *testing.T) {
	never := func(string) bool { return false }

	_, err := resolveOptions(generateOpts{output: "-", count: 2}, pipeline.DefaultOptions(), never)
	assert.Error(t, err)

	_, err = resolveOptions(generateOpts{output: "-", formats: "svg,png"}, pipeline.DefaultOptions(), never)
	assert.Error(t, err)

	opts, err := resolveOptions(generateOpts{output: "-", formats: "png"}, pipeline.DefaultOptions(), never)
	require.NoError(t, err)
	assert.Equal(t, []string{"png"}, opts.Formats)
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"svg,png", []string{"svg", "png"}},
		{" PNG , svg", []string{"png", "svg"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.input)
		assert.Equal(t, tt.want, got, "parseFormats(%q)", tt.input)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		format      string
		seed        int64
		multiFormat bool
		batch       bool
		want        string
	}{
		{"single keeps name", "art/p.svg", "svg", 1, false, false, "art/p.svg"},
		{"extension mismatch", "p.svg", "png", 1, false, false, "p.png"},
		{"no extension", "p", "svg", 1, false, false, "p.svg"},
		{"several formats", "p.svg", "png", 1, true, false, "p.png"},
		{"batch", "p.svg", "svg", 42, false, true, "p-42.svg"},
		{"unknown extension kept", "p.v2", "svg", 1, false, false, "p.v2.svg"},
		{"default", "", "svg", 1, false, false, "poster.svg"},
		{"stdout", "-", "svg", 1, false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.output, tt.format, tt.seed, tt.multiFormat, tt.batch)
			if got != tt.want {
				t.Errorf("outputPath(%q, %q) = %q, want %q", tt.output, tt.format, got, tt.want)
			}
		})
	}
}

func TestStylesCommand(t *testing.T) {
	status := captureStdout(t)

	_, err := execute(t, "styles")
	require.NoError(t, err)

	out := status.String()
	for _, st := range poster.Styles {
		assert.Contains(t, out, string(st))
	}
	for _, p := range poster.Palettes {
		assert.Contains(t, out, string(p))
	}
	assert.Contains(t, out, "max(10, n+5)")
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "bash completion")

	_, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}
