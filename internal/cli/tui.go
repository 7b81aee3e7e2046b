package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blobposter/pkg/pipeline"
	"github.com/matzehuels/blobposter/pkg/poster"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	labelStyle        = lipgloss.NewStyle().Width(12)
)

const sliderWidth = 20

// tuiCommand creates the interactive tui command.
func (c *CLI) tuiCommand() *cobra.Command {
	var output, config string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Adjust poster controls interactively",
		Long: `Adjust the poster controls in the terminal and re-render the output file.

Keys:
  ↑/↓ or k/j   select a control
  ←/→ or h/l   adjust it
  g or enter   regenerate the output file
  r            regenerate with a random seed
  q            quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.DefaultOptions()
			if config != "" {
				var err error
				if opts, err = pipeline.LoadOptionsFile(config); err != nil {
					return err
				}
			}
			if ext := strings.TrimPrefix(filepath.Ext(output), "."); pipeline.ValidFormats[ext] {
				opts.Formats = []string{ext}
			}

			runner := pipeline.NewRunner(log.New(io.Discard))
			m := newTUIModel(cmd.Context(), runner, opts, output)
			final, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(tuiModel); ok && fm.lastPath != "" {
				printSuccess("Last poster: seed %d", fm.lastSeed)
				printFile(fm.lastPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", defaultOutput, "output file (.svg or .png)")
	cmd.Flags().StringVarP(&config, "config", "c", "", "TOML file with initial poster options")

	return cmd
}

// renderedMsg reports the outcome of one regeneration.
type renderedMsg struct {
	seed     int64
	paths    []string
	layers   int
	duration time.Duration
	err      error
}

// tuiModel is the bubbletea model for the poster control panel.
type tuiModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	output string

	opts   pipeline.Options
	cursor int
	busy   bool

	lastSeed   int64
	lastPath   string
	lastLayers int
	lastTime   time.Duration
	err        error
}

// newTUIModel clamps opts to the control bounds and resolves a random seed
// so the seed control always shows the seed actually used.
func newTUIModel(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, output string) tuiModel {
	opts.Clamp()
	opts.Seed = poster.ResolveSeed(opts.Seed)
	if len(opts.Formats) == 0 {
		opts.Formats = []string{pipeline.FormatSVG}
	}
	return tuiModel{ctx: ctx, runner: runner, opts: opts, output: output}
}

func (m tuiModel) Init() tea.Cmd {
	return m.regenerate()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(controls)-1 {
				m.cursor++
			}
		case "left", "h":
			controls[m.cursor].adjust(&m.opts, -1)
		case "right", "l":
			controls[m.cursor].adjust(&m.opts, 1)
		case "g", "enter":
			return m.startRender()
		case "r":
			m.opts.Seed = poster.ResolveSeed(poster.RandomSeed)
			return m.startRender()
		}
	case renderedMsg:
		m.busy = false
		m.err = msg.err
		if msg.err == nil {
			m.lastSeed = msg.seed
			m.lastPath = strings.Join(msg.paths, ", ")
			m.lastLayers = msg.layers
			m.lastTime = msg.duration
		}
	}
	return m, nil
}

func (m tuiModel) startRender() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	return m, m.regenerate()
}

// regenerate renders the current options and writes the output file(s).
func (m tuiModel) regenerate() tea.Cmd {
	opts := m.opts
	ctx, runner, output := m.ctx, m.runner, m.output
	return func() tea.Msg {
		start := time.Now()
		res, err := runner.Execute(ctx, opts)
		if err != nil {
			return renderedMsg{err: err}
		}
		msg := renderedMsg{seed: res.Poster.Seed, layers: len(res.Poster.Layers)}
		for _, format := range opts.Formats {
			path := outputPath(output, format, res.Poster.Seed, len(opts.Formats) > 1, false)
			if path == "" {
				return renderedMsg{err: fmt.Errorf("the tui cannot write to stdout")}
			}
			if err := writeArtifact(path, res.Artifacts[format]); err != nil {
				return renderedMsg{err: err}
			}
			msg.paths = append(msg.paths, path)
		}
		msg.duration = time.Since(start)
		return msg
	}
}

func (m tuiModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Generative Poster"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ select  ←/→ adjust  g regenerate  r random seed  q quit"))
	b.WriteString("\n\n")

	for i, ctl := range controls {
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		line := cursor + labelStyle.Render(ctl.label) + " " + ctl.value(&m.opts)
		b.WriteString(style.Render(line))
		if ctl.position != nil {
			b.WriteString("  " + slider(ctl.position(&m.opts)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.busy:
		b.WriteString(listDimStyle.Render("rendering..."))
	case m.err != nil:
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error())
	case m.lastPath != "":
		b.WriteString(styleIconSuccess.Render(iconSuccess) + " " + StyleValue.Render(m.lastPath))
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  seed %d · %d layers · %s",
			m.lastSeed, m.lastLayers, m.lastTime.Round(time.Millisecond))))
	}
	b.WriteString("\n")

	return b.String()
}

// slider draws a fixed-width track with a knob at fraction f.
func slider(f float64) string {
	pos := int(f*float64(sliderWidth-1) + 0.5)
	return listDimStyle.Render(strings.Repeat("━", pos)) +
		StyleHighlight.Render("●") +
		listDimStyle.Render(strings.Repeat("─", sliderWidth-1-pos))
}
