package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blobposter/pkg/poster"
)

// stylesCommand creates the styles command.
func (c *CLI) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List poster styles and palette families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(stdout, StyleTitle.Render("Styles"))
			fmt.Fprintln(stdout, stylesTable())
			fmt.Fprintln(stdout)
			fmt.Fprintln(stdout, StyleTitle.Render("Palettes")+" "+StyleDim.Render("(Vivid style only)"))
			fmt.Fprintln(stdout, palettesTable())
			printNextStep("Try one", "blobposter generate --style Monochrome --seed 7")
			return nil
		},
	}
}

// stylesTable renders every style with the profile it resolves to for the
// default options.
func stylesTable() string {
	rows := make([][]string, 0, len(poster.Styles))
	for _, st := range poster.Styles {
		spec := poster.DefaultSpec()
		spec.Style = st
		p := poster.ResolveProfile(spec)
		rows = append(rows, []string{
			string(st),
			layersLabel(st, p.Layers),
			formatRange(p.Wobble),
			formatRange(p.Radius),
			formatRange(p.Opacity),
			colouringLabel(st),
		})
	}
	return newTable("Style", "Layers", "Wobble", "Radius", "Opacity", "Colours").Rows(rows...).Render()
}

// palettesTable renders the palette families.
func palettesTable() string {
	rows := make([][]string, 0, len(poster.Palettes))
	for _, name := range poster.Palettes {
		rows = append(rows, []string{string(name), swatch(name)})
	}
	return newTable("Palette", "Sample").Rows(rows...).Render()
}

func newTable(headers ...string) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 { // header
				return headerStyle.Padding(0, 1)
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// swatch draws a fixed-seed sample of the palette as coloured blocks.
func swatch(name poster.PaletteName) string {
	palette := poster.SelectPalette(poster.NewSource(0), name, poster.StyleVivid, poster.DefaultPaletteSize)
	var b strings.Builder
	for _, c := range palette {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("██"))
	}
	return b.String()
}

// layersLabel describes how a style derives its layer count from the
// requested count n; the example is the count for the default options.
func layersLabel(st poster.Style, example int) string {
	rule := map[poster.Style]string{
		poster.StyleMonochrome: "max(3, n-2)",
		poster.StyleNoiseTouch: "max(10, n+5)",
		poster.StyleMinimal:    "min(5, n)",
	}[st]
	if rule == "" {
		rule = "n"
	}
	return fmt.Sprintf("%s = %d", rule, example)
}

func colouringLabel(st poster.Style) string {
	switch st {
	case poster.StyleMonochrome:
		return "one grey"
	case poster.StyleNoiseTouch:
		return "unrestricted"
	case poster.StyleMinimal:
		return "two fixed greys"
	default:
		return "palette family"
	}
}

func formatRange(r poster.Range) string {
	if r.Min == r.Max {
		return fmt.Sprintf("%.2f", r.Min)
	}
	return fmt.Sprintf("%.2f..%.2f", r.Min, r.Max)
}
