package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blobposter/internal/server"
	"github.com/matzehuels/blobposter/pkg/pipeline"
)

const defaultAddr = "127.0.0.1:8080"

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, config string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve posters over HTTP",
		Long: `Serve posters over HTTP until interrupted.

Routes:
  GET /healthz       liveness probe
  GET /palettes      palettes, styles and control bounds as JSON
  GET /poster.svg    poster as SVG
  GET /poster.png    poster as PNG

Poster routes accept layers, seed (or "random"), palette, style, wobble_min,
wobble_max, radius_min, radius_max, mode and title as query parameters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base := pipeline.DefaultOptions()
			if config != "" {
				var err error
				if base, err = pipeline.LoadOptionsFile(config); err != nil {
					return err
				}
			}

			srv := server.New(c.Logger, server.WithBaseOptions(base))
			printInfo("Serving posters on %s", StyleHighlight.Render("http://"+addr))
			printKeyValue("style", base.Style)
			printKeyValue("palette", base.Palette)
			printKeyValue("layers", strconv.Itoa(base.Layers))
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVarP(&config, "config", "c", "", "TOML file with base poster options")

	return cmd
}
