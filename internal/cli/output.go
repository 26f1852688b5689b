package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/castlewars/internal/render"
)

// newRenderer creates a renderer for the configured output format, writing to the command's stdout
func newRenderer(cmd *cobra.Command) (render.Renderer, error) {
	return render.New(cfg.Output, cmd.OutOrStdout())
}

// isJSON reports whether the configured output format is JSON
func isJSON() bool {
	return cfg.Output == render.FormatJSON
}
