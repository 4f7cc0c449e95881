package commands

import (
	"github.com/spf13/cobra"
)

// render: draw the configured widget tree from depth 0.
func renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render the configured widget tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Form().Render(appCtx.Out, 0)
			return nil
		},
	}
}
