package commands

import (
	"github.com/spf13/cobra"
)

// demo: replay the original fixed script, all five sections.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the full demonstration script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.RunDemo()
			return nil
		},
	}
}
