package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"estructura/internal/domain"
)

var accessRole string

// access <read|write>: hit the guarded store under a role.
func accessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "access <read|write>",
		Short: "Read or write the store through the role-guarded proxy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proxy := appCtx.Store(domain.Role(accessRole))
			switch args[0] {
			case "read":
				proxy.Read()
			case "write":
				outcome := proxy.Write()
				appCtx.Log.Debug().
					Stringer("outcome", outcome).
					Str("role", accessRole).
					Msg("write attempt")
			default:
				return fmt.Errorf("unknown operation %q (want read or write)", args[0])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&accessRole, "role", "invitado", "role the proxy is constructed with")
	return cmd
}
