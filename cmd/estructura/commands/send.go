package commands

import (
	"github.com/spf13/cobra"
)

var (
	sendEncrypt  bool
	sendCompress bool
)

// send <message>: send a message through the selected decorator layers.
func sendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <message>",
		Short: "Send a message through optional encryption and compression layers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Messenger(sendEncrypt, sendCompress).Send(args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&sendEncrypt, "encrypt", false, "wrap the message in the encryption layer")
	cmd.Flags().BoolVar(&sendCompress, "compress", false, "wrap the message in the compression layer")
	return cmd
}
