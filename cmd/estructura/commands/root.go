package commands

import (
	"github.com/spf13/cobra"

	"estructura/internal/app"
	"estructura/internal/logging"
)

var (
	configPath string
	verbose    bool
	appCtx     *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "estructura",
		Short: "Structural wrapper demos: adapter, facade, decorator, composite, proxy",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Default()
			if configPath != "" {
				var err error
				if cfg, err = app.Load(configPath); err != nil {
					return err
				}
			}

			log := logging.New("estructura", verbose)
			appCtx = app.New(cfg, cmd.OutOrStdout(), log)
			log.Debug().Str("config", configPath).Msg("app wired")
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "demo config file (TOML)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(demoCmd(), payCmd(), billCmd(), sendCmd(), renderCmd(), accessCmd())
	return root.Execute()
}
