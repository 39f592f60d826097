package cli

import (
	"context"
	"sync"

	"github.com/spf13/cobra"

	"github.com/doeshing/vyra-go/internal/app"
	"github.com/doeshing/vyra-go/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. The container is built on first
// use so that commands like version and history never touch the config file.
func NewRootCmd(opts Options) *cobra.Command {
	var (
		configPath string
		verbose    = opts.Verbose

		once      sync.Once
		container *app.Container
		buildErr  error
	)

	get := func(ctx context.Context) (*app.Container, error) {
		once.Do(func() {
			container, buildErr = app.BuildContainer(ctx, app.Options{
				Verbose:    verbose,
				ConfigPath: configPath,
			})
		})
		return container, buildErr
	}

	root := &cobra.Command{
		Use:   "vyra",
		Short: "Vyra - voice assistant command dispatcher",
		Long:  "Vyra answers common commands with local rules and falls back to an OpenRouter-hosted model.",
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if container == nil {
				return nil
			}
			return container.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.vyra/config.yaml or $VYRA_CONFIG)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", opts.Verbose, "Enable debug logging")

	root.AddCommand(
		commands.NewServeCommand(get),
		commands.NewAskCommand(get),
		commands.NewChatCommand(get),
		commands.NewHistoryCommand(),
		commands.NewDoctorCommand(get),
		commands.NewConfigCommand(get),
		commands.NewVersionCommand(),
	)
	return root
}
