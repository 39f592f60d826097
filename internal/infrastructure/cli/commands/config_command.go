package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cfgvalidator "github.com/doeshing/vyra-go/internal/application/config"
	"github.com/doeshing/vyra-go/internal/infrastructure/cli/helpers"
)

// NewConfigCommand creates the config command with its subcommands
func NewConfigCommand(get ContainerFunc) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration (credential omitted)",
			RunE: func(cmd *cobra.Command, args []string) error {
				container, err := get(cmd.Context())
				if err != nil {
					return err
				}
				raw, err := yaml.Marshal(container.Config)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if container.ConfigLoader != nil {
					fmt.Fprintf(out, "# %s\n", container.ConfigLoader.Path())
				}
				_, err = out.Write(raw)
				return err
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			RunE: func(cmd *cobra.Command, args []string) error {
				container, err := get(cmd.Context())
				if err != nil {
					return err
				}
				if container.ConfigLoader == nil {
					return errors.New(helpers.ErrConfigLoaderUnavailable)
				}
				fmt.Fprintln(cmd.OutOrStdout(), container.ConfigLoader.Path())
				return nil
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Validate the configuration file",
			RunE: func(cmd *cobra.Command, args []string) error {
				container, err := get(cmd.Context())
				if err != nil {
					return err
				}
				if err := cfgvalidator.Validate(container.Config); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), helpers.MsgConfigurationValid)
				return nil
			},
		},
	)

	return configCmd
}
