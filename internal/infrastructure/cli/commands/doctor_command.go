package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/vyra-go/internal/infrastructure/cli/helpers"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(get ContainerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration, credential and history backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := get(cmd.Context())
			if err != nil {
				return err
			}
			if container.DoctorService == nil {
				return errors.New(helpers.ErrDoctorServiceUnavailable)
			}

			report, err := container.DoctorService.Run(cmd.Context())
			// Display report even if there were errors
			helpers.RenderReport(cmd.OutOrStdout(), report)
			if err != nil {
				return fmt.Errorf("diagnostics completed with errors: %w", err)
			}
			return nil
		},
	}
}
