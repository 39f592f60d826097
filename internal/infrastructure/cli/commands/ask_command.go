package commands

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/vyra-go/internal/app"
	"github.com/doeshing/vyra-go/internal/domain"
	"github.com/doeshing/vyra-go/internal/infrastructure/cli/helpers"
)

// NewAskCommand creates the ask command
func NewAskCommand(get ContainerFunc) *cobra.Command {
	var (
		session string
		useAI   bool
	)

	cmd := &cobra.Command{
		Use:   "ask [command]",
		Short: "Answer a single command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := get(cmd.Context())
			if err != nil {
				return err
			}
			resp := process(cmd.Context(), cmd.ErrOrStderr(), container, domain.ProcessRequest{
				Command:   strings.Join(args, " "),
				SessionID: session,
				UseAI:     useAI,
			})
			helpers.RenderResponse(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().StringVarP(&session, "session", "s", domain.DefaultSessionID, "Conversation session id")
	cmd.Flags().BoolVar(&useAI, "ai", true, "Fall back to the model when no rule matches")
	return cmd
}

// process runs one command, animating a spinner on interactive terminals while the model may be called.
func process(ctx context.Context, status io.Writer, container *app.Container, req domain.ProcessRequest) domain.Response {
	if req.UseAI && container.Provider != nil && helpers.IsTerminal(status) {
		spinner := helpers.NewSpinner(status)
		spinner.Start()
		defer spinner.Stop()
	}
	return container.Assistant.Process(ctx, req)
}
