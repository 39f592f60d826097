package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/doeshing/vyra-go/internal/domain"
	"github.com/doeshing/vyra-go/internal/infrastructure/cli/helpers"
)

// REPL meta commands.
const (
	chatExit    = "exit"
	chatQuit    = "quit"
	chatHistory = ":history"
	chatClear   = ":clear"
)

// NewChatCommand creates the interactive chat command
func NewChatCommand(get ContainerFunc) *cobra.Command {
	var (
		session string
		useAI   bool
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to Vyra interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := get(cmd.Context())
			if err != nil {
				return err
			}
			if session == "" {
				session = "session_" + uuid.NewString()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Vyra chat, session %s. Type %q to leave, %s or %s to manage history.\n",
				session, chatExit, chatHistory, chatClear)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "you> ")
				if !scanner.Scan() {
					fmt.Fprintln(out)
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				switch strings.ToLower(line) {
				case "":
					continue
				case chatExit, chatQuit:
					return nil
				case chatHistory:
					exchanges, err := container.Assistant.GetHistory(session)
					if err != nil {
						return fmt.Errorf("failed to load history: %w", err)
					}
					helpers.RenderHistory(out, exchanges)
					continue
				case chatClear:
					if err := container.Assistant.ClearHistory(session); err != nil {
						return fmt.Errorf("failed to clear history: %w", err)
					}
					fmt.Fprintln(out, helpers.MsgHistoryCleared)
					continue
				}

				resp := process(cmd.Context(), cmd.ErrOrStderr(), container, domain.ProcessRequest{
					Command:   line,
					SessionID: session,
					UseAI:     useAI,
				})
				helpers.RenderResponse(out, resp)
			}
		},
	}

	cmd.Flags().StringVarP(&session, "session", "s", "", "Session id (generated when empty)")
	cmd.Flags().BoolVar(&useAI, "ai", true, "Fall back to the model when no rule matches")
	return cmd
}
