package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/vyra-go/internal/domain"
	"github.com/doeshing/vyra-go/internal/infrastructure/cli/helpers"
)

// DefaultServerURL is where a local `vyra serve` listens.
const DefaultServerURL = "http://localhost:5000"

const historyRequestTimeout = 10 * time.Second

// NewHistoryCommand creates the history command with all subcommands.
// History lives in the serving process, so these talk to a running server.
func NewHistoryCommand() *cobra.Command {
	var (
		server  string
		session string
	)

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect or clear a session's history on a running server",
	}
	historyCmd.PersistentFlags().StringVar(&server, "server", DefaultServerURL, "Base URL of the Vyra server")
	historyCmd.PersistentFlags().StringVarP(&session, "session", "s", domain.DefaultSessionID, "Conversation session id")

	historyCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the session's exchanges",
			RunE: func(cmd *cobra.Command, args []string) error {
				var payload struct {
					Success bool              `json:"success"`
					History []domain.Exchange `json:"history"`
					Error   string            `json:"error"`
				}
				if err := postJSON(cmd.Context(), server, "/api/history", session, &payload); err != nil {
					return err
				}
				if !payload.Success {
					return fmt.Errorf("server error: %s", payload.Error)
				}
				helpers.RenderHistory(cmd.OutOrStdout(), payload.History)
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Clear the session's history",
			RunE: func(cmd *cobra.Command, args []string) error {
				var payload struct {
					Success bool   `json:"success"`
					Message string `json:"message"`
					Error   string `json:"error"`
				}
				if err := postJSON(cmd.Context(), server, "/api/clear-history", session, &payload); err != nil {
					return err
				}
				if !payload.Success {
					return fmt.Errorf("server error: %s", payload.Error)
				}
				fmt.Fprintln(cmd.OutOrStdout(), payload.Message)
				return nil
			},
		},
	)

	return historyCmd
}

func postJSON(ctx context.Context, server, path, session string, target any) error {
	body, err := json.Marshal(map[string]string{"session_id": session})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, historyRequestTimeout)
	defer cancel()

	url := strings.TrimRight(server, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("contact server %s: %w", server, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode %s response (status %d): %w", path, resp.StatusCode, err)
	}
	return nil
}
