package helpers

import (
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/vyra-go/internal/domain"
)

// RenderResponse prints the assistant reply and, when present, the action a browser would take.
func RenderResponse(out io.Writer, resp domain.Response) {
	label := "Vyra"
	if resp.ModelAssisted {
		label = "Vyra (AI)"
	}
	fmt.Fprintf(out, "%s: %s\n", label, resp.Text)

	if !resp.HasAction() {
		return
	}
	switch resp.Action.Type {
	case domain.ActionSearch:
		fmt.Fprintf(out, "  -> search %s for %q: %s\n", resp.Action.Platform, resp.Action.Query, resp.Action.Target())
	default:
		fmt.Fprintf(out, "  -> open %s\n", resp.Action.Target())
	}
}

// RenderHistory prints exchanges oldest first.
func RenderHistory(out io.Writer, exchanges []domain.Exchange) {
	if len(exchanges) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return
	}
	for _, ex := range exchanges {
		fmt.Fprintf(out, "[%s]\n  you:  %s\n  vyra: %s\n",
			ex.Timestamp.Format(domain.TimestampFormat),
			ex.UserText,
			ex.AssistantText)
	}
}

// RenderReport prints doctor checks one per line.
func RenderReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n",
			strings.ToUpper(string(check.Status)),
			check.Name,
			check.Details)
	}
}
