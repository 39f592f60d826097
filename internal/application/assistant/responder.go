// Package assistant holds the application core: the model responder, the
// command dispatcher and the service boundary used by every transport.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doeshing/vyra-go/internal/domain"
	"github.com/doeshing/vyra-go/internal/ports"
)

// Responder answers free-form commands through the configured model.
type Responder struct {
	Provider ports.Provider // nil means rule-only mode
	History  ports.HistoryRepository
	Config   domain.Config
	Logger   ports.Logger
	Metrics  ports.MetricsRecorder
	Now      func() time.Time
}

// Available reports whether a model is configured.
func (r *Responder) Available() bool {
	return r != nil && r.Provider != nil
}

// Respond calls the model with the session's recent history and records the exchange.
// History is only modified on success.
func (r *Responder) Respond(ctx context.Context, command, sessionID string) (domain.Response, error) {
	if !r.Available() {
		return domain.Response{}, domain.ErrProviderUnavailable
	}
	if r.History == nil {
		return domain.Response{}, errors.New("assistant.Responder: history repository not set")
	}

	recent, err := r.History.Recent(sessionID, domain.PromptHistoryWindow)
	if err != nil {
		return domain.Response{}, fmt.Errorf("load history: %w", err)
	}

	if r.Logger != nil {
		r.Logger.Debug("calling provider", map[string]interface{}{
			"provider":   r.Provider.Name(),
			"session_id": sessionID,
			"history":    len(recent),
		})
	}

	callCtx, cancel := context.WithTimeout(ctx, r.Config.GetModelTimeout())
	defer cancel()

	started := r.now()
	text, err := r.Provider.Generate(callCtx, ports.ProviderRequest{
		Messages:    BuildMessages(r.Config.GetSystemPrompt(), recent, command),
		Temperature: r.Config.GetTemperature(),
		MaxTokens:   r.Config.GetMaxTokens(),
	})
	text = strings.TrimSpace(text)
	if err == nil && text == "" {
		err = errors.New("empty reply")
	}
	r.observe(err == nil, r.now().Sub(started))
	if err != nil {
		return domain.Response{}, domain.NewProviderError(r.Provider.Name(), err)
	}

	exchange := domain.Exchange{UserText: command, AssistantText: text, Timestamp: r.now()}
	if err := r.History.Append(sessionID, exchange); err != nil {
		return domain.Response{}, fmt.Errorf("append history: %w", err)
	}

	return domain.Response{
		Text:          text,
		Confidence:    domain.ModelConfidence,
		ModelAssisted: true,
	}, nil
}

// BuildMessages orders the prompt: system, prior exchanges oldest first, then the command.
func BuildMessages(systemPrompt string, history []domain.Exchange, command string) []domain.ChatMessage {
	messages := make([]domain.ChatMessage, 0, 2+2*len(history))
	messages = append(messages, domain.ChatMessage{Role: domain.RoleSystem, Content: systemPrompt})
	for _, exchange := range history {
		messages = append(messages, exchange.Messages()...)
	}
	return append(messages, domain.ChatMessage{Role: domain.RoleUser, Content: command})
}

func (r *Responder) observe(ok bool, elapsed time.Duration) {
	if r.Metrics == nil {
		return
	}
	r.Metrics.ObserveProviderCall(r.Provider.Name(), ok, elapsed.Seconds())
}

func (r *Responder) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
