// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The dispatcher, responder and service depend only on
// these abstractions; the HTTP server, CLI, model clients and history backends
// live in the infrastructure layer.
package ports

import (
	"context"

	"github.com/doeshing/vyra-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.vyra/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// RuleMatcher tests a normalized command against hand-authored rules.
// A false second result is the normal "no rule matched" outcome, not an error.
type RuleMatcher interface {
	Match(command string) (domain.Response, bool)
}

// ProviderFactory builds the model capability from its definition.
type ProviderFactory interface {
	ForModel(domain.ModelDefinition) (Provider, error)
}

// Provider is the external chat-completion capability.
// Generate returns the raw reply text; failures are reported as errors.
type Provider interface {
	Name() string
	Model() domain.ModelDefinition
	Generate(context.Context, ProviderRequest) (string, error)
}

// ProviderRequest contains the ordered prompt and the generation parameters.
type ProviderRequest struct {
	Messages    []domain.ChatMessage
	Temperature float64
	MaxTokens   int
}

// HistoryRepository owns per-session conversation history.
// Implementations must be safe for concurrent use and must serialize appends
// for a single session. Reads of unknown sessions return an empty slice.
type HistoryRepository interface {
	Ensure(sessionID string) error
	Append(sessionID string, exchange domain.Exchange) error
	Recent(sessionID string, n int) ([]domain.Exchange, error)
	All(sessionID string) ([]domain.Exchange, error)
	Clear(sessionID string) error
	Sessions() ([]string, error)
}

// MetricsRecorder receives dispatch outcomes.
type MetricsRecorder interface {
	ObserveDispatch(path string)
	ObserveProviderCall(provider string, ok bool, seconds float64)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
