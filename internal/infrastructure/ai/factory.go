// Package ai builds the language-model capability used for unmatched commands.
//
// Two client libraries back the ports.Provider interface: go-openai for any
// OpenAI-compatible endpoint (OpenRouter by default) and generative-ai-go for
// Gemini. The factory picks one from the model definition.
package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/doeshing/vyra-go/internal/domain"
	"github.com/doeshing/vyra-go/internal/ports"
)

type Factory struct {
	httpClient *http.Client
}

func NewFactory() *Factory {
	return &Factory{
		httpClient: &http.Client{Timeout: domain.DefaultHTTPClientTimeout},
	}
}

// NewFactoryWithClient uses the given HTTP client for OpenAI-compatible providers.
func NewFactoryWithClient(client *http.Client) *Factory {
	return &Factory{httpClient: client}
}

func (f *Factory) ForModel(model domain.ModelDefinition) (ports.Provider, error) {
	if !model.HasCredential() {
		return nil, domain.ErrProviderUnavailable
	}

	providerKind := model.Provider
	if providerKind == "" {
		providerKind = inferProviderKind(model.Endpoint, model.Name)
	}

	switch providerKind {
	case domain.ProviderKindOpenAI:
		return newOpenAIProvider(model, f.httpClient), nil
	case domain.ProviderKindGemini:
		return newGeminiProvider(context.Background(), model)
	default:
		return nil, fmt.Errorf("unsupported provider kind: %s", providerKind)
	}
}

func inferProviderKind(endpoint string, name string) domain.ProviderKind {
	nameLower := strings.ToLower(name)

	switch {
	case strings.Contains(endpoint, "generativelanguage.googleapis.com"):
		return domain.ProviderKindGemini
	case nameLower == "gemini" && endpoint == "":
		return domain.ProviderKindGemini
	default:
		// OpenRouter, OpenAI and most self-hosted gateways speak the OpenAI protocol.
		return domain.ProviderKindOpenAI
	}
}

var _ ports.ProviderFactory = (*Factory)(nil)
