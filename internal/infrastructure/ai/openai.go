package ai

import (
	"context"
	"errors"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/doeshing/vyra-go/internal/domain"
	"github.com/doeshing/vyra-go/internal/ports"
)

// openAIProvider talks to any OpenAI-compatible chat endpoint (OpenRouter by default).
type openAIProvider struct {
	model  domain.ModelDefinition
	client *openai.Client
}

func newOpenAIProvider(model domain.ModelDefinition, httpClient *http.Client) ports.Provider {
	config := openai.DefaultConfig(model.APIKey)
	config.BaseURL = valueOrDefault(model.Endpoint, domain.DefaultModelEndpoint)
	config.HTTPClient = withHeaders(httpClient, model.Headers)

	return &openAIProvider{
		model:  model,
		client: openai.NewClientWithConfig(config),
	}
}

func (p *openAIProvider) Name() string {
	return string(domain.ProviderKindOpenAI)
}

func (p *openAIProvider) Model() domain.ModelDefinition {
	return p.model
}

func (p *openAIProvider) Generate(ctx context.Context, req ports.ProviderRequest) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       valueOrDefault(p.model.ModelID, domain.DefaultModelID),
		Messages:    toOpenAIMessages(req.Messages),
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	content := firstChoice(resp)
	if content == "" {
		return "", errors.New("empty completion")
	}
	return content, nil
}
