package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/doeshing/vyra-go/internal/domain"
	"github.com/doeshing/vyra-go/internal/ports"
)

const defaultGeminiModel = "gemini-1.5-flash"

// geminiProvider calls Google's Gemini API directly.
type geminiProvider struct {
	model  domain.ModelDefinition
	client *genai.Client
}

func newGeminiProvider(ctx context.Context, model domain.ModelDefinition) (ports.Provider, error) {
	opts := []option.ClientOption{option.WithAPIKey(model.APIKey)}
	if model.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(model.Endpoint))
	}
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &geminiProvider{model: model, client: client}, nil
}

func (p *geminiProvider) Name() string {
	return string(domain.ProviderKindGemini)
}

func (p *geminiProvider) Model() domain.ModelDefinition {
	return p.model
}

func (p *geminiProvider) Generate(ctx context.Context, req ports.ProviderRequest) (string, error) {
	conv := toGeminiConversation(req.Messages)
	if conv.last == "" {
		return "", errors.New("prompt must end with a user message")
	}

	model := p.client.GenerativeModel(valueOrDefault(p.model.ModelID, defaultGeminiModel))
	model.SetTemperature(float32(req.Temperature))
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	if conv.system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(conv.system)}}
	}

	chat := model.StartChat()
	chat.History = conv.history

	resp, err := chat.SendMessage(ctx, genai.Text(conv.last))
	if err != nil {
		return "", err
	}
	content := geminiText(resp)
	if content == "" {
		return "", errors.New("empty completion")
	}
	return content, nil
}

// Close releases the underlying gRPC/HTTP client.
func (p *geminiProvider) Close() error {
	return p.client.Close()
}
