package ai

import (
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sashabaranov/go-openai"

	"github.com/doeshing/vyra-go/internal/domain"
)

func toOpenAIMessages(messages []domain.ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		role := openai.ChatMessageRoleUser
		switch msg.Role {
		case domain.RoleSystem:
			role = openai.ChatMessageRoleSystem
		case domain.RoleAssistant:
			role = openai.ChatMessageRoleAssistant
		}
		out = append(out, openai.ChatCompletionMessage{Role: role, Content: msg.Content})
	}
	return out
}

func firstChoice(resp openai.ChatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

// geminiConversation splits a flat prompt into Gemini's shape: a system
// instruction, prior turns as chat history, and the final user message.
type geminiConversation struct {
	system  string
	history []*genai.Content
	last    string
}

func toGeminiConversation(messages []domain.ChatMessage) geminiConversation {
	var conv geminiConversation
	var systemParts []string

	turns := messages
	if n := len(turns); n > 0 && turns[n-1].Role == domain.RoleUser {
		conv.last = turns[n-1].Content
		turns = turns[:n-1]
	}

	for _, msg := range turns {
		switch msg.Role {
		case domain.RoleSystem:
			systemParts = append(systemParts, msg.Content)
		case domain.RoleAssistant:
			conv.history = append(conv.history, &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(msg.Content)}})
		default:
			conv.history = append(conv.history, &genai.Content{Role: "user", Parts: []genai.Part{genai.Text(msg.Content)}})
		}
	}
	conv.system = strings.Join(systemParts, "\n")
	return conv
}

func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String())
}
