package domain

import "time"

// Exchange captures one user utterance and the assistant's reply.
type Exchange struct {
	UserText      string    `json:"user"`
	AssistantText string    `json:"assistant"`
	Timestamp     time.Time `json:"timestamp"`
}

// Message roles used when building a chat prompt.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a provider-neutral role/content pair.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Messages flattens the exchange into a user turn followed by an assistant turn.
func (e Exchange) Messages() []ChatMessage {
	return []ChatMessage{
		{Role: RoleUser, Content: e.UserText},
		{Role: RoleAssistant, Content: e.AssistantText},
	}
}
