// Package domain defines core business entities and value objects for Vyra.
//
// This file contains the language-model definition used by the provider
// factory and the model responder.
package domain

// ProviderKind identifies which client library speaks to the model endpoint.
type ProviderKind string

const (
	ProviderKindOpenAI  ProviderKind = "openai"
	ProviderKindGemini  ProviderKind = "gemini"
	ProviderKindUnknown ProviderKind = "unknown"
)

// Default model endpoint values (OpenRouter, OpenAI-compatible).
const (
	DefaultModelName     = "gemini-2.0-flash"
	DefaultModelID       = "google/gemini-2.0-flash-exp:free"
	DefaultModelEndpoint = "https://openrouter.ai/api/v1"
	DefaultAuthEnvVar    = "OPENROUTER_API_KEY"
	ModelOverrideEnvVar  = "VYRA_MODEL"
)

// ModelDefinition describes the chat-completion capability declared in the config file.
// APIKey is never written to disk; it is resolved from AuthEnvVar once at startup.
type ModelDefinition struct {
	Provider       ProviderKind      `yaml:"provider"`
	Name           string            `yaml:"name"`
	Endpoint       string            `yaml:"endpoint"`
	ModelID        string            `yaml:"model_id"`
	AuthEnvVar     string            `yaml:"auth_env_var"`
	Temperature    *float64          `yaml:"temperature,omitempty"`
	MaxTokens      int               `yaml:"max_tokens"`
	TimeoutSeconds int               `yaml:"timeout_seconds"`
	SystemPrompt   string            `yaml:"system_prompt,omitempty"`
	Headers        map[string]string `yaml:"headers,omitempty"`

	APIKey string `yaml:"-"`
}

// HasCredential reports whether a credential was resolved for this model.
func (m ModelDefinition) HasCredential() bool {
	return m.APIKey != ""
}

// DisplayName returns the identifier reported by health checks.
func (m ModelDefinition) DisplayName() string {
	if m.ModelID != "" {
		return m.ModelID
	}
	return m.Name
}
