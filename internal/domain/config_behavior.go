package domain

import (
	"fmt"
	"time"
)

// AIEnabled reports whether the model path can be used at all.
// A missing credential puts the assistant in rule-only mode.
func (c *Config) AIEnabled() bool {
	return c.Model.HasCredential() && c.Model.ModelID != ""
}

// GetProviderKind returns the configured provider, defaulting to OpenAI-compatible.
func (c *Config) GetProviderKind() ProviderKind {
	if c.Model.Provider == "" {
		return ProviderKindOpenAI
	}
	return c.Model.Provider
}

// GetTemperature returns the sampling temperature
func (c *Config) GetTemperature() float64 {
	if c.Model.Temperature == nil {
		return DefaultTemperature
	}
	return *c.Model.Temperature
}

// GetMaxTokens returns the maximum reply length
func (c *Config) GetMaxTokens() int {
	if c.Model.MaxTokens <= 0 {
		return DefaultMaxTokens
	}
	return c.Model.MaxTokens
}

// GetModelTimeout returns the per-call model timeout
func (c *Config) GetModelTimeout() time.Duration {
	if c.Model.TimeoutSeconds <= 0 {
		return DefaultModelTimeout
	}
	return time.Duration(c.Model.TimeoutSeconds) * time.Second
}

// GetSystemPrompt returns the configured system instruction
func (c *Config) GetSystemPrompt() string {
	if c.Model.SystemPrompt == "" {
		return DefaultSystemPrompt
	}
	return c.Model.SystemPrompt
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	const defaultAddr = ":5000"

	if c.Server.Addr == "" {
		return defaultAddr
	}
	return c.Server.Addr
}

// GetAllowedOrigins returns CORS origins, allowing all when unset
func (c *Config) GetAllowedOrigins() []string {
	if len(c.Server.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return c.Server.AllowedOrigins
}

// GetReadTimeout returns the HTTP read timeout
func (c *Config) GetReadTimeout() time.Duration {
	const defaultReadTimeout = 15 * time.Second

	if c.Server.ReadTimeoutSeconds <= 0 {
		return defaultReadTimeout
	}
	return time.Duration(c.Server.ReadTimeoutSeconds) * time.Second
}

// GetWriteTimeout returns the HTTP write timeout. It must outlive a model call.
func (c *Config) GetWriteTimeout() time.Duration {
	if c.Server.WriteTimeoutSeconds <= 0 {
		return c.GetModelTimeout() + 30*time.Second
	}
	return time.Duration(c.Server.WriteTimeoutSeconds) * time.Second
}

// GetHistoryBackend returns the history backend name
func (c *Config) GetHistoryBackend() string {
	if c.History.Backend == "" {
		return HistoryBackendMemory
	}
	return c.History.Backend
}

// ValidateConsistency checks the internal consistency of the configuration
func (c *Config) ValidateConsistency() error {
	switch c.GetProviderKind() {
	case ProviderKindOpenAI, ProviderKindGemini:
	default:
		return fmt.Errorf("model provider %s is not supported", c.Model.Provider)
	}

	if t := c.GetTemperature(); t < 0 || t > 2 {
		return fmt.Errorf("model temperature %.2f out of range [0,2]", t)
	}

	switch c.GetHistoryBackend() {
	case HistoryBackendMemory, HistoryBackendSQLite:
	default:
		return fmt.Errorf("history backend %s is not supported", c.History.Backend)
	}

	if c.Model.HasCredential() && c.Model.ModelID == "" {
		return fmt.Errorf("model credential is set but no model_id is configured")
	}

	return nil
}
