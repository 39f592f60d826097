package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Session constants
const (
	// DefaultSessionID is used when a request carries no session identifier
	DefaultSessionID = "default"
	// HistoryRetention is the maximum number of exchanges kept per session
	HistoryRetention = 10
	// PromptHistoryWindow is how many recent exchanges are replayed to the model
	PromptHistoryWindow = 5
)

// Confidence constants
const (
	RuleConfidence     = 1.0
	ModelConfidence    = 0.9
	FallbackConfidence = 0.3
)

// FallbackText is spoken when nothing else could answer.
const FallbackText = "I'm not sure how to help with that. Try asking me about the time, weather, or general questions."

// ErrorText is returned by the transport for unexpected failures.
const ErrorText = "Sorry, I encountered an error processing your request."

// Model configuration constants
const (
	// DefaultTemperature is the sampling temperature sent to the model
	DefaultTemperature = 0.7
	// DefaultMaxTokens caps the model reply length
	DefaultMaxTokens = 150
	// DefaultModelTimeout bounds a single model call
	DefaultModelTimeout = 30 * time.Second
	// DefaultHTTPClientTimeout is the timeout for HTTP client requests
	DefaultHTTPClientTimeout = 60 * time.Second
)

// DefaultSystemPrompt instructs the model how to speak.
const DefaultSystemPrompt = "You are Vyra, a friendly and helpful personal voice assistant. " +
	"Keep your responses concise and conversational, suitable for voice interaction. " +
	"Limit responses to 2-3 sentences when possible."

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
	// ClockFormat renders the spoken time, e.g. 03:04 PM
	ClockFormat = "03:04 PM"
	// CalendarFormat renders the spoken date, e.g. Monday, January 02, 2006
	CalendarFormat = "Monday, January 02, 2006"
)
