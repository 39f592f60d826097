package domain

// Config mirrors ~/.vyra/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Server              ServerSettings  `yaml:"server"`
	Model               ModelDefinition `yaml:"model"`
	History             HistorySettings `yaml:"history"`
}

// ServerSettings configures the HTTP transport.
type ServerSettings struct {
	Addr                string   `yaml:"addr"`
	AllowedOrigins      []string `yaml:"allowed_origins"`
	ReadTimeoutSeconds  int      `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int      `yaml:"write_timeout_seconds"`
}

// HistorySettings selects the volatile history backend.
type HistorySettings struct {
	Backend string `yaml:"backend"`
}

// History backends.
const (
	HistoryBackendMemory = "memory"
	HistoryBackendSQLite = "sqlite"
)
