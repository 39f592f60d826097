package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/vyra-go/assets"
	"github.com/doeshing/vyra-go/internal/domain"
	"github.com/doeshing/vyra-go/internal/pkg/filesystem"
	"github.com/doeshing/vyra-go/internal/ports"
)

// Environment variables recognized at startup.
const (
	EnvConfigPath = "VYRA_CONFIG"
	EnvAddr       = "VYRA_ADDR"
)

// FileLoader loads YAML configuration from ~/.vyra/config.yaml (overridable via VYRA_CONFIG).
// The credential and model override are read from the environment on every Load;
// callers load once at startup.
type FileLoader struct {
	overridePath string
	getenv       func(string) string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path, getenv: os.Getenv}
}

// WithEnv replaces the environment lookup, mainly for tests.
func (l *FileLoader) WithEnv(getenv func(string) string) *FileLoader {
	l.getenv = getenv
	return l
}

// Path returns the file the loader reads.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, err
		}
		data = assets.DefaultConfigYAML
		if err := os.WriteFile(path, data, domain.SecureFilePermissions); err != nil {
			return domain.Config{}, err
		}
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return l.applyEnv(hydrateDefaults(cfg)), nil
}

// Save writes cfg back to the config file. The resolved credential is never persisted.
func (l *FileLoader) Save(cfg domain.Config) error {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return err
	}
	return writeConfig(path, cfg)
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return expandPath(l.overridePath)
	}
	if custom := l.getenv(EnvConfigPath); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".vyra", "config.yaml")
}

// applyEnv resolves the credential and the model/address overrides.
// A missing credential is not an error: the assistant runs rule-only.
func (l *FileLoader) applyEnv(cfg domain.Config) domain.Config {
	cfg.Model.APIKey = resolveAuth(l.getenv, cfg.Model.AuthEnvVar, domain.DefaultAuthEnvVar)
	if override := l.getenv(domain.ModelOverrideEnvVar); override != "" {
		cfg.Model.ModelID = override
	}
	if addr := l.getenv(EnvAddr); addr != "" {
		cfg.Server.Addr = addr
	}
	return cfg
}

func resolveAuth(getenv func(string) string, primary string, fallback string) string {
	if primary != "" {
		if value := getenv(primary); value != "" {
			return value
		}
	}
	if fallback == "" {
		return ""
	}
	return getenv(fallback)
}

func ensureConfigDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, domain.DirectoryPermissions)
}

func writeConfig(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Model.Provider == "" {
		cfg.Model.Provider = domain.ProviderKindOpenAI
	}
	if cfg.Model.Provider == domain.ProviderKindOpenAI && cfg.Model.Endpoint == "" {
		cfg.Model.Endpoint = domain.DefaultModelEndpoint
	}
	if cfg.Model.ModelID == "" && cfg.Model.Provider == domain.ProviderKindOpenAI {
		cfg.Model.ModelID = domain.DefaultModelID
	}
	if cfg.Model.AuthEnvVar == "" {
		cfg.Model.AuthEnvVar = domain.DefaultAuthEnvVar
	}
	if cfg.History.Backend == "" {
		cfg.History.Backend = domain.HistoryBackendMemory
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
