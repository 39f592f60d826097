package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/doeshing/vyra-go/internal/domain"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadWritesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	loader := NewFileLoader(path).WithEnv(envMap(nil))

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AIEnabled() {
		t.Fatal("expected rule-only mode without credential")
	}
	if cfg.Model.ModelID != domain.DefaultModelID {
		t.Fatalf("model id = %s", cfg.Model.ModelID)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if info.Mode().Perm() != domain.SecureFilePermissions {
		t.Fatalf("permissions = %v", info.Mode().Perm())
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(raw), "# Vyra configuration.") {
		t.Fatalf("default file lost its comments: %q", raw[:40])
	}
	if cfg.GetSystemPrompt() != domain.DefaultSystemPrompt {
		t.Fatalf("system prompt = %q", cfg.GetSystemPrompt())
	}
	if cfg.GetServerAddr() != ":5000" || cfg.GetHistoryBackend() != domain.HistoryBackendMemory {
		t.Fatalf("unexpected defaults: %+v", cfg.Server)
	}
	if err := cfg.ValidateConsistency(); err != nil {
		t.Fatalf("embedded defaults invalid: %v", err)
	}
}

func TestLoadResolvesCredentialAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := []byte(`
model:
  auth_env_var: MY_KEY
  max_tokens: 300
history:
  backend: sqlite
`)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	loader := NewFileLoader(path).WithEnv(envMap(map[string]string{
		"MY_KEY":                   "secret",
		domain.ModelOverrideEnvVar: "openai/gpt-4o-mini",
		EnvAddr:                    ":9000",
	}))

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Model.APIKey != "secret" {
		t.Errorf("APIKey = %q", cfg.Model.APIKey)
	}
	if cfg.Model.ModelID != "openai/gpt-4o-mini" {
		t.Errorf("ModelID = %q", cfg.Model.ModelID)
	}
	if cfg.GetServerAddr() != ":9000" {
		t.Errorf("addr = %q", cfg.GetServerAddr())
	}
	if cfg.GetMaxTokens() != 300 {
		t.Errorf("max tokens = %d", cfg.GetMaxTokens())
	}
	if cfg.GetHistoryBackend() != domain.HistoryBackendSQLite {
		t.Errorf("backend = %s", cfg.GetHistoryBackend())
	}
	if cfg.Model.Endpoint != domain.DefaultModelEndpoint {
		t.Errorf("endpoint = %s", cfg.Model.Endpoint)
	}
	if !cfg.AIEnabled() {
		t.Error("expected AI enabled")
	}
}

func TestLoadFallsBackToDefaultCredentialEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("model:\n  auth_env_var: UNSET_KEY\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	loader := NewFileLoader(path).WithEnv(envMap(map[string]string{domain.DefaultAuthEnvVar: "fallback"}))

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Model.APIKey != "fallback" {
		t.Errorf("APIKey = %q", cfg.Model.APIKey)
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("model: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLoader(path).WithEnv(envMap(nil)).Load(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveNeverPersistsCredential(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path).WithEnv(envMap(map[string]string{domain.DefaultAuthEnvVar: "secret"}))

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if err := loader.Save(cfg); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "secret") {
		t.Fatal("credential leaked into config file")
	}
}

func TestResolvePathUsesEnv(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	loader := NewFileLoader("").WithEnv(envMap(map[string]string{EnvConfigPath: custom}))
	if loader.Path() != custom {
		t.Fatalf("Path() = %s, want %s", loader.Path(), custom)
	}
}
