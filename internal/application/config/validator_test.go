package config

import (
	"testing"

	"github.com/doeshing/vyra-go/internal/domain"
)

func TestValidate(t *testing.T) {
	valid := domain.Config{
		Server: domain.ServerSettings{Addr: ":5000", AllowedOrigins: []string{"*"}},
		Model: domain.ModelDefinition{
			Provider: domain.ProviderKindOpenAI,
			Endpoint: domain.DefaultModelEndpoint,
			ModelID:  domain.DefaultModelID,
		},
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*domain.Config) {}},
		{name: "bad addr", mutate: func(c *domain.Config) { c.Server.Addr = "5000" }, wantErr: true},
		{name: "empty origin", mutate: func(c *domain.Config) { c.Server.AllowedOrigins = []string{" "} }, wantErr: true},
		{name: "relative endpoint", mutate: func(c *domain.Config) { c.Model.Endpoint = "openrouter.ai" }, wantErr: true},
		{name: "negative tokens", mutate: func(c *domain.Config) { c.Model.MaxTokens = -1 }, wantErr: true},
		{name: "unknown backend", mutate: func(c *domain.Config) { c.History.Backend = "redis" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
