package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/doeshing/vyra-go/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := cfg.ValidateConsistency(); err != nil {
		return err
	}
	if err := validateServer(cfg.Server); err != nil {
		return err
	}
	return validateModel(cfg.Model)
}

func validateServer(server domain.ServerSettings) error {
	if server.Addr != "" {
		if _, _, err := net.SplitHostPort(server.Addr); err != nil {
			return fmt.Errorf("server.addr invalid: %w", err)
		}
	}
	if server.ReadTimeoutSeconds < 0 || server.WriteTimeoutSeconds < 0 {
		return errors.New("server timeouts must be >= 0")
	}
	for _, origin := range server.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			return errors.New("server.allowed_origins contains an empty entry")
		}
	}
	return nil
}

func validateModel(model domain.ModelDefinition) error {
	if model.Endpoint != "" {
		parsed, err := url.Parse(model.Endpoint)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("model.endpoint %q is not an absolute URL", model.Endpoint)
		}
	}
	if model.MaxTokens < 0 {
		return fmt.Errorf("model.max_tokens must be >= 0")
	}
	if model.TimeoutSeconds < 0 {
		return fmt.Errorf("model.timeout_seconds must be >= 0")
	}
	return nil
}
