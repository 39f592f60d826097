package doctor

import (
	"context"
	"fmt"

	cfgvalidator "github.com/doeshing/vyra-go/internal/application/config"
	"github.com/doeshing/vyra-go/internal/domain"
	"github.com/doeshing/vyra-go/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	History        ports.HistoryRepository
	Rules          ports.RuleMatcher
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded version %s", cfg.ConfigFormatVersion)))

	if err := cfgvalidator.Validate(cfg); err != nil {
		checks = append(checks, fail("Config values", err.Error()))
	} else {
		checks = append(checks, ok("Config values", "valid"))
	}

	checks = append(checks, credentialCheck(cfg))

	if s.Rules != nil {
		if _, matched := s.Rules.Match("hello"); matched {
			checks = append(checks, ok("Rules", "greeting rule answers"))
		} else {
			checks = append(checks, fail("Rules", "greeting rule did not match"))
		}
	}

	if s.History != nil {
		checks = append(checks, historyCheck(s.History, cfg.GetHistoryBackend()))
	} else {
		checks = append(checks, warn("History", "history store not initialized"))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func credentialCheck(cfg domain.Config) domain.HealthCheck {
	env := cfg.Model.AuthEnvVar
	if env == "" {
		env = domain.DefaultAuthEnvVar
	}
	if !cfg.Model.HasCredential() {
		return warn("Model credential", fmt.Sprintf("%s not set, running rule-only", env))
	}
	return ok("Model credential", fmt.Sprintf("%s set, model %s", env, cfg.Model.DisplayName()))
}

// historyCheck round-trips an exchange through a scratch session.
func historyCheck(store ports.HistoryRepository, backend string) domain.HealthCheck {
	const probe = "__doctor__"
	if err := store.Append(probe, domain.Exchange{UserText: "ping", AssistantText: "pong"}); err != nil {
		return fail("History", fmt.Sprintf("%s append failed: %v", backend, err))
	}
	defer func() { _ = store.Clear(probe) }()

	recent, err := store.Recent(probe, 1)
	if err != nil || len(recent) != 1 {
		return fail("History", fmt.Sprintf("%s read-back failed", backend))
	}
	return ok("History", fmt.Sprintf("%s backend ready", backend))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
