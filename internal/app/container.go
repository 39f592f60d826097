package app

import (
	"context"
	"errors"

	"github.com/doeshing/vyra-go/internal/application/assistant"
	"github.com/doeshing/vyra-go/internal/application/doctor"
	"github.com/doeshing/vyra-go/internal/domain"
	"github.com/doeshing/vyra-go/internal/infrastructure/ai"
	"github.com/doeshing/vyra-go/internal/infrastructure/config"
	"github.com/doeshing/vyra-go/internal/infrastructure/history"
	"github.com/doeshing/vyra-go/internal/infrastructure/metrics"
	"github.com/doeshing/vyra-go/internal/infrastructure/rules"
	"github.com/doeshing/vyra-go/internal/pkg/logger"
	"github.com/doeshing/vyra-go/internal/ports"
)

// Options control container construction.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config        domain.Config
	ConfigLoader  *config.FileLoader
	Logger        *logger.ZapLogger
	Metrics       *metrics.Recorder
	HistoryStore  ports.HistoryRepository
	Rules         *rules.Matcher
	Provider      ports.Provider
	Assistant     *assistant.Service
	DoctorService *doctor.Service
}

// BuildContainer constructs the dependency graph. A missing credential or a
// provider that fails to initialize leaves the assistant in rule-only mode.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	log, err := logger.New(opts.Verbose)
	if err != nil {
		return nil, err
	}

	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	historyStore, err := history.New(cfg.GetHistoryBackend())
	if err != nil {
		log.Warn("history backend unavailable, using memory", map[string]interface{}{
			"backend": cfg.GetHistoryBackend(),
			"error":   err.Error(),
		})
		historyStore = history.NewMemoryStore()
	}

	recorder := metrics.NewRecorder()
	matcher := rules.NewMatcher()
	provider := buildProvider(cfg, log)

	responder := &assistant.Responder{
		History: historyStore,
		Config:  cfg,
		Logger:  log,
		Metrics: recorder,
	}
	if provider != nil {
		responder.Provider = provider
	}

	service := &assistant.Service{
		Dispatcher: &assistant.Dispatcher{
			Rules:     matcher,
			Responder: responder,
			History:   historyStore,
			Logger:    log,
			Metrics:   recorder,
		},
		History: historyStore,
		Config:  cfg,
	}

	return &Container{
		Config:       cfg,
		ConfigLoader: cfgLoader,
		Logger:       log,
		Metrics:      recorder,
		HistoryStore: historyStore,
		Rules:        matcher,
		Provider:     provider,
		Assistant:    service,
		DoctorService: &doctor.Service{
			ConfigProvider: cfgLoader,
			History:        historyStore,
			Rules:          matcher,
		},
	}, nil
}

func buildProvider(cfg domain.Config, log ports.Logger) ports.Provider {
	if !cfg.AIEnabled() {
		return nil
	}
	provider, err := ai.NewFactory().ForModel(cfg.Model)
	if err != nil {
		if !errors.Is(err, domain.ErrProviderUnavailable) {
			log.Warn("model provider disabled", map[string]interface{}{"error": err.Error()})
		}
		return nil
	}
	return provider
}

// Close releases resources held by the adapters.
func (c *Container) Close() error {
	var errs []error
	if closer, ok := c.Provider.(interface{ Close() error }); ok {
		errs = append(errs, closer.Close())
	}
	if closer, ok := c.HistoryStore.(interface{ Close() error }); ok {
		errs = append(errs, closer.Close())
	}
	_ = c.Logger.Sync()
	return errors.Join(errs...)
}
