package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/doeshing/vyra-go/internal/app"
	"github.com/doeshing/vyra-go/internal/infrastructure/httpapi"
)

const shutdownTimeout = 10 * time.Second

// NewServeCommand creates the serve command
func NewServeCommand(get ContainerFunc) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API for the browser client",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			container, err := get(ctx)
			if err != nil {
				return err
			}
			return runServer(ctx, container, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :5000)")
	return cmd
}

func runServer(ctx context.Context, container *app.Container, addr string) error {
	cfg := container.Config
	if addr == "" {
		addr = cfg.GetServerAddr()
	}

	api := httpapi.NewServer(container.Assistant, container.Logger, httpapi.Options{
		AllowedOrigins: cfg.GetAllowedOrigins(),
		Metrics:        container.Metrics.Handler(),
	})
	srv := &http.Server{
		Addr:              addr,
		Handler:           api,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.GetReadTimeout(),
		WriteTimeout:      cfg.GetWriteTimeout(),
	}

	logBanner(container, addr)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		container.Logger.Info("shutting down", map[string]interface{}{"addr": addr})
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func logBanner(container *app.Container, addr string) {
	fields := map[string]interface{}{
		"addr":    addr,
		"ai_mode": "disabled",
		"history": container.Config.GetHistoryBackend(),
	}
	if container.Provider != nil {
		fields["ai_mode"] = "enabled"
		fields["model"] = container.Config.Model.DisplayName()
		fields["provider"] = container.Provider.Name()
	}
	container.Logger.Info("starting Vyra web assistant backend", fields)
}
