package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/flxhelpers/flxhelpers/modules/toolkit"
	"github.com/flxhelpers/flxhelpers/pkg/config"
	"github.com/flxhelpers/flxhelpers/pkg/email"
	"github.com/flxhelpers/flxhelpers/pkg/fetcher"
	"github.com/flxhelpers/flxhelpers/pkg/httpserver"
	"github.com/flxhelpers/flxhelpers/pkg/logger"
	"github.com/flxhelpers/flxhelpers/pkg/password"
	"github.com/flxhelpers/flxhelpers/pkg/requestid"
)

type appConfig struct {
	Log      logger.Config
	HTTP     httpserver.Config
	Email    email.Config
	Password password.Config
	Fetch    fetcher.Config

	// UpstreamURL, when set, must answer 2xx for the readiness endpoint to pass.
	UpstreamURL string `env:"READINESS_UPSTREAM_URL"`
}

func main() {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.NewFromConfig(cfg.Log, logger.WithContextExtractors(requestid.LoggerExtractor()))
	logger.SetAsDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("application error", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg appConfig, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checker := email.NewFromConfig(cfg.Email, email.WithLogger(log))
	hasher := password.NewFromConfig(cfg.Password, password.WithLogger(log))
	client := fetcher.NewFromConfig(cfg.Fetch, fetcher.WithLogger(log))
	svc := toolkit.NewService(checker, hasher, toolkit.WithLogger(log))

	opts := []httpserver.Option{
		httpserver.WithLogger(log),
		httpserver.OnShutdown("fetcher", func(context.Context) error {
			client.CloseIdleConnections()
			return nil
		}),
	}
	if cfg.UpstreamURL != "" {
		opts = append(opts, httpserver.WithReadinessCheck("upstream", upstreamCheck(client, cfg.UpstreamURL)))
	}

	if err := httpserver.NewFromConfig(cfg.HTTP, opts...).Run(ctx, svc.Handle()); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func upstreamCheck(client *fetcher.Client, url string) httpserver.Check {
	return func(ctx context.Context) error {
		res := fetcher.Get[any](ctx, client, url, fetcher.Options{})
		if !res.OK() {
			return errors.New(res.Error)
		}
		return nil
	}
}
