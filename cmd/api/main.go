package main

import (
	"context"
	"errors"

	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"toolbox/internal/config"
	"toolbox/internal/currency"
	"toolbox/internal/observability"
	"toolbox/internal/server"
	"toolbox/internal/workspace"
)

func main() {

	configPath := pflag.String("config", "", "path to a YAML config file")
	pflag.Parse()

	ctx := context.Background()

	// Config
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	// Logger
	err = observability.InitLogger(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// Tracing, metrics and logs
	shutdowns, err := initTelemetry(ctx, cfg.Telemetry)
	defer func() {
		for i := len(shutdowns) - 1; i >= 0; i-- {
			shutdowns[i](ctx)
		}
	}()
	if err != nil {
		observability.Logger.Fatal("telemetry init failed", zap.Error(err))
	}

	// Exchange client
	client := currency.NewClient(
		cfg.Exchange.Endpoint,
		cfg.Exchange.AccessKey,
		observability.NewHTTPClient(cfg.Exchange.Timeout),
	)

	// Router
	router := server.NewRouter(workspace.NewRegistry(client), workspace.Options{
		DefaultTheme:    cfg.DefaultTheme(),
		ConvertOnCreate: cfg.Currency.ConvertOnCreate,
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", cfg.Server.Addr),
			zap.String("exchange_endpoint", cfg.Exchange.Endpoint),
			zap.Bool("telemetry", cfg.Telemetry.Enabled),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	waitForShutdown(srv, cfg.Server.ShutdownTimeout)
}

func waitForShutdown(srv *http.Server, timeout time.Duration) {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		observability.Logger.Warn("shutdown incomplete", zap.Error(err))
	}
	observability.Logger.Info("server stopped")
}
