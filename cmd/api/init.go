package main

import (
	"context"

	"toolbox/internal/config"
	"toolbox/internal/observability"
	"toolbox/internal/server"
)

type shutdownFunc func(context.Context) error

// initTelemetry starts the OTLP trace, metric and log pipelines when enabled
// and registers every domain's instruments. Instruments are registered even
// with telemetry off so handlers always have something to record into.
func initTelemetry(ctx context.Context, cfg config.TelemetryConfig) ([]shutdownFunc, error) {
	var shutdowns []shutdownFunc

	if cfg.Enabled {
		traceShutdown, err := observability.InitTracing(ctx)
		if err != nil {
			return nil, err
		}
		shutdowns = append(shutdowns, traceShutdown)

		metricShutdown, err := observability.InitMetrics(ctx)
		if err != nil {
			return shutdowns, err
		}
		shutdowns = append(shutdowns, metricShutdown)

		logShutdown, err := observability.InitLogging(ctx)
		if err != nil {
			return shutdowns, err
		}
		shutdowns = append(shutdowns, logShutdown)
	}

	if err := server.InitMetrics(); err != nil {
		return shutdowns, err
	}

	return shutdowns, nil
}
