package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"toolbox/internal/calculator"
	"toolbox/internal/counter"
	"toolbox/internal/currency"
	"toolbox/internal/handlers"
	"toolbox/internal/observability"
	"toolbox/internal/workspace"
)

func NewRouter(registry *workspace.Registry, opts workspace.Options) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	scrape := observability.NewPrometheusRegistry()
	r.Handle("/metrics", observability.PrometheusHandler(scrape))

	err := observability.RegisterGaugeFunc(scrape,
		"toolbox_workspaces_active", "Number of live workspaces.",
		func() float64 { return float64(registry.Len()) })
	if err != nil {
		observability.Logger.Warn("registering workspace gauge", zap.Error(err))
	}

	calculator.RegisterRoutes(r)
	currency.RegisterRoutes(r)

	workspace.NewHandler(registry, opts).RegisterRoutes(r,
		calculator.NewHandler(func(ctx context.Context) (*calculator.Session, bool) {
			ws, ok := workspace.FromContext(ctx)
			if !ok {
				return nil, false
			}
			return ws.Calculator, true
		}),
		counter.NewHandler(func(ctx context.Context) (*counter.Store, bool) {
			ws, ok := workspace.FromContext(ctx)
			if !ok {
				return nil, false
			}
			return ws.Counter, true
		}),
		currency.NewHandler(func(ctx context.Context) (*currency.Converter, bool) {
			ws, ok := workspace.FromContext(ctx)
			if !ok {
				return nil, false
			}
			return ws.Converter, true
		}),
	)

	return r
}

// InitMetrics registers every domain's OTel instruments. Call it once at
// startup, after observability.InitMetrics.
func InitMetrics() error {
	for _, initFn := range []func() error{
		calculator.InitMetrics,
		counter.InitMetrics,
		currency.InitMetrics,
		workspace.InitMetrics,
	} {
		if err := initFn(); err != nil {
			return err
		}
	}
	return nil
}
