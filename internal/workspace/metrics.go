package workspace

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	lifecycleCounter metric.Int64Counter
	errorCounter     metric.Int64Counter
)

// InitMetrics registers the workspace domain's OTel instruments.
func InitMetrics() error {
	meter := otel.Meter("workspace")

	var err error

	lifecycleCounter, err = meter.Int64Counter("workspace.lifecycle.total",
		metric.WithDescription("Workspaces created and deleted"),
		metric.WithUnit("{workspace}"),
	)
	if err != nil {
		return fmt.Errorf("creating lifecycle counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("workspace.errors.total",
		metric.WithDescription("Total number of rejected workspace requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
