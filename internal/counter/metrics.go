package counter

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	actionsCounter metric.Int64Counter
	errorCounter   metric.Int64Counter
	valueGauge     metric.Int64Gauge
)

// InitMetrics registers the counter domain's OTel instruments.
func InitMetrics() error {
	meter := otel.Meter("counter")

	var err error

	actionsCounter, err = meter.Int64Counter("counter.actions.total",
		metric.WithDescription("Total number of counter actions dispatched"),
		metric.WithUnit("{action}"),
	)
	if err != nil {
		return fmt.Errorf("creating actions counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("counter.errors.total",
		metric.WithDescription("Total number of rejected counter requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	valueGauge, err = meter.Int64Gauge("counter.value",
		metric.WithDescription("Counter value after the last dispatch"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating value gauge: %w", err)
	}

	return nil
}
