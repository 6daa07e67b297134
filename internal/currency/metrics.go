package currency

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	conversionsCounter metric.Int64Counter
	conversionDuration metric.Float64Histogram
	inFlight           metric.Int64UpDownCounter
	errorCounter       metric.Int64Counter
)

// InitMetrics registers the currency domain's OTel instruments.
func InitMetrics() error {
	meter := otel.Meter("currency")

	var err error

	conversionsCounter, err = meter.Int64Counter("currency.conversions.total",
		metric.WithDescription("Total number of conversions by outcome"),
		metric.WithUnit("{conversion}"),
	)
	if err != nil {
		return fmt.Errorf("creating conversions counter: %w", err)
	}

	conversionDuration, err = meter.Float64Histogram("currency.conversion.duration",
		metric.WithDescription("Duration of conversions including the exchange-rate call"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 50, 100, 250, 500, 1000, 5000),
	)
	if err != nil {
		return fmt.Errorf("creating conversion histogram: %w", err)
	}

	inFlight, err = meter.Int64UpDownCounter("currency.conversions.in_flight",
		metric.WithDescription("Conversions waiting on the exchange-rate endpoint"),
		metric.WithUnit("{conversion}"),
	)
	if err != nil {
		return fmt.Errorf("creating in-flight counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("currency.errors.total",
		metric.WithDescription("Total number of rejected currency requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
