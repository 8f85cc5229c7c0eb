package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"
)

var (
	instrumentsOnce sync.Once

	stripeAPICalls     metric.Int64Counter
	stripeAPIDuration  metric.Float64Histogram
	pollRetrievals     metric.Int64Counter
	pollOutcomes       metric.Int64Counter
	httpServerDuration metric.Float64Histogram
)

// InitMeter installs a meter provider backed by the Prometheus exporter.
// The exporter registers with the default Prometheus registry, which
// promhttp.Handler serves.
func InitMeter(ctx context.Context, serviceName string) (*sdkmetric.MeterProvider, error) {
	exporter, err := otelprom.New()
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	Info("Metrics initialized with Prometheus exporter", zap.String("service_name", serviceName))
	return mp, nil
}

// Instruments are created from the global meter, which delegates to whatever
// provider InitMeter installs later.
func initInstruments() {
	meter := otel.Meter(instrumentationName)
	var err error

	stripeAPICalls, err = meter.Int64Counter(
		"stripe_api_calls_total",
		metric.WithDescription("Total number of Stripe API calls"),
	)
	if err != nil {
		Warn("Failed to create instrument", zap.String("name", "stripe_api_calls_total"), zap.Error(err))
	}

	stripeAPIDuration, err = meter.Float64Histogram(
		"stripe_api_call_duration_seconds",
		metric.WithDescription("Duration of Stripe API calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		Warn("Failed to create instrument", zap.String("name", "stripe_api_call_duration_seconds"), zap.Error(err))
	}

	pollRetrievals, err = meter.Int64Counter(
		"payment_confirmation_retrievals_total",
		metric.WithDescription("PaymentIntent retrievals issued by the confirmation poll"),
	)
	if err != nil {
		Warn("Failed to create instrument", zap.String("name", "payment_confirmation_retrievals_total"), zap.Error(err))
	}

	pollOutcomes, err = meter.Int64Counter(
		"payment_confirmation_outcomes_total",
		metric.WithDescription("Confirmation poll results by outcome"),
	)
	if err != nil {
		Warn("Failed to create instrument", zap.String("name", "payment_confirmation_outcomes_total"), zap.Error(err))
	}

	httpServerDuration, err = meter.Float64Histogram(
		"http_server_duration_milliseconds",
		metric.WithDescription("HTTP server request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		Warn("Failed to create instrument", zap.String("name", "http_server_duration_milliseconds"), zap.Error(err))
	}
}

// RecordStripeCall counts one remote call and its duration.
func RecordStripeCall(ctx context.Context, operation, outcome string, seconds float64) {
	instrumentsOnce.Do(initInstruments)
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	)
	if stripeAPICalls != nil {
		stripeAPICalls.Add(ctx, 1, attrs)
	}
	if stripeAPIDuration != nil {
		stripeAPIDuration.Record(ctx, seconds, attrs)
	}
}

func RecordPollRetrieval(ctx context.Context, phase string) {
	instrumentsOnce.Do(initInstruments)
	if pollRetrievals != nil {
		pollRetrievals.Add(ctx, 1, metric.WithAttributes(attribute.String("phase", phase)))
	}
}

func RecordPollOutcome(ctx context.Context, outcome string) {
	instrumentsOnce.Do(initInstruments)
	if pollOutcomes != nil {
		pollOutcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	}
}

func RecordHTTPRequest(ctx context.Context, method, route, status string, millis float64) {
	instrumentsOnce.Do(initInstruments)
	if httpServerDuration != nil {
		httpServerDuration.Record(ctx, millis,
			metric.WithAttributes(
				attribute.String("http_method", method),
				attribute.String("http_route", route),
				attribute.String("http_status_code", status),
			),
		)
	}
}
