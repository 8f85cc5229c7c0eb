package main

import (
	"context"
	"os"
	"os/signal"

	"stripe_testbed/internal/adapter/cli"
	"stripe_testbed/internal/adapter/persistence/repository"
	"stripe_testbed/internal/config"
	"stripe_testbed/internal/infrastructure/payments"
	"stripe_testbed/internal/infrastructure/telemetry"
	"stripe_testbed/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "stripe-testbed"

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_ = telemetry.InitLogger(serviceName, zapcore.WarnLevel, "console")
	defer func() { _ = telemetry.Sync() }()

	flushSentry, err := telemetry.InitSentry(os.Getenv("SENTRY_DSN"), version, os.Getenv("SENTRY_ENVIRONMENT"))
	if err != nil {
		telemetry.Warn("[cli][main] sentry disabled", zap.Error(err))
		flushSentry = func() {}
	}
	defer flushSentry()

	shutdownTracer, err := telemetry.InitTracer(ctx, serviceName, os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	if err != nil {
		telemetry.Warn("[cli][main] tracing disabled", zap.Error(err))
		shutdownTracer = func(context.Context) error { return nil }
	}
	defer func() { _ = shutdownTracer(context.Background()) }()

	app := &cli.App{
		Version: version,
		Out:     os.Stdout,
		Err:     os.Stderr,
		ConfigureLogging: func(verbose bool) error {
			if !verbose {
				return nil
			}
			return telemetry.InitLogger(serviceName, zapcore.DebugLevel, "console")
		},
		ReportError: telemetry.CaptureError,
		NewUseCase:  newUseCase,
	}
	return cli.Execute(ctx, app, os.Args[1:])
}

func newUseCase(ctx context.Context, cfg *config.Config) (usecase.IStripeTestbedUseCase, error) {
	gateway, err := payments.NewStripeGateway(payments.StripeGatewayConfig{
		APIKey:  cfg.StripeAPIKey,
		BaseURL: os.Getenv("STRIPE_API_BASE"),
	})
	if err != nil {
		return nil, err
	}
	activity, err := repository.NewActivityRepositoryFromEnv(ctx)
	if err != nil {
		return nil, err
	}
	return usecase.NewStripeTestbedUseCase(gateway, activity, usecase.PollSettings{
		Interval:    cfg.PaymentSettings.CheckIntervalDuration(),
		MaxAttempts: cfg.PaymentSettings.MaxAttempts,
	}), nil
}
