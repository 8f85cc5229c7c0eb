package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"stripe_testbed/internal/adapter/http/routes"
	"stripe_testbed/internal/config"
	"stripe_testbed/internal/infrastructure/telemetry"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// @title           Stripe Testbed API
// @version         1.0
// @description     JSON API of the Stripe testbed dashboard. Amounts are integers in the currency's smallest unit.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := telemetry.InitLogger(routes.ServiceName, zapcore.InfoLevel, "json"); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		return 1
	}
	defer func() { _ = telemetry.Sync() }()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	flushSentry, err := telemetry.InitSentry(os.Getenv("SENTRY_DSN"), version, os.Getenv("SENTRY_ENVIRONMENT"))
	if err != nil {
		telemetry.Warn("[dashboard][main] sentry disabled", zap.Error(err))
		flushSentry = func() {}
	}
	defer flushSentry()

	shutdownTracer, err := telemetry.InitTracer(ctx, routes.ServiceName, os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	if err != nil {
		telemetry.Warn("[dashboard][main] tracing disabled", zap.Error(err))
		shutdownTracer = func(context.Context) error { return nil }
	}
	defer func() { _ = shutdownTracer(context.Background()) }()

	mp, err := telemetry.InitMeter(ctx, routes.ServiceName)
	if err != nil {
		telemetry.Warn("[dashboard][main] metrics disabled", zap.Error(err))
	} else {
		defer func() { _ = mp.Shutdown(context.Background()) }()
	}

	cfg, err := config.Load(config.ResolvePath(""))
	if err != nil {
		telemetry.Error("[dashboard][main] config", zap.Error(err))
		return 3
	}

	port := routes.DefaultPort
	if v := os.Getenv("DASHBOARD_PORT"); v != "" {
		if port, err = strconv.Atoi(v); err != nil {
			telemetry.Error("[dashboard][main] invalid DASHBOARD_PORT", zap.String("value", v))
			return 2
		}
	}

	if err := routes.Run(ctx, cfg, port); err != nil {
		telemetry.CaptureError(err)
		telemetry.Error("[dashboard][main] failed to start the application", zap.Error(err))
		return 1
	}
	return 0
}
