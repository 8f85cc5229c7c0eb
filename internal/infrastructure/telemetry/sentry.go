package telemetry

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

const sentryFlushTimeout = 2 * time.Second

// InitSentry enables error reporting when dsn is set. The returned func
// flushes queued events and must run before the process exits.
func InitSentry(dsn, release, environment string) (func(), error) {
	if dsn == "" {
		return func() {}, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Release:     release,
		Environment: environment,
	})
	if err != nil {
		return func() {}, err
	}
	Debug("Sentry initialized", zap.String("environment", environment))
	return func() { sentry.Flush(sentryFlushTimeout) }, nil
}

// CaptureError reports err to Sentry. It is a no-op when Sentry is not initialized.
func CaptureError(err error) {
	if err == nil {
		return
	}
	sentry.CaptureException(err)
}
