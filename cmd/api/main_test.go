package main

import (
	"os"
	"path/filepath"
	"testing"

	"stripe_testbed/internal/config"
)

func TestRun_ConfigErrorReturnsExitCode(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "missing.json"))
	t.Setenv("SENTRY_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	if code := run(); code != 3 {
		t.Fatalf("expected exit code 3, got %d", code)
	}
}

func TestRun_InvalidPortReturnsExitCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeFile(t, path, `{"stripe_api_key":"sk_test_123"}`)
	t.Setenv(config.EnvConfigPath, path)
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv("SENTRY_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("DASHBOARD_PORT", "eighty")

	if code := run(); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
