package cli

import (
	"errors"
	"fmt"

	"stripe_testbed/internal/config"
	"stripe_testbed/internal/usecase"

	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
	ExitConfig  = 3
	ExitRemote  = 4
)

// UsageError is an unknown operation or an unparseable flag.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	var usageErr *UsageError
	var cfgErr *config.ConfigError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &usageErr), errors.Is(err, usecase.ErrValidation):
		return ExitUsage
	case errors.As(err, &cfgErr):
		return ExitConfig
	case errors.Is(err, usecase.ErrRemoteAPI):
		return ExitRemote
	default:
		return ExitFailure
	}
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &UsageError{Err: err}
	}
	return nil
}
