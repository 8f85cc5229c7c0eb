package config

import (
	"errors"
	"fmt"
)

var (
	ErrConfigNotFound         = errors.New("config file not found")
	ErrConfigMalformed        = errors.New("config file is not valid JSON")
	ErrMissingAPIKey          = errors.New("no Stripe API key found in configuration file")
	ErrInvalidPaymentSettings = errors.New("invalid payment_settings")
)

// ConfigError reports a config file that is missing, malformed or incomplete.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("error loading config file %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
