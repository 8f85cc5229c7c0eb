package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	EnvConfigPath = "STRIPE_TESTBED_CONFIG"
	EnvAPIKey     = "STRIPE_API_KEY"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ResolvePath picks the config path: explicit flag, then env, then the default location.
func ResolvePath(flagValue string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(EnvConfigPath)); v != "" {
		return v
	}
	return DefaultPath
}

// Load reads the JSON config at path.
//
// Missing payment_settings fields fall back to defaults. Present but malformed
// values (wrong type, fractional numbers, out of range) are rejected.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigError{Path: path, Err: ErrConfigNotFound}
		}
		return nil, &ConfigError{Path: path, Err: err}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("payment_settings.check_interval", DefaultCheckInterval)
	v.SetDefault("payment_settings.max_attempts", DefaultMaxAttempts)
	v.SetDefault("payment_settings.confirmation_wait_time", DefaultConfirmationWaitTime)
	_ = v.BindEnv("stripe_api_key", EnvAPIKey)

	if err := v.ReadInConfig(); err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("%w: %v", ErrConfigMalformed, err)}
	}

	// A payment_settings value that is not an object cannot be merged with the defaults.
	if raw := v.Get("payment_settings"); raw != nil {
		if _, ok := raw.(map[string]interface{}); !ok {
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("%w: expected an object, got %T", ErrInvalidPaymentSettings, raw)}
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = false
		dc.DecodeHook = mapstructure.DecodeHookFuncKind(strictIntHook)
	})
	if err != nil {
		if strings.Contains(err.Error(), "payment_settings") {
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("%w: %v", ErrInvalidPaymentSettings, err)}
		}
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("%w: %v", ErrConfigMalformed, err)}
	}

	cfg.StripeAPIKey = strings.TrimSpace(cfg.StripeAPIKey)
	if cfg.StripeAPIKey == "" {
		return nil, &ConfigError{Path: path, Err: ErrMissingAPIKey}
	}
	if err := validate.Struct(cfg.PaymentSettings); err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("%w: %v", ErrInvalidPaymentSettings, err)}
	}

	return &cfg, nil
}

// strictIntHook rejects JSON values that would otherwise be silently coerced
// into an int field (strings, bools, fractional numbers).
func strictIntHook(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
	if to != reflect.Int {
		return data, nil
	}
	switch from {
	case reflect.Float64, reflect.Float32:
		f := reflect.ValueOf(data).Float()
		if f != math.Trunc(f) {
			return nil, fmt.Errorf("expected an integer, got %v", f)
		}
		// -float64(math.MinInt) is exactly 2^63 (or 2^31), the first value int cannot hold.
		if f < float64(math.MinInt) || f >= -float64(math.MinInt) {
			return nil, fmt.Errorf("integer %v out of range", f)
		}
		return int(f), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := reflect.ValueOf(data).Int()
		if n < math.MinInt || n > math.MaxInt {
			return nil, fmt.Errorf("integer %d out of range", n)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("expected an integer, got %T", data)
	}
}
