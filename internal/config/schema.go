package config

import (
	"strings"
	"time"
)

const (
	DefaultPath                 = "conf/config.json"
	DefaultCheckInterval        = 5
	DefaultMaxAttempts          = 6
	DefaultConfirmationWaitTime = 30
)

// Config is the immutable per-invocation configuration.
type Config struct {
	StripeAPIKey    string          `json:"stripe_api_key" yaml:"stripe_api_key" mapstructure:"stripe_api_key"`
	PaymentSettings PaymentSettings `json:"payment_settings" yaml:"payment_settings" mapstructure:"payment_settings"`
}

// PaymentSettings configures the confirmation poll. All values are in seconds
// except MaxAttempts. Intervals and waits are capped at one day, attempts at 1000.
type PaymentSettings struct {
	CheckInterval        int `json:"check_interval" yaml:"check_interval" mapstructure:"check_interval" validate:"gte=1,lte=86400"`
	MaxAttempts          int `json:"max_attempts" yaml:"max_attempts" mapstructure:"max_attempts" validate:"gte=1,lte=1000"`
	ConfirmationWaitTime int `json:"confirmation_wait_time" yaml:"confirmation_wait_time" mapstructure:"confirmation_wait_time" validate:"gte=0,lte=86400"`
}

func (s PaymentSettings) CheckIntervalDuration() time.Duration {
	return time.Duration(s.CheckInterval) * time.Second
}

func (s PaymentSettings) ConfirmationWait() time.Duration {
	return time.Duration(s.ConfirmationWaitTime) * time.Second
}

// PollBudget is the longest the two confirmation loops can sleep in total.
func (s PaymentSettings) PollBudget() time.Duration {
	return 2 * time.Duration(s.MaxAttempts) * s.CheckIntervalDuration()
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	c.StripeAPIKey = redactKey(c.StripeAPIKey)
	return c
}

func redactKey(key string) string {
	if key == "" {
		return ""
	}
	prefix := ""
	if i := strings.LastIndex(key, "_"); i >= 0 && i < len(key)-1 {
		prefix = key[:i+1]
	}
	if len(key)-len(prefix) <= 4 {
		return prefix + "****"
	}
	return prefix + "****" + key[len(key)-4:]
}
