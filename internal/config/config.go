package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration. It is loaded once at startup and
// passed by value to component constructors; there is no package-level global.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// SettlementConfig carries the recognized settlement-engine options.
type SettlementConfig struct {
	ExtensionThresholdMinutes int `mapstructure:"extension_threshold_minutes"`
	ExtensionDurationMinutes  int `mapstructure:"extension_duration_minutes"`
	MonitoringIntervalSeconds int `mapstructure:"monitoring_interval_seconds"`
	PaymentWindowMinutes      int `mapstructure:"payment_window_minutes"`
	MaxRetryAttempts          int `mapstructure:"max_retry_attempts"`
	RetryCheckIntervalSeconds int `mapstructure:"retry_check_interval_seconds"`
}

// KafkaConfig configures the optional Kafka-backed notifier. An empty broker
// list selects the log-only notifier.
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// Load reads configuration from an optional YAML file and AUCTION_* env
// variables, applying defaults for anything unset. An empty path skips the
// file and uses defaults plus env only.
func Load(configPath string) (Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("settlement.extension_threshold_minutes", 5)
	v.SetDefault("settlement.extension_duration_minutes", 10)
	v.SetDefault("settlement.monitoring_interval_seconds", 30)
	v.SetDefault("settlement.payment_window_minutes", 30)
	v.SetDefault("settlement.max_retry_attempts", 3)
	v.SetDefault("settlement.retry_check_interval_seconds", 60)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "payment-notifications")

	v.SetEnvPrefix("AUCTION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Settlement.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c SettlementConfig) validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"extension_threshold_minutes", c.ExtensionThresholdMinutes},
		{"extension_duration_minutes", c.ExtensionDurationMinutes},
		{"monitoring_interval_seconds", c.MonitoringIntervalSeconds},
		{"payment_window_minutes", c.PaymentWindowMinutes},
		{"max_retry_attempts", c.MaxRetryAttempts},
		{"retry_check_interval_seconds", c.RetryCheckIntervalSeconds},
	}
	for _, check := range checks {
		if check.value <= 0 {
			return fmt.Errorf("config: settlement.%s must be positive, got %d", check.name, check.value)
		}
	}
	return nil
}

// ExtensionThreshold is the remaining-time window within which a bid triggers
// an anti-sniping extension.
func (c SettlementConfig) ExtensionThreshold() time.Duration {
	return time.Duration(c.ExtensionThresholdMinutes) * time.Minute
}

// ExtensionDuration is how far a single extension pushes the expiry out.
func (c SettlementConfig) ExtensionDuration() time.Duration {
	return time.Duration(c.ExtensionDurationMinutes) * time.Minute
}

// MonitoringInterval is the auction-monitor polling period.
func (c SettlementConfig) MonitoringInterval() time.Duration {
	return time.Duration(c.MonitoringIntervalSeconds) * time.Second
}

// PaymentWindow is how long a bidder has to confirm payment.
func (c SettlementConfig) PaymentWindow() time.Duration {
	return time.Duration(c.PaymentWindowMinutes) * time.Minute
}

// RetryCheckInterval is the retry-cascade polling period.
func (c SettlementConfig) RetryCheckInterval() time.Duration {
	return time.Duration(c.RetryCheckIntervalSeconds) * time.Second
}
