package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultPort            = 3000
	DefaultGreeting        = "Hello from Express.js in Docker!"
	DefaultShutdownTimeout = 5 * time.Second
	DefaultLogLevel        = "info"
)

type Config struct {
	Port            int
	Greeting        string
	ShutdownTimeout time.Duration
	LogLevel        string
}

// NewConfig reads configs/server/config.yaml when present and lets the
// environment (PORT, GREETING, SHUTDOWN_TIMEOUT, LOG_LEVEL) override it.
func NewConfig() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs/server")
	v.AddConfigPath(".")

	v.SetDefault("port", DefaultPort)
	v.SetDefault("greeting", DefaultGreeting)
	v.SetDefault("shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("log_level", DefaultLogLevel)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		Port:            v.GetInt("port"),
		Greeting:        v.GetString("greeting"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		LogLevel:        v.GetString("log_level"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Port)
	}
	if cfg.Greeting == "" {
		return ErrEmptyGreeting
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidShutdownTimeout, cfg.ShutdownTimeout)
	}
	return nil
}
