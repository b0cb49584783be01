package config

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment names
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds the service settings read from the environment
type Config struct {
	// Port the HTTP API listens on (PORT)
	Port string

	// Environment selects the logger preset (QRE_ENV)
	Environment string

	// LogLevel is a zap level name (QRE_LOG_LEVEL)
	LogLevel string

	// RotationBits is the default br for norm requests that omit it (QRE_ROTATION_BITS)
	RotationBits int
}

// Default returns the settings used when no variable is set
func Default() *Config {
	return &Config{
		Port:         "8080",
		Environment:  EnvDevelopment,
		LogLevel:     "info",
		RotationBits: 7,
	}
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads the configuration through getenv, which makes it testable
// without touching the process environment
func LoadFrom(getenv func(string) string) (*Config, error) {
	cfg := Default()

	if port := getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if env := getenv("QRE_ENV"); env != "" {
		cfg.Environment = env
	}
	if level := getenv("QRE_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if br := getenv("QRE_ROTATION_BITS"); br != "" {
		v, err := strconv.Atoi(br)
		if err != nil {
			return nil, fmt.Errorf("QRE_ROTATION_BITS: %w", err)
		}
		cfg.RotationBits = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if c.Environment != EnvDevelopment && c.Environment != EnvProduction {
		return fmt.Errorf("invalid environment %q: want %q or %q", c.Environment, EnvDevelopment, EnvProduction)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if c.RotationBits <= 0 {
		return fmt.Errorf("rotation bits must be positive, got %d", c.RotationBits)
	}
	return nil
}

// NewLogger builds the zap logger matching the environment and level
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	if c.Environment == EnvProduction {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
