package config

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// Environment variables recognised by ApplyEnv and the command.
const (
	EnvConfigPath         = "SHELTERNET_CONFIG"
	EnvLogLevel           = "SHELTERNET_LOG_LEVEL"
	EnvMetricsAddr        = "SHELTERNET_METRICS_ADDR"
	EnvEmergencyThreshold = "SHELTERNET_EMERGENCY_THRESHOLD"
)

// ApplyEnv overrides file values with environment variables found by lookup
// (normally os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvMetricsAddr); ok {
		c.Metrics.Addr = v
	}
	if v, ok := lookup(EnvEmergencyThreshold); ok && v != "" {
		t, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvEmergencyThreshold, v, err)
		}
		c.Engine.EmergencyThreshold = t
	}

	return nil
}

// NewLogger builds the zap logger described by the log section.
func (l LogConfig) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	zc := zap.NewProductionConfig()
	if l.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	return zc.Build()
}
