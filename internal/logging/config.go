package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel     = "USEFULGO_LOG_LEVEL"
	EnvLogTimestamp = "USEFULGO_LOG_TIMESTAMP"
	EnvLogNoColor   = "USEFULGO_LOG_NOCOLOR"
	EnvLogBypass    = "USEFULGO_LOG_BYPASS"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the resolved logging setup.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	Bypass    bool
}

// Option adjusts the profile defaults before environment overrides apply.
type Option func(*Config)

// WithLevel sets the level from a name such as "debug". Unknown names are ignored.
func WithLevel(raw string) Option {
	return func(cfg *Config) {
		if lvl, ok := ParseLevel(raw); ok {
			cfg.Level = lvl
		}
	}
}

var configureOnce sync.Once

func ConfigureRuntime(opts ...Option) {
	Configure(ProfileRuntime, opts...)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

// Configure installs the process logger once. Environment variables win
// over options, and options win over the profile defaults.
func Configure(profile Profile, opts ...Option) {
	configureOnce.Do(func() {
		cfg := defaultConfig(profile)
		for _, opt := range opts {
			opt(&cfg)
		}
		applyEnvOverrides(&cfg)
		Apply(cfg)
	})
}

func defaultConfig(profile Profile) Config {
	cfg := Config{NoColor: !colorTerminal()}
	switch profile {
	case ProfileTest:
		cfg.Level = zerolog.DebugLevel
		cfg.Timestamp = false
	default:
		cfg.Level = zerolog.InfoLevel
		cfg.Timestamp = true
	}
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogBypass)); ok {
		cfg.Bypass = v
	}
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none", "inactive":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
