package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/usefulgo/internal/logging"
	"github.com/danmuck/usefulgo/pkg/memdump"
)

const DefaultPath = "usefulctl.toml"

// Config is the usefulctl runtime configuration.
type Config struct {
	Program string
	Dump    DumpConfig
	Log     LogConfig
	Metrics MetricsConfig
}

type DumpConfig struct {
	Mode  memdump.Mode
	Label string
}

type LogConfig struct {
	Level string
}

type MetricsConfig struct {
	// Textfile is a node_exporter textfile-collector path; empty disables export.
	Textfile string
}

type fileConfig struct {
	Program string `toml:"program"`
	Dump    struct {
		Mode  string `toml:"mode"`
		Label string `toml:"label"`
	} `toml:"dump"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
	Metrics struct {
		Textfile string `toml:"textfile"`
	} `toml:"metrics"`
}

func Default() Config {
	return Config{
		Program: "usefulctl",
		Dump:    DumpConfig{Mode: memdump.Byte, Label: "mem"},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path and applies every key it defines on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("program") {
		cfg.Program = strings.TrimSpace(raw.Program)
	}
	if meta.IsDefined("dump", "mode") {
		mode, err := memdump.ParseMode(raw.Dump.Mode)
		if err != nil {
			return Config{}, fmt.Errorf("parse dump.mode: %w", err)
		}
		cfg.Dump.Mode = mode
	}
	if meta.IsDefined("dump", "label") {
		cfg.Dump.Label = raw.Dump.Label
	}
	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}
	if meta.IsDefined("metrics", "textfile") {
		cfg.Metrics.Textfile = strings.TrimSpace(raw.Metrics.Textfile)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields Default.
func LoadOptional(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Program) == "" {
		return fmt.Errorf("config missing program")
	}
	if cfg.Dump.Mode.Width() == 0 {
		return fmt.Errorf("config dump mode invalid: %s", cfg.Dump.Mode)
	}
	if cfg.Log.Level != "" {
		if _, ok := logging.ParseLevel(cfg.Log.Level); !ok {
			return fmt.Errorf("config log level invalid: %q", cfg.Log.Level)
		}
	}
	return nil
}
