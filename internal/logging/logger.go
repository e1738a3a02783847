package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	mu   sync.RWMutex
	base = zerolog.Nop()
)

// Apply builds the console logger for cfg and installs it as the process
// logger, including zerolog's global log.Logger.
func Apply(cfg Config) {
	logger := New(colorable.NewColorableStderr(), cfg)
	mu.Lock()
	base = logger
	log.Logger = logger
	mu.Unlock()
}

// New builds a console logger writing to out.
func New(out io.Writer, cfg Config) zerolog.Logger {
	if cfg.Bypass {
		return zerolog.New(io.Discard).Level(zerolog.Disabled)
	}
	writer := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	if !cfg.Timestamp {
		writer.PartsExclude = []string{zerolog.TimestampFieldName}
	}
	ctx := zerolog.New(writer).Level(cfg.Level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

// Logger returns the process logger tagged with app.
func Logger(app string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("app", app).Logger()
}

func colorTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
