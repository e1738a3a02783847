package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/danmuck/usefulgo/internal/config"
	"github.com/danmuck/usefulgo/internal/logging"
	"github.com/danmuck/usefulgo/internal/observability"
	"github.com/danmuck/usefulgo/pkg/diag"
)

const usage = `Usage: usefulctl [-config FILE] COMMAND [ARGS]

Commands:
  version                          print the library version
  dump [-mode M] [-label L] [-offset N] [-count N] FILE
                                   hex dump FILE as byte|half|word elements
  pack half HI LO                  two bytes into a halfword
  pack word HI LO                  two halfwords into a word
  pack mixed HI B C                a halfword and two bytes into a word
  pack bytes A B C D               four bytes into a word
  unpack half|word|bytes VALUE     split a halfword or word
  check even|odd X                 parity test
  check between X LO HI            inclusive range test
  oneof [-type T] PROBE CAND...    1-based index of PROBE among CANDs, 0 if absent
  help                             show this message
`

type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

type app struct {
	out      io.Writer
	reporter *diag.Reporter
	exitFn   func(int)

	cfg     config.Config
	log     zerolog.Logger
	command string
}

func newApp(stdout, stderr io.Writer, exit func(int)) *app {
	a := &app{
		out:    stdout,
		exitFn: exit,
		cfg:    config.Default(),
		log:    zerolog.Nop(),
	}
	a.reporter = diag.NewReporter(stderr, a.exit)
	return a
}

// execute runs args and routes any failure through the fatal reporter.
func (a *app) execute(args []string) {
	err := a.run(args)
	if err == nil {
		observability.RecordCommand(a.command, 0)
		a.flushMetrics()
		return
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		a.reporter.ErrorAndExit(2, true, a.cfg.Program, "%s", uerr.msg)
	}
	a.reporter.ErrorAndExit(1, false, a.cfg.Program, "%s", err.Error())
}

func (a *app) exit(status int) {
	observability.RecordFatalExit(status)
	observability.RecordCommand(a.command, status)
	a.flushMetrics()
	a.log.Debug().Str("command", a.command).Int("status", status).Msg("exiting")
	a.exitFn(status)
}

func (a *app) flushMetrics() {
	if err := observability.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
		a.log.Warn().Err(err).Str("path", a.cfg.Metrics.Textfile).Msg("metrics export failed")
	}
}

func (a *app) run(args []string) error {
	fs := flag.NewFlagSet(a.cfg.Program, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("config", config.DefaultPath, "config file path")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return a.help()
		}
		return usagef("%v", err)
	}

	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	var (
		cfg config.Config
		err error
	)
	if explicit {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadOptional(*configPath)
	}
	if err != nil {
		return err
	}
	a.cfg = cfg

	logging.ConfigureRuntime(logging.WithLevel(cfg.Log.Level))
	a.log = logging.Logger(cfg.Program)

	rest := fs.Args()
	if len(rest) == 0 {
		return usagef("missing command")
	}
	a.command = rest[0]
	a.log.Debug().Str("command", a.command).Strs("args", rest[1:]).Msg("dispatch")

	switch a.command {
	case "version":
		return a.version(rest[1:])
	case "dump":
		return a.dump(rest[1:])
	case "pack":
		return a.pack(rest[1:])
	case "unpack":
		return a.unpack(rest[1:])
	case "check":
		return a.check(rest[1:])
	case "oneof":
		return a.oneof(rest[1:])
	case "help":
		return a.help()
	default:
		return usagef("unknown command '%s'", a.command)
	}
}

func (a *app) help() error {
	_, err := io.WriteString(a.out, usage)
	return err
}
