package main

import (
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/usefulgo/internal/config"
	"github.com/danmuck/usefulgo/internal/logging"
	"github.com/danmuck/usefulgo/pkg/diag"
)

const program = "configgen"

func main() {
	output := flag.String("output", config.DefaultPath, "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", config.DefaultPath, "config path for validation")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	logging.ConfigureRuntime()
	if flag.NArg() != 0 {
		diag.ErrorAndExit(2, true, program, "unexpected argument '%s'", flag.Arg(0))
	}

	if *validate {
		cfg, err := config.Load(*input)
		if err != nil {
			diag.ErrorAndExit(1, false, program, "%s", err.Error())
		}
		log.Info().Str("path", *input).Str("program", cfg.Program).Str("mode", cfg.Dump.Mode.String()).
			Msg("validated config")
		return
	}

	if err := config.WriteTemplate(*output, *force); err != nil {
		diag.ErrorAndExit(1, false, program, "%s", err.Error())
	}
	log.Info().Str("path", *output).Msg("wrote config template")
}
