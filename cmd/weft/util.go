package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gofrs/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var red = color.New(color.FgRed).SprintFunc()

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", red(s))
	os.Exit(1)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags() {
	if viper.GetBool("no-color") || !isTerminal(os.Stdout) {
		color.NoColor = true
	}
}

// newLogger returns the compiler debug logger: a console writer on
// stderr when --debug is set, a no-op logger otherwise.
func newLogger() zerolog.Logger {
	if !viper.GetBool("debug") {
		return zerolog.Nop()
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: color.NoColor}
	return zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// buildLogger tags the debug logger with a fresh build id, so the debug
// output of interleaved compilations stays attributable to one run.
func buildLogger(logger zerolog.Logger) zerolog.Logger {
	if logger.GetLevel() == zerolog.Disabled {
		return logger
	}
	id, err := uuid.NewV4()
	if err != nil {
		return logger
	}
	return logger.With().Str("build_id", id.String()).Logger()
}
