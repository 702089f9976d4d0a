package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/weft-lang/weft"
	"github.com/weft-lang/weft/errors"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check Weft files without emitting output",
	Long: `Parse, bind, and rewrite the given Weft files, reporting every
diagnostic. Exits non-zero if any file fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed, err := runCheck(cmd.Context(), args, os.Stdout)
		if err != nil {
			return err
		}
		if failed > 0 {
			exitCode = 1
		}
		return nil
	},
}

func runCheck(ctx context.Context, paths []string, stdout io.Writer) (failed int, err error) {
	formatter := errors.NewFormatter(!color.NoColor)
	logger := buildLogger(newLogger())

	for _, path := range paths {
		_, compileErr := weft.CompileFile(ctx, path, weft.WithLogger(logger))
		if compileErr == nil {
			continue
		}
		failed++
		fmt.Fprint(stdout, renderDiagnostics(formatter, compileErr))
	}

	checked := len(paths)
	if failed > 0 {
		fmt.Fprintf(stdout, "checked %d file(s): %d failed\n", checked, failed)
	} else {
		fmt.Fprintf(stdout, "checked %d file(s): ok\n", checked)
	}
	return failed, nil
}

// renderDiagnostics formats a compile error for display, using the
// source-anchored layout when the error supports it.
func renderDiagnostics(formatter *errors.Formatter, err error) string {
	switch e := err.(type) {
	case interface {
		ToFormattedMultiple() []*errors.FormattedError
	}:
		return formatter.FormatMultiple(e.ToFormattedMultiple())
	case errors.FormattableError:
		return formatter.Format(e.ToFormatted())
	default:
		return err.Error() + "\n"
	}
}
