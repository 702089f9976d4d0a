package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/weft-lang/weft"
)

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("output-dir", "o", "", "Directory to write compiled files into")
}

var buildCmd = &cobra.Command{
	Use:   "build [files...]",
	Short: "Compile Weft files",
	Long: `Compile the given Weft files. A single file compiles to stdout;
multiple files require an output directory (-o), which receives one
compiled file per input under the same base name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, err := cmd.Flags().GetString("output-dir")
		if err != nil {
			return err
		}
		return runBuild(cmd.Context(), args, outDir, os.Stdout)
	},
}

func runBuild(ctx context.Context, paths []string, outDir string, stdout io.Writer) error {
	if outDir == "" && len(paths) > 1 {
		return errors.New("multiple files need an output directory (-o)")
	}

	logger := buildLogger(newLogger())
	outputs, err := weft.CompileAll(ctx, paths, weft.WithLogger(logger))
	if err != nil {
		return err
	}

	if outDir == "" {
		fmt.Fprint(stdout, outputs[paths[0]])
		return nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	sorted := make([]string, 0, len(outputs))
	for path := range outputs {
		sorted = append(sorted, path)
	}
	sort.Strings(sorted)
	for _, path := range sorted {
		dest := filepath.Join(outDir, filepath.Base(path))
		if err := os.WriteFile(dest, []byte(outputs[path]), 0o644); err != nil {
			return err
		}
	}
	return nil
}
