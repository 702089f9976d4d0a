// Package weft compiles Weft documents: HTML-like markup with embedded
// {expression} holes, plus control-flow elements (<if>, <else-if>,
// <else>, <for>, and <let>) that desugar into pure expression trees
// before emission.
//
// Compile runs the full pipeline over one source text:
//
//	output, err := weft.Compile(ctx, source, weft.WithFilename("page.weft"))
//
// Each stage is also usable on its own through the parser, bind,
// desugar, and printer packages.
package weft

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/weft-lang/weft/bind"
	"github.com/weft-lang/weft/desugar"
	"github.com/weft-lang/weft/parser"
	"github.com/weft-lang/weft/printer"
	"github.com/weft-lang/weft/syntax"
)

// Compile parses the source text, binds component references, rewrites
// the control-flow elements, and returns the emitted source text.
func Compile(ctx context.Context, source string, options ...Option) (string, error) {
	cfg := newConfig(options...)
	doc, err := parser.Parse(ctx, source, cfg.parserOpts()...)
	if err != nil {
		return "", err
	}
	for _, stage := range cfg.stages(source) {
		doc, err = stage.Transform(doc)
		if err != nil {
			return "", err
		}
	}
	return printer.Print(doc), nil
}

// CompileFile reads and compiles one file. The file's path becomes the
// filename on diagnostics unless a WithFilename option overrides it.
func CompileFile(ctx context.Context, path string, options ...Option) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	opts := make([]Option, 0, len(options)+1)
	opts = append(opts, WithFilename(path))
	opts = append(opts, options...)
	return Compile(ctx, string(data), opts...)
}

// CompileAll compiles the given files concurrently and returns the
// output keyed by path. Each file is an independent tree, so the only
// coordination is the bounded worker limit. Failures do not stop the
// other files; they aggregate into the returned error.
func CompileAll(ctx context.Context, paths []string, options ...Option) (map[string]string, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	var mu sync.Mutex
	outputs := make(map[string]string, len(paths))
	var errs *multierror.Error

	for _, path := range paths {
		path := path
		g.Go(func() error {
			output, err := CompileFile(ctx, path, options...)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
				return nil
			}
			outputs[path] = output
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return outputs, err
	}
	return outputs, errs.ErrorOrNil()
}

// stages returns the transform pipeline to run after parsing.
func (c *config) stages(source string) []syntax.Transformer {
	var stages []syntax.Transformer
	if !c.withoutBind {
		stages = append(stages, syntax.TransformerFunc(bind.Bind))
	}
	stages = append(stages, desugar.New(
		desugar.WithFilename(c.filename),
		desugar.WithSource(source),
		desugar.WithLogger(c.logger),
	))
	return stages
}
