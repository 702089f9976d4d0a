// Package desugar rewrites Weft's control-flow elements (<if>, <else-if>,
// <else>, <for>, and <let>) into pure expression trees built from
// ternaries, .map calls, immediately-invoked arrows, and fragments.
//
// The pass makes exactly one postorder traversal of the document, so a
// construct nested inside another construct's children is fully rewritten
// before the outer construct assembles its own replacement, and an
// earlier sibling is fully rewritten before a later sibling's handler
// runs. The <else-if> and <else> handlers depend on that sibling order to
// find the conditional chain they attach to.
//
// Every grammar violation is fatal: the first one aborts the traversal
// and the pass returns the diagnostic with no partial output.
package desugar

import (
	"github.com/rs/zerolog"
	"github.com/weft-lang/weft/ast"
	"github.com/weft-lang/weft/bind"
	"github.com/weft-lang/weft/printer"
)

// handlerFunc rewrites one construct element. The cursor addresses the
// element within its parent, so the handler can replace or delete it in
// place.
type handlerFunc func(p *Pass, c *ast.Cursor, el *ast.Element) error

// constructs maps each control-flow tag name to its handler.
var constructs = map[string]handlerFunc{
	"if":      handleIf,
	"else-if": handleElseIf,
	"else":    handleElse,
	"for":     handleFor,
	"let":     handleLet,
}

// IsConstruct returns true if name is one of the control-flow tags
// rewritten by this pass. The tag set is spelled out rather than read
// from the handler table: the handlers reach IsConstruct through
// openSlot, so reading the table back here would make its initializer
// cyclic.
func IsConstruct(name string) bool {
	switch name {
	case "if", "else-if", "else", "for", "let":
		return true
	}
	return false
}

// Option is a configuration function for a Pass.
type Option func(*Pass)

// WithFilename sets the file name reported on diagnostics for nodes that
// carry no filename of their own.
func WithFilename(filename string) Option {
	return func(p *Pass) {
		p.filename = filename
	}
}

// WithSource provides the original source text, enabling source line
// excerpts on diagnostics.
func WithSource(source string) Option {
	return func(p *Pass) {
		p.lines = splitLines(source)
	}
}

// WithLogger sets the logger that receives the before and after debug
// dumps of the document. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Pass) {
		p.logger = logger
	}
}

// Pass rewrites the control-flow elements of one document. A Pass holds
// no state between invocations and separate Pass values over separate
// documents are independent, but one Pass must not be used concurrently.
type Pass struct {
	filename string
	lines    []string
	logger   zerolog.Logger
	err      error
}

// New returns a Pass configured with the given options.
func New(options ...Option) *Pass {
	p := &Pass{logger: zerolog.Nop()}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Transform rewrites the document in place and returns it. On the first
// grammar violation the traversal stops and the diagnostic is returned
// instead. Transform implements syntax.Transformer.
func (p *Pass) Transform(doc *ast.Document) (*ast.Document, error) {
	p.err = nil
	p.dump("before", doc)
	ast.Apply(doc, nil, p.dispatch)
	if p.err != nil {
		return nil, p.err
	}
	p.dump("after", doc)
	return doc, nil
}

// dispatch routes a visited node to its handler. It runs as the post
// hook of the traversal, after the node's children have been visited.
func (p *Pass) dispatch(c *ast.Cursor) bool {
	switch n := c.Node().(type) {
	case *ast.Element:
		tag, ok := n.Tag.(*ast.Ident)
		if !ok {
			return true
		}
		handler, ok := constructs[tag.Name]
		if !ok {
			return true
		}
		if err := handler(p, c, n); err != nil {
			p.err = err
			return false
		}
	case *ast.Call:
		// The bind stage asserts component existence for every
		// non-intrinsic tag, construct tags included. Construct names
		// stop resolving to components once this pass runs, so their
		// checks become no-ops.
		if _, ok := c.Parent().(*ast.Document); !ok {
			return true
		}
		fn, ok := n.Fun.(*ast.Ident)
		if !ok || fn.Name != bind.CheckFunc || len(n.Args) != 1 {
			return true
		}
		name, ok := n.Args[0].(*ast.String)
		if !ok || !IsConstruct(name.Value) {
			return true
		}
		c.Replace(&ast.Nop{From: n.Pos(), To: n.End()})
	}
	return true
}

// dump writes the printed source and the structural outline of the
// document to the debug log.
func (p *Pass) dump(phase string, doc *ast.Document) {
	if e := p.logger.Debug(); !e.Enabled() {
		return
	}
	p.logger.Debug().
		Str("ns", "weft:desugar").
		Str("file", p.filename).
		Str("phase", phase).
		Msg(printer.Print(doc))
	p.logger.Debug().
		Str("ns", "weft:desugar:tree").
		Str("file", p.filename).
		Str("phase", phase).
		Msg(printer.Outline(doc))
}
