// Package syntax defines the interfaces shared by pipeline stages that
// rewrite a parsed document.
package syntax

import "github.com/weft-lang/weft/ast"

// Transformer modifies a document AST between parsing and emission.
// Transformers receive ownership of the AST and return a (possibly new) AST.
type Transformer interface {
	// Transform processes the document and returns the result.
	// The returned document may be the same instance (modified in place)
	// or a completely new document.
	Transform(doc *ast.Document) (*ast.Document, error)
}

// TransformerFunc is an adapter to use a function as a Transformer.
type TransformerFunc func(*ast.Document) (*ast.Document, error)

// Transform implements the Transformer interface.
func (f TransformerFunc) Transform(doc *ast.Document) (*ast.Document, error) {
	return f(doc)
}
