// Package ast defines the abstract syntax tree representation of Weft
// documents: markup nodes, the expressions embedded within them, and the
// binding patterns produced when expressions are used in binding position.
package ast

import "github.com/weft-lang/weft/internal/token"

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Expr represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions. Markup nodes are
// expressions too: an element or fragment is a value in Weft.
type Expr interface {
	Node
	exprNode()
}

// Pattern represents a binding pattern node, introducing names in
// parameter position. A pattern is an identifier or a destructuring
// of a list or map shape.
type Pattern interface {
	Node
	patternNode()
}

// BadExpr represents an expression containing syntax errors.
// It is used by the parser to continue parsing after an error,
// allowing subsequent errors to be detected without giving up.
type BadExpr struct {
	From token.Position // start of bad expression
	To   token.Position // end of bad expression
}

func (x *BadExpr) exprNode() {}

func (x *BadExpr) Pos() token.Position { return x.From }
func (x *BadExpr) End() token.Position { return x.To }
func (x *BadExpr) String() string      { return "<bad expression>" }
