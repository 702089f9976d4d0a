package ast

import "iter"

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	// Walk children based on node type
	switch n := node.(type) {
	case *Document:
		for _, stmt := range n.Stmts {
			Walk(v, stmt)
		}

	// Markup
	case *Element:
		if n.Tag != nil {
			Walk(v, n.Tag)
		}
		for _, attr := range n.Attrs {
			Walk(v, attr)
		}
		for _, child := range n.Children {
			Walk(v, child)
		}
	case *Attr:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *Fragment:
		for _, child := range n.Children {
			Walk(v, child)
		}
	case *Embed:
		if n.X != nil {
			Walk(v, n.X)
		}
	case *Text:
		// No children
	case *Nop:
		// No children

	// Error recovery nodes
	case *BadExpr:
		// No children

	// Expressions
	case *Ident:
		// No children
	case *Int:
		// No children
	case *Float:
		// No children
	case *Bool:
		// No children
	case *Nil:
		// No children
	case *String:
		// No children
	case *Prefix:
		if n.X != nil {
			Walk(v, n.X)
		}
	case *Infix:
		if n.X != nil {
			Walk(v, n.X)
		}
		if n.Y != nil {
			Walk(v, n.Y)
		}
	case *Ternary:
		if n.Cond != nil {
			Walk(v, n.Cond)
		}
		if n.IfTrue != nil {
			Walk(v, n.IfTrue)
		}
		if n.IfFalse != nil {
			Walk(v, n.IfFalse)
		}
	case *Call:
		if n.Fun != nil {
			Walk(v, n.Fun)
		}
		for _, arg := range n.Args {
			Walk(v, arg)
		}
	case *GetAttr:
		if n.X != nil {
			Walk(v, n.X)
		}
	case *Index:
		if n.X != nil {
			Walk(v, n.X)
		}
		if n.Index != nil {
			Walk(v, n.Index)
		}
	case *Arrow:
		for _, param := range n.Params {
			Walk(v, param)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *List:
		for _, item := range n.Items {
			Walk(v, item)
		}
	case *Map:
		for _, item := range n.Items {
			if item.Key != nil {
				Walk(v, item.Key)
			}
			if item.Value != nil {
				Walk(v, item.Value)
			}
		}

	// Patterns
	case *ListPattern:
		for _, el := range n.Elements {
			Walk(v, el)
		}
	case *MapPattern:
		for _, e := range n.Entries {
			if e.Key != nil {
				Walk(v, e.Key)
			}
			if e.Value != nil {
				Walk(v, e.Value)
			}
		}
	}
}

// Inspect traverses an AST in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the AST rooted at node
// in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		ok := true
		Inspect(root, func(n Node) bool {
			ok = ok && yield(n)
			return ok
		})
	}
}
