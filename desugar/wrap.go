package desugar

import "github.com/weft-lang/weft/ast"

// wrapForParent wraps a produced expression so that it is legal in the
// slot the construct element occupied. Under a markup parent a bare
// expression container suffices; anywhere else the container nests
// inside a fragment, which is legal wherever a single child node is
// expected.
func wrapForParent(expr ast.Expr, parent ast.Node) ast.Node {
	embed := &ast.Embed{X: expr}
	switch parent.(type) {
	case *ast.Element, *ast.Fragment:
		return embed
	}
	return &ast.Fragment{Children: []ast.Node{embed}}
}

// wrapChildren converts a construct element's child sequence into the
// single expression its replacement needs. A lone expression container
// passes its inner expression through directly; zero, multiple, or
// markup/text children wrap in a fragment.
func wrapChildren(children []ast.Node) ast.Expr {
	if len(children) == 1 {
		if embed, ok := children[0].(*ast.Embed); ok {
			return embed.X
		}
	}
	return &ast.Fragment{Children: children}
}
