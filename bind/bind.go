// Package bind inserts component existence checks into a parsed
// document. Any element tag that is a plain identifier and not an
// intrinsic markup name must resolve to a component at emission time;
// bind records that requirement by prepending one check call per
// distinct name. The desugar pass later neutralizes the checks for the
// control-flow tags it eliminates.
package bind

import (
	"strconv"

	"github.com/weft-lang/weft/ast"
)

// CheckFunc is the name of the injected existence-check function. The
// emitted call shape is mustComponent("name").
const CheckFunc = "mustComponent"

// intrinsics are the markup names resolved by the emitter itself rather
// than by user components.
var intrinsics = map[string]bool{
	"a":        true,
	"body":     true,
	"br":       true,
	"button":   true,
	"div":      true,
	"em":       true,
	"footer":   true,
	"form":     true,
	"h1":       true,
	"h2":       true,
	"h3":       true,
	"h4":       true,
	"h5":       true,
	"h6":       true,
	"head":     true,
	"header":   true,
	"hr":       true,
	"html":     true,
	"img":      true,
	"input":    true,
	"label":    true,
	"li":       true,
	"main":     true,
	"nav":      true,
	"ol":       true,
	"option":   true,
	"p":        true,
	"pre":      true,
	"section":  true,
	"select":   true,
	"small":    true,
	"span":     true,
	"strong":   true,
	"table":    true,
	"tbody":    true,
	"td":       true,
	"textarea": true,
	"th":       true,
	"thead":    true,
	"title":    true,
	"tr":       true,
	"ul":       true,
}

// IsIntrinsic returns true if name is a markup name the emitter resolves
// without a component lookup.
func IsIntrinsic(name string) bool {
	return intrinsics[name]
}

// Bind prepends one mustComponent("name") statement per distinct
// non-intrinsic component tag, in first-use order. Dotted tags resolve
// through ordinary attribute access and are not checked here. Bind
// implements the syntax.TransformerFunc signature.
func Bind(doc *ast.Document) (*ast.Document, error) {
	var names []string
	seen := map[string]bool{}
	ast.Inspect(doc, func(n ast.Node) bool {
		el, ok := n.(*ast.Element)
		if !ok {
			return true
		}
		tag, ok := el.Tag.(*ast.Ident)
		if !ok {
			return true
		}
		if IsIntrinsic(tag.Name) || seen[tag.Name] {
			return true
		}
		seen[tag.Name] = true
		names = append(names, tag.Name)
		return true
	})
	if len(names) == 0 {
		return doc, nil
	}
	checks := make([]ast.Node, 0, len(names)+len(doc.Stmts))
	for _, name := range names {
		checks = append(checks, &ast.Call{
			Fun: &ast.Ident{Name: CheckFunc},
			Args: []ast.Node{&ast.String{
				Value:   name,
				Literal: strconv.Quote(name),
			}},
		})
	}
	doc.Stmts = append(checks, doc.Stmts...)
	return doc, nil
}
