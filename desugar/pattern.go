package desugar

import (
	"github.com/weft-lang/weft/ast"
	"github.com/weft-lang/weft/errors"
)

// pattern converts an expression appearing in binding position into the
// binding pattern it denotes. Identifiers bind a single name, list
// literals destructure positionally, and map literals destructure by
// key when every entry has a plain identifier key. Every other
// expression shape is rejected with an invalid-binding-pattern
// diagnostic, so the conversion is total over the expression kinds.
func (p *Pass) pattern(expr ast.Expr, context []ast.Node) (ast.Pattern, error) {
	switch v := expr.(type) {
	case *ast.Ident:
		return v, nil
	case *ast.List:
		elements := make([]ast.Pattern, 0, len(v.Items))
		for _, item := range v.Items {
			element, err := p.pattern(item, append(context, v))
			if err != nil {
				return nil, err
			}
			elements = append(elements, element)
		}
		return &ast.ListPattern{
			Lbrack:   v.Lbrack,
			Elements: elements,
			Rbrack:   v.Rbrack,
		}, nil
	case *ast.Map:
		entries := make([]ast.MapPatternEntry, 0, len(v.Items))
		for _, item := range v.Items {
			key, ok := item.Key.(*ast.Ident)
			if !ok {
				return nil, p.failf(errors.E2006, append(context, v, item.Key),
					"invalid binding pattern: map patterns require identifier keys (got %s)",
					item.Key)
			}
			value := ast.Pattern(key) // shorthand entry: {a} binds a
			if item.Value != nil {
				converted, err := p.pattern(item.Value, append(context, v))
				if err != nil {
					return nil, err
				}
				value = converted
			}
			entries = append(entries, ast.MapPatternEntry{Key: key, Value: value})
		}
		return &ast.MapPattern{
			Lbrace:  v.Lbrace,
			Entries: entries,
			Rbrace:  v.Rbrace,
		}, nil
	default:
		return nil, p.failf(errors.E2006, append(context, expr),
			"invalid binding pattern: expected an identifier, list, or map (got %s)",
			expr)
	}
}
