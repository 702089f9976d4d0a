package desugar

import (
	"github.com/weft-lang/weft/ast"
	"github.com/weft-lang/weft/errors"
)

// attrExprs validates an element's attributes against the construct's
// grammar and returns the expression held by each required attribute.
// Attribute validation runs before any other handler logic: an
// unexpected attribute, a missing required attribute, or a required
// attribute whose value is not an expression container is fatal.
func (p *Pass) attrExprs(el *ast.Element, tag string, required ...string) (map[string]ast.Expr, error) {
	out := make(map[string]ast.Expr, len(required))
	for _, attr := range el.Attrs {
		name := attr.Name.Name
		if !containsName(required, name) {
			e := p.failf(errors.E2001, []ast.Node{el, attr},
				"<%s> does not take a %q attribute", tag, name)
			e.Suggestions = errors.SuggestSimilar(name, required)
			return nil, e
		}
		embed, ok := attr.Value.(*ast.Embed)
		if !ok {
			return nil, p.failf(errors.E2003, []ast.Node{el, attr},
				"<%s> requires %s={expression}", tag, name)
		}
		out[name] = embed.X
	}
	for _, name := range required {
		if _, ok := out[name]; !ok {
			return nil, p.failf(errors.E2002, []ast.Node{el},
				"<%s> requires a %s attribute", tag, name)
		}
	}
	return out, nil
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// handleIf rewrites <if test={cond}>children</if> into the ternary
// cond ? children : nil. The nil branch is the chain's open slot, which
// a following <else-if> or <else> may fill.
func handleIf(p *Pass, c *ast.Cursor, el *ast.Element) error {
	attrs, err := p.attrExprs(el, "if", "test")
	if err != nil {
		return err
	}
	tern := &ast.Ternary{
		Cond:    attrs["test"],
		IfTrue:  wrapChildren(el.Children),
		IfFalse: &ast.Nil{},
	}
	c.Replace(wrapForParent(tern, c.Parent()))
	return nil
}

// handleElseIf extends the preceding sibling's conditional chain with
// another ternary, leaving a fresh open slot, and deletes the element.
// Its entire effect is the mutation of the prior sibling's expression.
func handleElseIf(p *Pass, c *ast.Cursor, el *ast.Element) error {
	attrs, err := p.attrExprs(el, "else-if", "test")
	if err != nil {
		return err
	}
	slot, err := p.openSlot(c, el, "else-if")
	if err != nil {
		return err
	}
	slot.IfFalse = &ast.Ternary{
		Cond:    attrs["test"],
		IfTrue:  wrapChildren(el.Children),
		IfFalse: &ast.Nil{},
	}
	c.Delete()
	return nil
}

// handleElse fills the preceding chain's open slot with the element's
// children, closing the chain, and deletes the element.
func handleElse(p *Pass, c *ast.Cursor, el *ast.Element) error {
	if _, err := p.attrExprs(el, "else"); err != nil {
		return err
	}
	slot, err := p.openSlot(c, el, "else")
	if err != nil {
		return err
	}
	slot.IfFalse = wrapChildren(el.Children)
	c.Delete()
	return nil
}

// handleFor rewrites <for var={pattern} of={iterable}>children</for>
// into iterable.map((pattern) => children).
func handleFor(p *Pass, c *ast.Cursor, el *ast.Element) error {
	attrs, err := p.attrExprs(el, "for", "var", "of")
	if err != nil {
		return err
	}
	param, err := p.pattern(attrs["var"], []ast.Node{el})
	if err != nil {
		return err
	}
	call := &ast.Call{
		Fun: &ast.GetAttr{
			X:    attrs["of"],
			Attr: &ast.Ident{Name: "map"},
		},
		Args: []ast.Node{&ast.Arrow{
			Lparen: el.Lt,
			Params: []ast.Pattern{param},
			Body:   wrapChildren(el.Children),
		}},
	}
	c.Replace(wrapForParent(call, c.Parent()))
	return nil
}

// handleLet rewrites <let var={pattern} value={expr}>children</let>
// into ((pattern) => children)(expr), binding the pattern's names over
// the children without introducing a new markup construct.
func handleLet(p *Pass, c *ast.Cursor, el *ast.Element) error {
	attrs, err := p.attrExprs(el, "let", "var", "value")
	if err != nil {
		return err
	}
	param, err := p.pattern(attrs["var"], []ast.Node{el})
	if err != nil {
		return err
	}
	call := &ast.Call{
		Fun: &ast.Arrow{
			Lparen: el.Lt,
			Params: []ast.Pattern{param},
			Body:   wrapChildren(el.Children),
		},
		Args: []ast.Node{attrs["value"]},
	}
	c.Replace(wrapForParent(call, c.Parent()))
	return nil
}
