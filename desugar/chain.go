package desugar

import (
	"strings"

	"github.com/weft-lang/weft/ast"
	"github.com/weft-lang/weft/errors"
)

// openSlot locates the unfilled else branch of the conditional chain
// produced by the construct element's preceding sibling. Wrapping may
// have nested the chain inside fragments, so the locator descends
// through trailing fragment children, unwraps one expression container,
// then follows the false branches of nested ternaries to the chain
// tail. The tail must still be the nil sentinel; anything else means no
// <if> preceded the element, or an <else> already closed the chain.
//
// The returned ternary owns the open slot: the caller overwrites its
// IfFalse in place.
func (p *Pass) openSlot(c *ast.Cursor, el *ast.Element, tag string) (*ast.Ternary, error) {
	code := errors.E2004
	if tag == "else" {
		code = errors.E2005
	}

	prev := precedingSibling(c)
	if prev == nil {
		return nil, p.failf(code, []ast.Node{c.Parent(), el},
			"<%s> must follow an <if> or <else-if>", tag)
	}

	node := prev
	for {
		frag, ok := node.(*ast.Fragment)
		if !ok || len(frag.Children) == 0 {
			break
		}
		node = frag.Children[len(frag.Children)-1]
	}
	if embed, ok := node.(*ast.Embed); ok {
		node = embed.X
	}

	if sibling, ok := node.(*ast.Element); ok {
		if name, ok := sibling.Tag.(*ast.Ident); ok && IsConstruct(name.Name) {
			// Postorder rewrites earlier siblings first; meeting one
			// still in construct form is an internal invariant violation.
			return nil, p.failf(code, []ast.Node{c.Parent(), el},
				"internal: <%s> preceded by an unrewritten <%s>", tag, name.Name)
		}
	}

	tern, ok := node.(*ast.Ternary)
	if !ok {
		return nil, p.failf(code, []ast.Node{c.Parent(), el},
			"<%s> must follow an <if> or <else-if>", tag)
	}
	for {
		next, ok := tern.IfFalse.(*ast.Ternary)
		if !ok {
			break
		}
		tern = next
	}
	if _, ok := tern.IfFalse.(*ast.Nil); !ok {
		return nil, p.failf(code, []ast.Node{c.Parent(), el},
			"<%s> must follow an <if> or <else-if> (the chain is already closed by an <else>)", tag)
	}
	return tern, nil
}

// precedingSibling returns the nearest preceding sibling of the cursor's
// node that is not whitespace-only text, or nil if there is none. Same
// line whitespace between chain elements survives parsing and does not
// break the chain.
func precedingSibling(c *ast.Cursor) ast.Node {
	siblings := siblingList(c.Parent())
	if siblings == nil {
		return nil
	}
	for i := c.Index() - 1; i >= 0; i-- {
		if text, ok := siblings[i].(*ast.Text); ok {
			if strings.TrimSpace(text.Value) == "" {
				continue
			}
		}
		return siblings[i]
	}
	return nil
}

func siblingList(parent ast.Node) []ast.Node {
	switch v := parent.(type) {
	case *ast.Document:
		return v.Stmts
	case *ast.Element:
		return v.Children
	case *ast.Fragment:
		return v.Children
	}
	return nil
}
