// Package printer emits Weft source text for a parsed or rewritten
// document tree, along with structural outlines for inspection.
package printer

import (
	"bytes"
	"io"

	"github.com/weft-lang/weft/ast"
)

// Print returns the Weft source text for the given node. Element and
// fragment children print on indented lines of their own when they are
// all structural; text-bearing content stays inline so that reparsing
// the output yields the same tree.
func Print(node ast.Node) string {
	var buf bytes.Buffer
	p := &printer{buf: &buf}
	p.node(node, 0)
	return buf.String()
}

// Fprint writes the Weft source text for the given node to w.
func Fprint(w io.Writer, node ast.Node) error {
	_, err := io.WriteString(w, Print(node))
	return err
}

type printer struct {
	buf *bytes.Buffer
}

func (p *printer) node(node ast.Node, indent int) {
	switch v := node.(type) {
	case *ast.Document:
		for _, stmt := range v.Stmts {
			if _, ok := stmt.(*ast.Nop); ok {
				continue
			}
			p.node(stmt, indent)
			p.newlineUnlessPresent()
		}
	case *ast.Element:
		p.element(v, indent)
	case *ast.Fragment:
		p.buf.WriteString("<>")
		p.children(v.Children, indent)
		p.buf.WriteString("</>")
	case *ast.Text:
		p.buf.WriteString(v.Value)
	case *ast.Embed:
		p.buf.WriteString(v.String())
	case *ast.Nop:
		// no output
	default:
		// Expressions render in their canonical form.
		p.buf.WriteString(node.String())
	}
}

func (p *printer) element(el *ast.Element, indent int) {
	p.buf.WriteString("<")
	p.buf.WriteString(el.Tag.String())
	for _, attr := range el.Attrs {
		p.buf.WriteString(" ")
		p.buf.WriteString(attr.String())
	}
	if el.SelfClosing {
		p.buf.WriteString(" />")
		return
	}
	p.buf.WriteString(">")
	p.children(el.Children, indent)
	p.buf.WriteString("</")
	p.buf.WriteString(el.Tag.String())
	p.buf.WriteString(">")
}

func (p *printer) children(children []ast.Node, indent int) {
	if !blockLayout(children) {
		for _, child := range children {
			p.node(child, indent)
		}
		return
	}
	for _, child := range children {
		if _, ok := child.(*ast.Nop); ok {
			continue
		}
		p.buf.WriteString("\n")
		p.writeIndent(indent + 1)
		p.node(child, indent+1)
	}
	p.buf.WriteString("\n")
	p.writeIndent(indent)
}

// blockLayout reports whether a child sequence should print one child
// per line. Text children force inline layout: the indentation text a
// block layout introduces would change their content on reparse.
func blockLayout(children []ast.Node) bool {
	structural := false
	for _, child := range children {
		switch child.(type) {
		case *ast.Text:
			return false
		case *ast.Element, *ast.Fragment:
			structural = true
		}
	}
	return structural
}

func (p *printer) writeIndent(n int) {
	for i := 0; i < n; i++ {
		p.buf.WriteString("  ")
	}
}

func (p *printer) newlineUnlessPresent() {
	if b := p.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		p.buf.WriteString("\n")
	}
}
