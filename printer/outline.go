package printer

import (
	"bytes"
	"fmt"

	"github.com/weft-lang/weft/ast"
)

// Outline returns an indented structural outline of the node tree, one
// node per line with its salient detail.
func Outline(node ast.Node) string {
	var buf bytes.Buffer
	o := &outliner{buf: &buf}
	o.node(node, 0)
	return buf.String()
}

type outliner struct {
	buf *bytes.Buffer
}

func (o *outliner) line(indent int, format string, args ...interface{}) {
	for i := 0; i < indent; i++ {
		o.buf.WriteString("  ")
	}
	fmt.Fprintf(o.buf, format, args...)
	o.buf.WriteString("\n")
}

func (o *outliner) node(node ast.Node, indent int) {
	switch v := node.(type) {
	case *ast.Document:
		o.line(indent, "Document")
		for _, stmt := range v.Stmts {
			o.node(stmt, indent+1)
		}
	case *ast.Element:
		o.line(indent, "Element <%s>", v.Tag)
		for _, attr := range v.Attrs {
			o.attr(attr, indent+1)
		}
		for _, child := range v.Children {
			o.node(child, indent+1)
		}
	case *ast.Fragment:
		o.line(indent, "Fragment")
		for _, child := range v.Children {
			o.node(child, indent+1)
		}
	case *ast.Text:
		o.line(indent, "Text %q", v.Value)
	case *ast.Embed:
		o.line(indent, "Embed")
		o.node(v.X, indent+1)
	case *ast.Nop:
		o.line(indent, "Nop")
	case *ast.Ident:
		o.line(indent, "Ident %s", v.Name)
	case *ast.Int:
		o.line(indent, "Int %s", v.Literal)
	case *ast.Float:
		o.line(indent, "Float %s", v.Literal)
	case *ast.Bool:
		o.line(indent, "Bool %s", v.Literal)
	case *ast.Nil:
		o.line(indent, "Nil")
	case *ast.String:
		o.line(indent, "String %q", v.Value)
	case *ast.List:
		o.line(indent, "List")
		for _, item := range v.Items {
			o.node(item, indent+1)
		}
	case *ast.Map:
		o.line(indent, "Map")
		for _, item := range v.Items {
			o.line(indent+1, "Entry %s", item.Key)
			if item.Value != nil {
				o.node(item.Value, indent+2)
			}
		}
	case *ast.Prefix:
		o.line(indent, "Prefix %s", v.Op)
		o.node(v.X, indent+1)
	case *ast.Infix:
		o.line(indent, "Infix %s", v.Op)
		o.node(v.X, indent+1)
		o.node(v.Y, indent+1)
	case *ast.Ternary:
		o.line(indent, "Ternary")
		o.node(v.Cond, indent+1)
		o.node(v.IfTrue, indent+1)
		o.node(v.IfFalse, indent+1)
	case *ast.Call:
		o.line(indent, "Call")
		o.node(v.Fun, indent+1)
		for _, arg := range v.Args {
			o.node(arg, indent+1)
		}
	case *ast.GetAttr:
		o.line(indent, "GetAttr %s", v.Attr.Name)
		o.node(v.X, indent+1)
	case *ast.Index:
		o.line(indent, "Index")
		o.node(v.X, indent+1)
		o.node(v.Index, indent+1)
	case *ast.Arrow:
		o.line(indent, "Arrow")
		for _, param := range v.Params {
			o.line(indent+1, "Param %s", param)
		}
		o.node(v.Body, indent+1)
	default:
		o.line(indent, "%T", node)
	}
}

func (o *outliner) attr(attr *ast.Attr, indent int) {
	o.line(indent, "Attr %s", attr.Name.Name)
	if attr.Value != nil {
		o.node(attr.Value, indent+1)
	}
}
