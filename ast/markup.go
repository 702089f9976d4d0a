package ast

import (
	"bytes"

	"github.com/weft-lang/weft/internal/token"
)

// Document is the root node of a parsed Weft source file. Its top-level
// nodes are markup children plus any statements rewrite passes insert in
// front of them.
type Document struct {
	Stmts []Node // top-level nodes in source order
}

func (d *Document) Pos() token.Position {
	if len(d.Stmts) > 0 {
		return d.Stmts[0].Pos()
	}
	return token.NoPos
}

func (d *Document) End() token.Position {
	if len(d.Stmts) > 0 {
		return d.Stmts[len(d.Stmts)-1].End()
	}
	return token.NoPos
}

func (d *Document) String() string {
	var out bytes.Buffer
	for i, stmt := range d.Stmts {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(stmt.String())
	}
	return out.String()
}

// Element is an expression node representing one markup element, either
// self-closing or carrying a child sequence terminated by a matching end
// tag.
type Element struct {
	Lt          token.Position // position of the opening "<"
	Tag         Expr           // tag expression: *Ident or *GetAttr
	Attrs       []*Attr        // attributes in source order
	SelfClosing bool           // true for <tag ... />
	Children    []Node         // child nodes; nil for self-closing elements
	Close       token.Position // position of the final ">" or "/>"
}

func (x *Element) exprNode() {}

func (x *Element) Pos() token.Position { return x.Lt }

func (x *Element) End() token.Position {
	if x.SelfClosing {
		return x.Close.Advance(2) // len("/>")
	}
	return x.Close.Advance(1)
}

func (x *Element) String() string {
	var out bytes.Buffer
	out.WriteString("<")
	out.WriteString(x.Tag.String())
	for _, attr := range x.Attrs {
		out.WriteString(" ")
		out.WriteString(attr.String())
	}
	if x.SelfClosing {
		out.WriteString(" />")
		return out.String()
	}
	out.WriteString(">")
	for _, child := range x.Children {
		out.WriteString(child.String())
	}
	out.WriteString("</")
	out.WriteString(x.Tag.String())
	out.WriteString(">")
	return out.String()
}

// Attr is a node representing one attribute on an element. The value is
// nil for a bare attribute, a *String for a quoted value, or an *Embed
// for an expression container value.
type Attr struct {
	Name  *Ident // attribute name
	Value Node   // nil, *String, or *Embed
}

func (a *Attr) Pos() token.Position { return a.Name.Pos() }

func (a *Attr) End() token.Position {
	if a.Value != nil {
		return a.Value.End()
	}
	return a.Name.End()
}

func (a *Attr) String() string {
	if a.Value == nil {
		return a.Name.Name
	}
	return a.Name.Name + "=" + a.Value.String()
}

// Fragment is an expression node that groups a sequence of children
// without introducing an element. Rewrite passes synthesize fragments
// with unset positions.
type Fragment struct {
	Open     token.Position // position of "<>"
	Children []Node         // child nodes
	CloseTag token.Position // position of "</>"
}

func (x *Fragment) exprNode() {}

func (x *Fragment) Pos() token.Position { return x.Open }
func (x *Fragment) End() token.Position { return x.CloseTag.Advance(3) } // len("</>")

func (x *Fragment) String() string {
	var out bytes.Buffer
	out.WriteString("<>")
	for _, child := range x.Children {
		out.WriteString(child.String())
	}
	out.WriteString("</>")
	return out.String()
}

// Text is an expression node holding a run of literal document text.
type Text struct {
	ValuePos token.Position // position of the first character
	Value    string         // the text, whitespace included
}

func (x *Text) exprNode() {}

func (x *Text) Pos() token.Position { return x.ValuePos }
func (x *Text) End() token.Position { return x.ValuePos.Advance(len(x.Value)) }

func (x *Text) String() string { return x.Value }

// Embed is an expression container: a single expression enclosed in
// braces within markup, as in <li>{item.name}</li>.
type Embed struct {
	Lbrace token.Position // position of "{"
	X      Expr           // the contained expression
	Rbrace token.Position // position of "}"
}

func (x *Embed) exprNode() {}

func (x *Embed) Pos() token.Position { return x.Lbrace }
func (x *Embed) End() token.Position { return x.Rbrace.Advance(1) }

func (x *Embed) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	out.WriteString(x.X.String())
	out.WriteString("}")
	return out.String()
}

// Nop is a node with no effect and no output. Rewrite passes substitute
// it for top-level nodes they eliminate.
type Nop struct {
	From token.Position // start of the node this replaced
	To   token.Position // end of the node this replaced
}

func (x *Nop) Pos() token.Position { return x.From }
func (x *Nop) End() token.Position { return x.To }
func (x *Nop) String() string      { return "" }
