package ast

import (
	"testing"

	"github.com/weft-lang/weft/internal/token"
)

func TestString(t *testing.T) {
	// <li>{item}</li>
	doc := &Document{
		Stmts: []Node{
			&Element{
				Lt: token.Position{Line: 0, Column: 0},
				Tag: &Ident{
					NamePos: token.Position{Line: 0, Column: 1},
					Name:    "li",
				},
				Children: []Node{
					&Embed{
						Lbrace: token.Position{Line: 0, Column: 4},
						X: &Ident{
							NamePos: token.Position{Line: 0, Column: 5},
							Name:    "item",
						},
						Rbrace: token.Position{Line: 0, Column: 9},
					},
				},
				Close: token.Position{Line: 0, Column: 13},
			},
		},
	}
	if doc.String() != "<li>{item}</li>" {
		t.Errorf("doc.String() wrong. got=%q", doc.String())
	}
}

func TestTernaryString(t *testing.T) {
	// ready ? <>Go</> : nil
	tern := &Ternary{
		Cond:   &Ident{Name: "ready"},
		IfTrue: &Fragment{Children: []Node{&Text{Value: "Go"}}},
		IfFalse: &Nil{
			NilPos: token.NoPos,
		},
	}
	want := "(ready ? <>Go</> : nil)"
	if tern.String() != want {
		t.Errorf("tern.String() = %q, want %q", tern.String(), want)
	}
}

func TestArrowString(t *testing.T) {
	// (item) => item.name
	arrow := &Arrow{
		Params: []Pattern{&Ident{Name: "item"}},
		Body: &GetAttr{
			X:    &Ident{Name: "item"},
			Attr: &Ident{Name: "name"},
		},
	}
	want := "((item) => item.name)"
	if arrow.String() != want {
		t.Errorf("arrow.String() = %q, want %q", arrow.String(), want)
	}
}

func TestAttrString(t *testing.T) {
	bare := &Attr{Name: &Ident{Name: "hidden"}}
	if bare.String() != "hidden" {
		t.Errorf("bare.String() = %q", bare.String())
	}
	quoted := &Attr{
		Name:  &Ident{Name: "class"},
		Value: &String{Literal: `"card"`, Value: "card"},
	}
	if quoted.String() != `class="card"` {
		t.Errorf("quoted.String() = %q", quoted.String())
	}
	embedded := &Attr{
		Name:  &Ident{Name: "test"},
		Value: &Embed{X: &Ident{Name: "done"}},
	}
	if embedded.String() != "test={done}" {
		t.Errorf("embedded.String() = %q", embedded.String())
	}
}

func TestMapPatternString(t *testing.T) {
	// {name, age: years}
	pat := &MapPattern{
		Entries: []MapPatternEntry{
			{Key: &Ident{Name: "name"}, Value: &Ident{Name: "name"}},
			{Key: &Ident{Name: "age"}, Value: &Ident{Name: "years"}},
		},
	}
	want := "{name, age: years}"
	if pat.String() != want {
		t.Errorf("pat.String() = %q, want %q", pat.String(), want)
	}
}

func TestBadExpr(t *testing.T) {
	from := token.Position{Line: 1, Column: 5, File: "test.weft"}
	to := token.Position{Line: 1, Column: 15, File: "test.weft"}

	bad := &BadExpr{From: from, To: to}

	// Test Pos() returns From
	if bad.Pos() != from {
		t.Errorf("BadExpr.Pos() = %v, want %v", bad.Pos(), from)
	}

	// Test End() returns To
	if bad.End() != to {
		t.Errorf("BadExpr.End() = %v, want %v", bad.End(), to)
	}

	// Test String() returns placeholder
	expected := "<bad expression>"
	if bad.String() != expected {
		t.Errorf("BadExpr.String() = %q, want %q", bad.String(), expected)
	}

	// Test that BadExpr implements Expr interface
	var _ Expr = bad
}

func TestSelfClosingElementEnd(t *testing.T) {
	el := &Element{
		Lt:          token.Position{Line: 0, Column: 0},
		Tag:         &Ident{NamePos: token.Position{Line: 0, Column: 1}, Name: "br"},
		SelfClosing: true,
		Close:       token.Position{Line: 0, Column: 4},
	}
	if el.End().Column != 6 {
		t.Errorf("el.End().Column = %d, want 6", el.End().Column)
	}
	if el.String() != "<br />" {
		t.Errorf("el.String() = %q", el.String())
	}
}

func TestNopString(t *testing.T) {
	nop := &Nop{}
	if nop.String() != "" {
		t.Errorf("nop.String() = %q, want empty", nop.String())
	}
}
