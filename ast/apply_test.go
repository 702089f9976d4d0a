package ast

import (
	"testing"
)

func TestApplyReplaceInSlice(t *testing.T) {
	// <p>one two</p> with each text child replaced by an embed
	doc := &Document{
		Stmts: []Node{
			&Element{
				Tag: &Ident{Name: "p"},
				Children: []Node{
					&Text{Value: "one"},
					&Text{Value: "two"},
				},
			},
		},
	}

	Apply(doc, nil, func(c *Cursor) bool {
		if txt, ok := c.Node().(*Text); ok {
			c.Replace(&Embed{X: &Ident{Name: txt.Value}})
		}
		return true
	})

	el := doc.Stmts[0].(*Element)
	if len(el.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(el.Children))
	}
	for i, want := range []string{"one", "two"} {
		embed, ok := el.Children[i].(*Embed)
		if !ok {
			t.Fatalf("child %d not replaced: %T", i, el.Children[i])
		}
		if embed.X.(*Ident).Name != want {
			t.Errorf("child %d = %q, want %q", i, embed.X.(*Ident).Name, want)
		}
	}
}

func TestApplyReplaceScalarField(t *testing.T) {
	// Swap out the open branch of a ternary.
	tern := &Ternary{
		Cond:    &Ident{Name: "done"},
		IfTrue:  &Text{Value: "yes"},
		IfFalse: &Nil{},
	}

	Apply(tern, nil, func(c *Cursor) bool {
		if _, ok := c.Node().(*Nil); ok {
			c.Replace(&Text{Value: "no"})
		}
		return true
	})

	txt, ok := tern.IfFalse.(*Text)
	if !ok {
		t.Fatalf("IfFalse not replaced: %T", tern.IfFalse)
	}
	if txt.Value != "no" {
		t.Errorf("IfFalse = %q, want %q", txt.Value, "no")
	}
}

func TestApplyDelete(t *testing.T) {
	doc := &Document{
		Stmts: []Node{
			&Text{Value: "a"},
			&Text{Value: "b"},
			&Text{Value: "c"},
		},
	}

	var seen []string
	Apply(doc, nil, func(c *Cursor) bool {
		if txt, ok := c.Node().(*Text); ok {
			seen = append(seen, txt.Value)
			if txt.Value == "b" {
				c.Delete()
			}
		}
		return true
	})

	// Deleting "b" must not skip "c".
	if len(seen) != 3 {
		t.Fatalf("visited %v, want all three", seen)
	}
	if len(doc.Stmts) != 2 {
		t.Fatalf("expected 2 remaining nodes, got %d", len(doc.Stmts))
	}
	if doc.Stmts[0].(*Text).Value != "a" || doc.Stmts[1].(*Text).Value != "c" {
		t.Errorf("remaining nodes wrong: %s", doc.String())
	}
}

func TestApplyPreSkipsChildren(t *testing.T) {
	doc := &Document{
		Stmts: []Node{
			&Element{
				Tag:      &Ident{Name: "div"},
				Children: []Node{&Text{Value: "inner"}},
			},
		},
	}

	var sawText bool
	Apply(doc,
		func(c *Cursor) bool {
			_, isElement := c.Node().(*Element)
			return !isElement
		},
		func(c *Cursor) bool {
			if _, ok := c.Node().(*Text); ok {
				sawText = true
			}
			return true
		})

	if sawText {
		t.Error("children of skipped element were traversed")
	}
}

func TestApplyPostAborts(t *testing.T) {
	doc := &Document{
		Stmts: []Node{
			&Text{Value: "a"},
			&Text{Value: "b"},
			&Text{Value: "c"},
		},
	}

	var seen []string
	Apply(doc, nil, func(c *Cursor) bool {
		if txt, ok := c.Node().(*Text); ok {
			seen = append(seen, txt.Value)
			if txt.Value == "b" {
				return false
			}
		}
		return true
	})

	if len(seen) != 2 {
		t.Errorf("expected traversal to stop after %q, saw %v", "b", seen)
	}
}

func TestApplyPostorder(t *testing.T) {
	// Children must be visited before parents and siblings in order.
	doc := &Document{
		Stmts: []Node{
			&Element{
				Tag:      &Ident{Name: "a"},
				Children: []Node{&Text{Value: "x"}},
			},
			&Element{
				Tag:      &Ident{Name: "b"},
				Children: []Node{&Text{Value: "y"}},
			},
		},
	}

	var order []string
	Apply(doc, nil, func(c *Cursor) bool {
		switch n := c.Node().(type) {
		case *Element:
			order = append(order, "el:"+n.Tag.String())
		case *Text:
			order = append(order, "text:"+n.Value)
		}
		return true
	})

	expected := []string{"text:x", "el:a", "text:y", "el:b"}
	if len(order) != len(expected) {
		t.Fatalf("got %v, want %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("got %v, want %v", order, expected)
		}
	}
}

func TestApplyReplaceRoot(t *testing.T) {
	root := Apply(&Text{Value: "old"}, nil, func(c *Cursor) bool {
		c.Replace(&Text{Value: "new"})
		return true
	})
	if root.(*Text).Value != "new" {
		t.Errorf("root not replaced: %s", root)
	}
}

func TestApplyIndex(t *testing.T) {
	doc := &Document{
		Stmts: []Node{
			&Text{Value: "a"},
			&Text{Value: "b"},
		},
	}

	indexes := map[string]int{}
	Apply(doc, nil, func(c *Cursor) bool {
		if txt, ok := c.Node().(*Text); ok {
			indexes[txt.Value] = c.Index()
		}
		if _, ok := c.Node().(*Document); ok && c.Index() != -1 {
			t.Errorf("root index = %d, want -1", c.Index())
		}
		return true
	})

	if indexes["a"] != 0 || indexes["b"] != 1 {
		t.Errorf("indexes = %v", indexes)
	}
}

func TestApplyDeleteOutsideSlicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic deleting a non-slice node")
		}
	}()
	tern := &Ternary{Cond: &Ident{Name: "x"}, IfTrue: &Nil{}, IfFalse: &Nil{}}
	Apply(tern, nil, func(c *Cursor) bool {
		if c.Node() == tern.Cond {
			c.Delete()
		}
		return true
	})
}
