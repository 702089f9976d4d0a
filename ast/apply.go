package ast

// An ApplyFunc is invoked by Apply before and/or after a node's children
// are traversed. It reports whether the traversal should continue as
// described in the Apply documentation.
type ApplyFunc func(*Cursor) bool

// Apply traverses the syntax tree rooted at root in depth-first order,
// calling pre and post for each node. It returns the tree, possibly
// modified through cursor edits.
//
// If pre is not nil, it is called for each node before the node's
// children are traversed (preorder). If pre returns false, no children
// are traversed and post is not called for that node.
//
// If post is not nil, and a prior call of pre didn't return false, post
// is called for each node after its children are traversed (postorder).
// If post returns false, traversal is terminated and Apply returns
// immediately.
//
// A node replaced through its cursor is not itself traversed. A node
// deleted through its cursor does not disturb the traversal of its
// remaining siblings.
func Apply(root Node, pre, post ApplyFunc) (result Node) {
	result = root
	defer func() {
		if r := recover(); r != nil && r != abort {
			panic(r)
		}
	}()
	a := &application{pre: pre, post: post}
	a.apply(nil, func(n Node) { result = n }, nil, nil, root)
	return
}

// abort is a singleton used to signal termination of Apply.
var abort = new(int)

// A Cursor describes a node encountered during Apply. Information about
// the node and its parent is available via the Node, Parent, and Index
// methods. The tree may be edited in place during the traversal with
// Replace and Delete.
type Cursor struct {
	node   Node
	parent Node
	set    func(Node) // writes a replacement into the parent's field
	list   *[]Node    // containing slice, if the node is a slice element
	iter   *iterator  // iteration state for the containing slice
}

type iterator struct {
	index, step int
}

// Node returns the current Node.
func (c *Cursor) Node() Node { return c.node }

// Parent returns the parent of the current Node, or nil at the root.
func (c *Cursor) Parent() Node { return c.parent }

// Index reports the index >= 0 of the current Node in the slice of
// nodes that contains it, or a value < 0 if the current Node is not
// part of a slice.
func (c *Cursor) Index() int {
	if c.iter != nil {
		return c.iter.index
	}
	return -1
}

// Replace replaces the current Node with n. The replacement node is not
// walked by Apply. The replacement must satisfy the type of the slot it
// is stored into, for example an expression slot requires an Expr.
func (c *Cursor) Replace(n Node) {
	if c.iter != nil {
		(*c.list)[c.iter.index] = n
		return
	}
	c.set(n)
}

// Delete deletes the current Node from its containing slice. The
// traversal continues with the node's former successor. If the current
// Node is not part of a slice, Delete panics.
func (c *Cursor) Delete() {
	if c.iter == nil {
		panic("ast.Cursor.Delete: node not contained in slice")
	}
	i := c.iter.index
	l := *c.list
	copy(l[i:], l[i+1:])
	l[len(l)-1] = nil
	*c.list = l[:len(l)-1]
	c.iter.step--
}

type application struct {
	pre, post ApplyFunc
	cursor    Cursor
	iter      iterator
}

func (a *application) apply(parent Node, set func(Node), iter *iterator, list *[]Node, n Node) {
	if n == nil {
		return
	}

	// Reuse one cursor to avoid an allocation per visited node.
	saved := a.cursor
	a.cursor = Cursor{node: n, parent: parent, set: set, list: list, iter: iter}

	if a.pre != nil && !a.pre(&a.cursor) {
		a.cursor = saved
		return
	}

	a.applyChildren(n)

	if a.post != nil && !a.post(&a.cursor) {
		panic(abort)
	}

	a.cursor = saved
}

// applyList traverses the elements of a child slice, tolerating
// replacement and deletion of the current element as it goes.
func (a *application) applyList(parent Node, list *[]Node) {
	saved := a.iter
	a.iter.index = 0
	for {
		// Reload the slice on each step since cursor edits may shrink it.
		if a.iter.index >= len(*list) {
			break
		}
		x := (*list)[a.iter.index]
		a.iter.step = 1
		a.apply(parent, nil, &a.iter, list, x)
		a.iter.index += a.iter.step
	}
	a.iter = saved
}

func (a *application) applyChildren(node Node) {
	switch n := node.(type) {
	case *Document:
		a.applyList(n, &n.Stmts)

	// Markup
	case *Element:
		a.apply(n, func(r Node) { n.Tag = r.(Expr) }, nil, nil, n.Tag)
		for i, attr := range n.Attrs {
			a.apply(n, func(r Node) { n.Attrs[i] = r.(*Attr) }, nil, nil, attr)
		}
		a.applyList(n, &n.Children)
	case *Attr:
		a.apply(n, func(r Node) { n.Name = r.(*Ident) }, nil, nil, n.Name)
		a.apply(n, func(r Node) { n.Value = r }, nil, nil, n.Value)
	case *Fragment:
		a.applyList(n, &n.Children)
	case *Embed:
		a.apply(n, func(r Node) { n.X = r.(Expr) }, nil, nil, n.X)

	// Expressions
	case *Prefix:
		a.apply(n, func(r Node) { n.X = r.(Expr) }, nil, nil, n.X)
	case *Infix:
		a.apply(n, func(r Node) { n.X = r.(Expr) }, nil, nil, n.X)
		a.apply(n, func(r Node) { n.Y = r.(Expr) }, nil, nil, n.Y)
	case *Ternary:
		a.apply(n, func(r Node) { n.Cond = r.(Expr) }, nil, nil, n.Cond)
		a.apply(n, func(r Node) { n.IfTrue = r.(Expr) }, nil, nil, n.IfTrue)
		a.apply(n, func(r Node) { n.IfFalse = r.(Expr) }, nil, nil, n.IfFalse)
	case *Call:
		a.apply(n, func(r Node) { n.Fun = r.(Expr) }, nil, nil, n.Fun)
		a.applyList(n, &n.Args)
	case *GetAttr:
		a.apply(n, func(r Node) { n.X = r.(Expr) }, nil, nil, n.X)
	case *Index:
		a.apply(n, func(r Node) { n.X = r.(Expr) }, nil, nil, n.X)
		a.apply(n, func(r Node) { n.Index = r.(Expr) }, nil, nil, n.Index)
	case *Arrow:
		for i, param := range n.Params {
			a.apply(n, func(r Node) { n.Params[i] = r.(Pattern) }, nil, nil, param)
		}
		a.apply(n, func(r Node) { n.Body = r.(Expr) }, nil, nil, n.Body)
	case *List:
		for i, item := range n.Items {
			a.apply(n, func(r Node) { n.Items[i] = r.(Expr) }, nil, nil, item)
		}
	case *Map:
		for i := range n.Items {
			a.apply(n, func(r Node) { n.Items[i].Key = r.(Expr) }, nil, nil, n.Items[i].Key)
			a.apply(n, func(r Node) { n.Items[i].Value = r.(Expr) }, nil, nil, n.Items[i].Value)
		}

	// Patterns
	case *ListPattern:
		for i, el := range n.Elements {
			a.apply(n, func(r Node) { n.Elements[i] = r.(Pattern) }, nil, nil, el)
		}
	case *MapPattern:
		for i := range n.Entries {
			a.apply(n, func(r Node) { n.Entries[i].Key = r.(*Ident) }, nil, nil, n.Entries[i].Key)
			a.apply(n, func(r Node) { n.Entries[i].Value = r.(Pattern) }, nil, nil, n.Entries[i].Value)
		}

	case *Ident, *Text, *Int, *Float, *Bool, *Nil, *String, *Nop, *BadExpr:
		// No children
	}
}
