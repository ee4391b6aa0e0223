package hovergrid

import "testing"

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
}

func TestNewSpriteDefaults(t *testing.T) {
	n := NewSprite("spr", nil)
	assertNodeDefaults(t, n, "spr", NodeTypeSprite)
	if n.Width != 0 || n.Height != 0 {
		t.Errorf("size = (%v, %v), want (0, 0) without an image", n.Width, n.Height)
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if n.Interactable {
		t.Error("Interactable should default to false")
	}
	if !n.transformDirty {
		t.Error("transformDirty should be true")
	}
}

func TestSetSize(t *testing.T) {
	n := NewSprite("spr", nil)
	n.transformDirty = false
	n.SetSize(40, 30)
	if n.Width != 40 || n.Height != 30 {
		t.Errorf("size = (%v, %v), want (40, 30)", n.Width, n.Height)
	}
	if !n.transformDirty {
		t.Error("SetSize should mark the node dirty")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewSprite("c", nil)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- AddChild / RemoveChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.Children()[0] != child {
		t.Error("Children()[0] should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")

	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 || child.Parent != p2 {
		t.Error("child should belong to p2")
	}
}

func TestAddChildPanics(t *testing.T) {
	tests := []struct {
		name  string
		setup func() (parent, child *Node)
	}{
		{"nil child", func() (*Node, *Node) { return NewContainer("p"), nil }},
		{"self", func() (*Node, *Node) {
			n := NewContainer("n")
			return n, n
		}},
		{"cycle", func() (*Node, *Node) {
			a := NewContainer("a")
			b := NewContainer("b")
			a.AddChild(b)
			return b, a
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent, child := tt.setup()
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			parent.AddChild(child)
		})
	}
}

func TestRemoveChild(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	parent.AddChild(a)
	parent.AddChild(b)

	parent.RemoveChild(a)
	if a.Parent != nil {
		t.Error("removed child should have no parent")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != b {
		t.Errorf("children = %v, want [b]", parent.Children())
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")
	p1.AddChild(child)

	defer func() {
		if recover() == nil {
			t.Error("expected panic removing a child from the wrong parent")
		}
	}()
	p2.RemoveChild(child)
}

func TestRemoveFromParentNoOp(t *testing.T) {
	n := NewContainer("orphan")
	n.RemoveFromParent()
	if n.Parent != nil {
		t.Error("orphan should stay parentless")
	}
}

// --- Queries ---

func buildQueryTree() (root, a, a1, b *Node) {
	root = NewContainer("root")
	a = NewContainer("media_a")
	a1 = NewSprite("image_a", nil)
	b = NewContainer("media_b")
	root.AddChild(a)
	a.AddChild(a1)
	root.AddChild(b)
	return root, a, a1, b
}

func TestContains(t *testing.T) {
	root, a, a1, b := buildQueryTree()
	tests := []struct {
		name        string
		scope, node *Node
		want        bool
	}{
		{"self", a, a, true},
		{"child", a, a1, true},
		{"grandchild", root, a1, true},
		{"sibling", a, b, false},
		{"ancestor", a1, a, false},
		{"nil other", a, nil, false},
		{"nil scope", nil, a, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scope.Contains(tt.node); got != tt.want {
				t.Errorf("Contains = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindAllExcludesSelf(t *testing.T) {
	root, a, _, b := buildQueryTree()
	got := root.FindAll(func(n *Node) bool { return n.Type == NodeTypeContainer })
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("FindAll = %v, want [media_a media_b]", got)
	}
}

func TestFindFirst(t *testing.T) {
	root, _, a1, _ := buildQueryTree()
	got := root.FindFirst(func(n *Node) bool { return n.Type == NodeTypeSprite })
	if got != a1 {
		t.Errorf("FindFirst = %v, want image_a", got)
	}
	if root.FindFirst(func(n *Node) bool { return n.Name == "missing" }) != nil {
		t.Error("FindFirst should return nil without a match")
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	root, a, _, _ := buildQueryTree()
	var names []string
	root.Walk(func(n *Node) bool {
		names = append(names, n.Name)
		return n != a
	})
	want := []string{"root", "media_a", "media_b"}
	if len(names) != len(want) {
		t.Fatalf("visited %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("visit %d = %q, want %q", i, names[i], want[i])
		}
	}
}

// --- ZIndex ---

func TestSortedChildrenByZIndex(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)
	a.SetZIndex(2)
	c.SetZIndex(-1)

	got := sortedChildrenOf(parent)
	want := []*Node{c, b, a}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sorted[%d] = %q, want %q", i, got[i].Name, want[i].Name)
		}
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	root, a, a1, _ := buildQueryTree()
	a.Dispose()

	if !a.IsDisposed() || !a1.IsDisposed() {
		t.Error("node and descendants should be disposed")
	}
	if root.NumChildren() != 1 {
		t.Errorf("root children = %d, want 1", root.NumChildren())
	}
	if a.ID != 0 {
		t.Errorf("disposed ID = %d, want 0", a.ID)
	}
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewContainer("n")
	n.Dispose()
	n.Dispose()
	if !n.IsDisposed() {
		t.Error("node should be disposed")
	}
}

func TestDirtyPropagationOnAddChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	child.AddChild(grandchild)
	child.transformDirty = false
	grandchild.transformDirty = false

	parent.AddChild(child)
	if !child.transformDirty || !grandchild.transformDirty {
		t.Error("AddChild should mark the whole subtree dirty")
	}
}
