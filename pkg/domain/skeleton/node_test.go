// 指示: miu200521358
package skeleton

import (
	"testing"
)

func TestNodeHierarchyTraversal(t *testing.T) {
	root := NewNode("Outfit")
	armature := root.NewChild("Armature")
	hips := armature.NewChild("Hips")
	spine := hips.NewChild("Spine")
	leftLeg := hips.NewChild("Leg_L")
	chest := spine.NewChild("Chest")

	names := []string{}
	for _, node := range root.Descendants() {
		names = append(names, node.Name())
	}
	want := []string{"Outfit", "Armature", "Hips", "Spine", "Chest", "Leg_L"}
	if len(names) != len(want) {
		t.Fatalf("descendants mismatch: got=%v want=%v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("descendants order mismatch: got=%v want=%v", names, want)
		}
	}

	if got := root.Find("Armature/Hips/Spine/Chest"); got != chest {
		t.Fatalf("find mismatch: got=%v", got.Name())
	}
	if got := root.Find("Armature/Missing"); got != nil {
		t.Fatalf("missing path should be nil: got=%s", got.Name())
	}
	if got := root.FindByName("Leg_L"); got != leftLeg {
		t.Fatalf("find by name mismatch")
	}
	if path := chest.PathFrom(root); path != "Armature/Hips/Spine/Chest" {
		t.Fatalf("path mismatch: got=%s", path)
	}
	if path := chest.PathFrom(leftLeg); path != "" {
		t.Fatalf("path outside root should be empty: got=%s", path)
	}
	if !chest.IsDescendantOf(hips) || !hips.IsDescendantOf(hips) || hips.IsDescendantOf(chest) {
		t.Fatalf("descendant check mismatch")
	}
	if chest.Top() != root {
		t.Fatalf("top mismatch: got=%s", chest.Top().Name())
	}
}

func TestNodeAddChildReparents(t *testing.T) {
	a := NewNode("A")
	b := NewNode("B")
	c := a.NewChild("C")

	b.AddChild(c)
	if c.Parent() != b {
		t.Fatalf("parent mismatch: got=%s", c.Parent().Name())
	}
	if a.ChildCount() != 0 || b.ChildCount() != 1 {
		t.Fatalf("child count mismatch: a=%d b=%d", a.ChildCount(), b.ChildCount())
	}

	// 循環は作らない。
	c.AddChild(b)
	if b.Parent() != nil {
		t.Fatalf("cycle should be rejected")
	}
	if !b.RemoveChild(c) || c.Parent() != nil {
		t.Fatalf("remove child failed")
	}
	if b.RemoveChild(c) {
		t.Fatalf("second remove should fail")
	}
}

func TestNodeWalkStopsEarly(t *testing.T) {
	root := NewNode("Root")
	root.NewChild("A").NewChild("A1")
	root.NewChild("B")

	visited := 0
	root.Walk(func(node *Node) bool {
		visited++
		return node.Name() != "A"
	})
	if visited != 2 {
		t.Fatalf("walk should stop at A: visited=%d", visited)
	}

	var nilNode *Node
	if nilNode.Name() != "" || nilNode.Children() != nil || len(nilNode.Descendants()) != 0 {
		t.Fatalf("nil node should be empty")
	}
}
