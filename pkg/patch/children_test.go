package patch

import (
	"testing"

	"github.com/lumen-ui/lumen/pkg/dom"
)

func elem(tag string, children ...*dom.Node) *dom.Node {
	n := dom.NewElement(tag)
	for _, c := range children {
		n.Append(c)
	}
	return n
}

func keyed(tag, key, text string) *dom.Node {
	n := dom.NewElement(tag)
	n.SetAttr("key", key)
	n.Append(dom.NewText(text))
	return n
}

func childTexts(n *dom.Node) []string {
	out := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if len(c.Children) > 0 {
			out = append(out, c.Children[0].Text)
		} else {
			out = append(out, c.Text)
		}
	}
	return out
}

func TestPositionalInsert(t *testing.T) {
	var log opLog
	old := elem("ul", elem("li", dom.NewText("a")))
	new := elem("ul", elem("li", dom.NewText("a")), elem("li", dom.NewText("b")))

	New(WithObserver(log.observer())).Apply(old, new)

	if len(old.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(old.Children))
	}
	if got := childTexts(old); got[1] != "b" {
		t.Errorf("appended child text = %q, want %q", got[1], "b")
	}
	if log.count(OpInsertChild) != 1 {
		t.Errorf("expected one insert op, got %v", log.ops)
	}
}

func TestPositionalRemove(t *testing.T) {
	var log opLog
	old := elem("ul", elem("li", dom.NewText("a")), elem("li", dom.NewText("b")))
	new := elem("ul", elem("li", dom.NewText("a")))

	New(WithObserver(log.observer())).Apply(old, new)

	if len(old.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(old.Children))
	}
	if log.count(OpRemoveChild) != 1 {
		t.Errorf("expected one remove op, got %v", log.ops)
	}
}

func TestPositionalReplaceOnShapeChange(t *testing.T) {
	var log opLog
	old := elem("div", elem("span", dom.NewText("inline")))
	new := elem("div", dom.NewText("just text"))

	New(WithObserver(log.observer())).Apply(old, new)

	if old.Children[0].Kind != dom.KindText || old.Children[0].Text != "just text" {
		t.Errorf("child should be replaced, got %+v", old.Children[0])
	}
	if log.count(OpReplaceChild) != 1 {
		t.Errorf("expected one replace op, got %v", log.ops)
	}
}

func TestKeyedReorderPatchesInPlace(t *testing.T) {
	a := keyed("li", "a", "alpha")
	b := keyed("li", "b", "beta")
	old := elem("ul", a, b)
	new := elem("ul", keyed("li", "b", "beta!"), keyed("li", "a", "alpha"))

	New().Apply(old, new)

	if got := childTexts(old); got[0] != "beta!" || got[1] != "alpha" {
		t.Errorf("reordered texts = %v", got)
	}
	// Identity survives the reorder.
	if old.Children[0] != b || old.Children[1] != a {
		t.Error("keyed children should be the original nodes, reordered")
	}
}

func TestKeyedInsertAndRemove(t *testing.T) {
	var log opLog
	old := elem("ul", keyed("li", "a", "alpha"), keyed("li", "b", "beta"))
	new := elem("ul", keyed("li", "a", "alpha"), keyed("li", "c", "gamma"))

	New(WithObserver(log.observer())).Apply(old, new)

	if got := childTexts(old); len(got) != 2 || got[1] != "gamma" {
		t.Errorf("texts = %v", got)
	}
	if log.count(OpInsertChild) != 1 || log.count(OpRemoveChild) != 1 {
		t.Errorf("expected one insert and one remove, got %v", log.ops)
	}
}

func TestKeyedListTreatsUnkeyedAsInsert(t *testing.T) {
	var log opLog
	old := elem("ul", keyed("li", "a", "alpha"))
	new := elem("ul", keyed("li", "a", "alpha"), elem("li", dom.NewText("loose")))

	New(WithObserver(log.observer())).Apply(old, new)

	if len(old.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(old.Children))
	}
	if log.count(OpInsertChild) != 1 {
		t.Errorf("unkeyed entry in a keyed list should insert, got %v", log.ops)
	}
}

func TestKeyedOwnedChildIsPreserved(t *testing.T) {
	owned := keyed("li", "w", "widget state")
	owned.Owner = "widget"
	old := elem("ul", owned)
	new := elem("ul", keyed("li", "w", "overwritten"))

	New().Apply(old, new)

	if old.Children[0] != owned {
		t.Fatal("owned keyed child should keep its identity")
	}
	if old.Children[0].Children[0].Text != "widget state" {
		t.Error("owned keyed child content must be untouched")
	}
}

func TestDuplicateKeysMatchFirstOnly(t *testing.T) {
	old := elem("ul", keyed("li", "a", "first"))
	new := elem("ul", keyed("li", "a", "one"), keyed("li", "a", "two"))

	New().Apply(old, new)

	if got := childTexts(old); len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("texts = %v", got)
	}
}

func TestEmptyChildLists(t *testing.T) {
	old := elem("div")
	new := elem("div")

	New().Apply(old, new)

	if len(old.Children) != 0 {
		t.Errorf("expected no children, got %d", len(old.Children))
	}
}
