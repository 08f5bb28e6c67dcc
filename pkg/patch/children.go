package patch

import "github.com/lumen-ui/lumen/pkg/dom"

// patchChildren walks the two child lists and dispatches each pair
// through the node state machine. Lists are matched by key when any
// child carries a "key" attribute, positionally otherwise.
func (ps *pass) patchChildren(old, new *dom.Node) {
	if hasKeys(old.Children) || hasKeys(new.Children) {
		ps.patchKeyedChildren(old, new)
		return
	}

	result := make([]*dom.Node, 0, len(new.Children))
	for i, nc := range new.Children {
		if i < len(old.Children) {
			oc := old.Children[i]
			if oc.IsOwned() || sameShape(oc, nc) {
				ps.patchNode(oc, nc)
				result = append(result, oc)
			} else {
				// Different shape: adopt the new node in place of the old.
				result = append(result, nc)
				ps.observe(OpReplaceChild, tagOf(nc))
			}
		} else {
			result = append(result, nc)
			ps.observe(OpInsertChild, tagOf(nc))
		}
	}
	for i := len(new.Children); i < len(old.Children); i++ {
		ps.observe(OpRemoveChild, tagOf(old.Children[i]))
	}
	old.Children = result
}

// patchKeyedChildren matches children by their "key" attribute. Keyed
// matches are patched in place and reordered to the new positions;
// unkeyed entries in a keyed list are treated as inserts, and unmatched
// old children are dropped.
func (ps *pass) patchKeyedChildren(old, new *dom.Node) {
	oldByKey := make(map[string]*dom.Node, len(old.Children))
	for _, oc := range old.Children {
		if k := childKey(oc); k != "" {
			oldByKey[k] = oc
		}
	}

	matched := make(map[*dom.Node]bool, len(old.Children))
	result := make([]*dom.Node, 0, len(new.Children))

	for _, nc := range new.Children {
		if k := childKey(nc); k != "" {
			if oc, ok := oldByKey[k]; ok && !matched[oc] {
				matched[oc] = true
				if oc.IsOwned() || sameShape(oc, nc) {
					ps.patchNode(oc, nc)
					result = append(result, oc)
				} else {
					result = append(result, nc)
					ps.observe(OpReplaceChild, tagOf(nc))
				}
				continue
			}
		}
		result = append(result, nc)
		ps.observe(OpInsertChild, tagOf(nc))
	}

	for _, oc := range old.Children {
		if !matched[oc] {
			ps.observe(OpRemoveChild, tagOf(oc))
		}
	}
	old.Children = result
}

// sameShape reports whether the pair can be patched in place rather
// than replaced.
func sameShape(a, b *dom.Node) bool {
	if a.Kind != b.Kind {
		return false
	}
	return a.Kind != dom.KindElement || a.Tag == b.Tag
}

// childKey returns the node's reconciliation key, or "".
func childKey(n *dom.Node) string {
	if n == nil || n.Kind != dom.KindElement {
		return ""
	}
	k, _ := n.Attr("key")
	return k
}

// hasKeys reports whether any child carries a reconciliation key.
func hasKeys(children []*dom.Node) bool {
	for _, c := range children {
		if childKey(c) != "" {
			return true
		}
	}
	return false
}

func tagOf(n *dom.Node) string {
	if n == nil {
		return ""
	}
	return n.Tag
}
