// Package patch mutates a live dom tree in place to match a newly
// rendered tree.
//
// Patcher.Apply walks an (old, new) node pair in lockstep. Text content
// is replaced directly; element pairs have their attributes synchronized
// and their children recursed into, positionally or by key. Subtrees
// owned by a component instance are opaque: the parent's patch pass
// never touches them.
//
// Attribute synchronization is pluggable. The patcher holds an ordered
// list of AttrSyncer strategies; installing the attributes plugin
// appends its reconciler, and removing it restores the built-in
// copy-all/remove-stale fallback. The old node is mutated; the new node
// is read-only input and is discarded (or adopted wholesale for inserted
// children) after the pass.
package patch
