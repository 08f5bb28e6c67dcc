package patch

import (
	"strings"
	"sync"

	"github.com/lumen-ui/lumen/pkg/dom"
)

// AttrSyncer is one attribute-reconciliation strategy. The patcher runs
// its ordered strategy list for every plain element pair; an empty list
// falls back to the built-in copy-all behavior.
type AttrSyncer interface {
	// Name identifies the strategy, for removal and introspection.
	Name() string

	// SyncAttributes mutates old's attributes to match new's.
	SyncAttributes(old, new *dom.Node)
}

// Option configures a Patcher.
type Option func(*Patcher)

// WithObserver registers a callback for every node-level operation.
func WithObserver(obs Observer) Option {
	return func(p *Patcher) {
		p.observer = obs
	}
}

// Patcher applies a newly rendered tree onto a live tree in place.
type Patcher struct {
	mu       sync.Mutex
	syncers  []AttrSyncer
	observer Observer
}

// New creates a Patcher with the built-in attribute handling.
func New(opts ...Option) *Patcher {
	p := &Patcher{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Use appends an attribute-syncer strategy to the ordered list.
func (p *Patcher) Use(s AttrSyncer) {
	if s == nil {
		return
	}
	p.mu.Lock()
	p.syncers = append(p.syncers, s)
	p.mu.Unlock()
}

// Remove removes every strategy with the given name and reports whether
// any was present. With the list empty again the built-in copy-all
// behavior is restored.
func (p *Patcher) Remove(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	kept := p.syncers[:0]
	removed := false
	for _, s := range p.syncers {
		if s.Name() == name {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	p.syncers = kept
	return removed
}

// Syncers returns the names of the installed strategies, in order.
func (p *Patcher) Syncers() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, len(p.syncers))
	for i, s := range p.syncers {
		names[i] = s.Name()
	}
	return names
}

// Apply mutates old in place to match new. Malformed input (nil nodes,
// mismatched kinds at the root) is tolerated as a no-op: the patcher
// operates on live render output it does not control and must never
// crash a render pass.
func (p *Patcher) Apply(old, new *dom.Node) {
	p.applyWith(old, new, nil)
}

// ApplyWith is Apply with an additional per-pass observer, invoked
// alongside the patcher's own. Used by instrumentation wrappers.
func (p *Patcher) ApplyWith(old, new *dom.Node, obs Observer) {
	p.applyWith(old, new, obs)
}

func (p *Patcher) applyWith(old, new *dom.Node, extra Observer) {
	pass := &pass{p: p, extra: extra}
	pass.patchNode(old, new)
}

// pass carries per-pass state so concurrent Apply calls don't share
// observers.
type pass struct {
	p     *Patcher
	extra Observer
}

func (ps *pass) observe(op Op, tag string) {
	if ps.p.observer != nil {
		ps.p.observer(op, tag)
	}
	if ps.extra != nil {
		ps.extra(op, tag)
	}
}

// patchNode dispatches one (old, new) pair through the node-kind state
// machine. old is mutated; new is only read.
func (ps *pass) patchNode(old, new *dom.Node) {
	if old == nil || new == nil {
		return
	}

	// Ownership of the subtree belongs to the nested component; the
	// parent's pass must not touch content or attributes.
	if old.IsOwned() {
		ps.observe(OpSkipOwned, old.Tag)
		return
	}

	switch {
	case old.Kind == dom.KindText && new.Kind == dom.KindText:
		if old.Text != new.Text {
			old.SetText(new.Text)
			ps.observe(OpSetText, "")
		}

	case old.Kind == dom.KindElement && new.Kind == dom.KindElement:
		if old.Tag != new.Tag {
			// An in-place patcher cannot replace its own root, so a tag
			// change rewrites the old node wholesale.
			*old = *new
			ps.observe(OpMorph, new.Tag)
			return
		}
		ps.syncAttrs(old, new)
		ps.observe(OpSyncAttrs, old.Tag)
		ps.patchChildren(old, new)

	default:
		// Mismatched or unknown kinds: leave the live node alone.
	}
}

// syncAttrs runs the strategy list, or the default copy-all fallback
// when no strategy is installed.
func (ps *pass) syncAttrs(old, new *dom.Node) {
	ps.p.mu.Lock()
	syncers := make([]AttrSyncer, len(ps.p.syncers))
	copy(syncers, ps.p.syncers)
	ps.p.mu.Unlock()

	if len(syncers) == 0 {
		defaultSyncAttributes(old, new)
		return
	}
	for _, s := range syncers {
		s.SyncAttributes(old, new)
	}
}

// defaultSyncAttributes copies every new attribute onto old and removes
// every attribute old has that new lacks. No category semantics, no
// property sync. Event-handler names and the reconciliation key are
// managed elsewhere and skipped.
func defaultSyncAttributes(old, new *dom.Node) {
	for _, a := range new.Attrs() {
		if isEventAttr(a.Name) || a.Name == "key" {
			continue
		}
		if cur, ok := old.Attr(a.Name); !ok || cur != a.Value {
			old.SetAttr(a.Name, a.Value)
		}
	}
	for _, a := range old.Attrs() {
		if isEventAttr(a.Name) || a.Name == "key" {
			continue
		}
		if !new.HasAttr(a.Name) {
			old.RemoveAttr(a.Name)
		}
	}
}

// isEventAttr reports whether the attribute name is an event binding
// (on-prefixed). Case-insensitive to catch onclick, ONCLICK, onClick.
func isEventAttr(name string) bool {
	return len(name) > 2 && strings.EqualFold(name[:2], "on")
}
