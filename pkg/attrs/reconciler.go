package attrs

import (
	"strings"

	"github.com/lumen-ui/lumen/pkg/dom"
)

// Category classifies an attribute by the semantics applied to it.
type Category uint8

const (
	CategoryPlain   Category = iota // attribute string set only
	CategoryAria                    // aria-* attribute plus IDL property
	CategoryBoolean                 // boolean attribute/property pair
	CategoryData                    // data-* attribute, dataset-visible
	CategoryDynamic                 // attribute mirrored by an element property
)

// String returns the string representation of the Category.
func (c Category) String() string {
	switch c {
	case CategoryPlain:
		return "plain"
	case CategoryAria:
		return "aria"
	case CategoryBoolean:
		return "boolean"
	case CategoryData:
		return "data"
	case CategoryDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// MutationKind is the kind of element mutation the reconciler issued.
type MutationKind uint8

const (
	MutationSetAttr MutationKind = iota + 1
	MutationRemoveAttr
	MutationSetProp
)

// String returns the string representation of the MutationKind.
func (k MutationKind) String() string {
	switch k {
	case MutationSetAttr:
		return "SetAttr"
	case MutationRemoveAttr:
		return "RemoveAttr"
	case MutationSetProp:
		return "SetProp"
	default:
		return "Unknown"
	}
}

// Mutation describes one mutation issued against the old element.
type Mutation struct {
	Kind     MutationKind
	Category Category
	Name     string
	Value    any
}

// MutationObserver receives every mutation the reconciler issues. It is
// the spy point for the "unchanged values emit no mutation" invariant
// and the feed for telemetry counters.
type MutationObserver func(Mutation)

// Options toggles the reconciler's attribute categories. A disabled
// category's attributes fall through to plain handling: the attribute
// string is still set, but no property sync occurs.
type Options struct {
	EnableAria    bool `json:"enableAria"`
	EnableBoolean bool `json:"enableBoolean"`
	EnableData    bool `json:"enableData"`
	EnableDynamic bool `json:"enableDynamic"`
}

// DefaultOptions returns Options with every category enabled.
func DefaultOptions() Options {
	return Options{
		EnableAria:    true,
		EnableBoolean: true,
		EnableData:    true,
		EnableDynamic: true,
	}
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithConfig replaces the reconciler's category options.
func WithConfig(opts Options) Option {
	return func(r *Reconciler) {
		r.opts = opts
	}
}

// WithMutationObserver registers a mutation observer.
func WithMutationObserver(obs MutationObserver) Option {
	return func(r *Reconciler) {
		r.observe = obs
	}
}

// Reconciler applies category-aware attribute semantics to an element
// pair. It implements patch.AttrSyncer.
type Reconciler struct {
	opts    Options
	observe MutationObserver
}

// New creates a Reconciler with every category enabled unless
// configured otherwise.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{opts: DefaultOptions()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name identifies the reconciler in a patcher's strategy list.
func (r *Reconciler) Name() string {
	return PluginName
}

// Config returns the effective category options.
func (r *Reconciler) Config() Options {
	return r.opts
}

// SyncAttributes implements patch.AttrSyncer.
func (r *Reconciler) SyncAttributes(old, new *dom.Node) {
	r.UpdateElementAttributes(old, new)
}

// UpdateElementAttributes translates new's attributes into the minimal
// mutation set on old, respecting per-category semantics, and removes
// attributes no longer present. Elements with zero attributes and
// malformed (nil or non-element) inputs are tolerated silently.
func (r *Reconciler) UpdateElementAttributes(old, new *dom.Node) {
	if old == nil || new == nil ||
		old.Kind != dom.KindElement || new.Kind != dom.KindElement {
		return
	}

	seen := make(map[string]bool, new.AttrCount())
	for _, a := range new.Attrs() {
		// Event bindings are wired by the event-delegation layer, not
		// attribute sync.
		if isEventAttr(a.Name) {
			continue
		}
		seen[a.Name] = true

		switch r.classify(old.Tag, a.Name) {
		case CategoryAria:
			r.syncAria(old, a)
		case CategoryBoolean:
			r.syncBoolean(old, a)
		case CategoryData:
			r.syncPlain(old, a, CategoryData)
		case CategoryDynamic:
			r.syncDynamic(old, a)
		default:
			r.syncPlain(old, a, CategoryPlain)
		}
	}

	// Remove everything old has that new no longer carries.
	for _, a := range old.Attrs() {
		if isEventAttr(a.Name) || seen[a.Name] {
			continue
		}
		cat := r.classify(old.Tag, a.Name)
		old.RemoveAttr(a.Name)
		r.emit(Mutation{Kind: MutationRemoveAttr, Category: cat, Name: a.Name})
		if cat == CategoryBoolean {
			r.setProp(old, cat, a.Name, false)
		}
	}
}

// classify resolves the category for an attribute name, in priority
// order, honoring the per-category toggles.
func (r *Reconciler) classify(tag, name string) Category {
	switch {
	case strings.HasPrefix(name, "aria-"):
		if r.opts.EnableAria {
			return CategoryAria
		}
	case booleanAttrs[name]:
		if r.opts.EnableBoolean {
			return CategoryBoolean
		}
	case strings.HasPrefix(name, "data-"):
		if r.opts.EnableData {
			return CategoryData
		}
	default:
		if r.opts.EnableDynamic {
			if _, ok := dom.PropName(tag, name); ok {
				return CategoryDynamic
			}
		}
	}
	return CategoryPlain
}

// syncPlain sets the attribute string verbatim, skipping the write when
// the value is unchanged. Data attributes take this path too: the
// dataset view reads straight from the attribute list.
func (r *Reconciler) syncPlain(old *dom.Node, a dom.Attr, cat Category) {
	if cur, ok := old.Attr(a.Name); ok && cur == a.Value {
		return
	}
	old.SetAttr(a.Name, a.Value)
	r.emit(Mutation{Kind: MutationSetAttr, Category: cat, Name: a.Name, Value: a.Value})
}

// syncBoolean applies boolean attribute semantics: the literal string
// "false" clears the property and removes the attribute; any other
// present value, the empty string included, sets the property true and
// keeps the attribute.
func (r *Reconciler) syncBoolean(old *dom.Node, a dom.Attr) {
	if a.Value == "false" {
		if old.HasAttr(a.Name) {
			old.RemoveAttr(a.Name)
			r.emit(Mutation{Kind: MutationRemoveAttr, Category: CategoryBoolean, Name: a.Name})
		}
		r.setProp(old, CategoryBoolean, a.Name, false)
		return
	}
	if cur, ok := old.Attr(a.Name); !ok || cur != a.Value {
		old.SetAttr(a.Name, a.Value)
		r.emit(Mutation{Kind: MutationSetAttr, Category: CategoryBoolean, Name: a.Name, Value: a.Value})
	}
	r.setProp(old, CategoryBoolean, a.Name, true)
}

// syncAria sets the attribute verbatim and mirrors the camelCased IDL
// property when the capability table exposes one. Attributes outside
// the table just skip the property step.
func (r *Reconciler) syncAria(old *dom.Node, a dom.Attr) {
	r.syncPlain(old, a, CategoryAria)
	if prop, ok := dom.AriaPropName(a.Name); ok {
		r.setProp(old, CategoryAria, prop, a.Value)
	}
}

// syncDynamic sets the attribute and mirrors the value onto the mapped
// element property.
func (r *Reconciler) syncDynamic(old *dom.Node, a dom.Attr) {
	r.syncPlain(old, a, CategoryDynamic)
	if prop, ok := dom.PropName(old.Tag, a.Name); ok {
		r.setProp(old, CategoryDynamic, prop, a.Value)
	}
}

// setProp writes a property only when its current value differs, so
// unchanged pairs stay mutation-free end to end.
func (r *Reconciler) setProp(old *dom.Node, cat Category, name string, value any) {
	if cur, ok := old.Prop(name); ok && cur == value {
		return
	}
	old.SetProp(name, value)
	r.emit(Mutation{Kind: MutationSetProp, Category: cat, Name: name, Value: value})
}

func (r *Reconciler) emit(m Mutation) {
	if r.observe != nil {
		r.observe(m)
	}
}

// isEventAttr reports whether the attribute name is an event binding
// (on-prefixed), handled by the event-delegation layer.
func isEventAttr(name string) bool {
	return len(name) > 2 && strings.EqualFold(name[:2], "on")
}
