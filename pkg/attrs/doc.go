// Package attrs implements category-aware attribute reconciliation for
// the Lumen patcher.
//
// Given an (old, new) element pair, the reconciler classifies each new
// attribute by name (aria-* prefix, then the boolean attribute set,
// then data-* prefix, then the dynamic-property capability table, then
// plain) and applies the category's semantics: attribute writes,
// property mirroring, or both. Attributes whose old and new values are
// string-equal produce no mutation at all; attributes present only on
// the old element are removed.
//
// Each category can be disabled independently through Options; disabled
// categories fall through to plain attribute-only handling.
//
// The reconciler doubles as a patcher plugin. Install appends it to a
// host patcher's strategy list and records the registration in the
// host's plugin registry; Uninstall reverses both. Both tolerate a
// missing host, a missing patcher, and repeated calls; the standalone
// UpdateElementAttributes operation works either way.
package attrs
