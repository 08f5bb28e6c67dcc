// Package dom provides the live node tree the Lumen patcher operates on.
//
// A Node is either an element or a text node. Elements carry an ordered
// attribute list, a property table, and children; text nodes carry
// content. Unlike a virtual node, a dom.Node is mutable in place: the
// patcher rewrites the old tree to match renderer output.
//
// Elements also expose two derived views:
//
//   - Dataset maps data-* attributes to camelCased keys, the way the
//     browser's dataset object does (data-user-name <-> userName).
//   - PropName consults a static capability table declaring which
//     attributes are mirrored by a settable element property (value,
//     class -> className, and so on), populated once per element
//     category rather than probed reflectively.
//
// ParseFragment builds node trees from HTML markup, which keeps renderer
// output and test fixtures readable.
package dom
