package dom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // <div>, <button>, etc.
	KindText                // plain text node
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Attr is a single attribute. Enumeration preserves document order.
type Attr struct {
	Name  string
	Value string
}

// Node is one node of the live tree.
type Node struct {
	Kind     Kind
	Tag      string  // element tag name (e.g. "div")
	Text     string  // content for KindText
	Children []*Node // child nodes, for KindElement

	// Owner is the back-reference to the component instance managing
	// this subtree. A non-nil Owner marks the subtree opaque to an
	// ancestor's patch pass.
	Owner any

	attrs []Attr
	props map[string]any
}

// NewElement creates an element node with the given attributes.
func NewElement(tag string, attrs ...Attr) *Node {
	return &Node{Kind: KindElement, Tag: tag, attrs: attrs}
}

// NewText creates a text node.
func NewText(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// Append adds children to the element and returns it for chaining.
func (n *Node) Append(children ...*Node) *Node {
	if n == nil {
		return nil
	}
	n.Children = append(n.Children, children...)
	return n
}

// IsOwned reports whether the node belongs to a component instance.
func (n *Node) IsOwned() bool {
	return n != nil && n.Owner != nil
}

// SetText replaces a text node's content.
func (n *Node) SetText(text string) {
	if n == nil {
		return
	}
	n.Text = text
}

// Attr returns the attribute value and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the attribute is present.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// SetAttr sets an attribute, overwriting any existing value.
// New attributes append to the enumeration order.
func (n *Node) SetAttr(name, value string) {
	if n == nil || name == "" {
		return
	}
	for i, a := range n.attrs {
		if a.Name == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
}

// RemoveAttr removes an attribute. Absent attributes are a no-op.
func (n *Node) RemoveAttr(name string) {
	if n == nil {
		return
	}
	for i, a := range n.attrs {
		if a.Name == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return
		}
	}
}

// Attrs returns a copy of the attribute list in enumeration order.
func (n *Node) Attrs() []Attr {
	if n == nil || len(n.attrs) == 0 {
		return nil
	}
	out := make([]Attr, len(n.attrs))
	copy(out, n.attrs)
	return out
}

// AttrCount returns the number of attributes.
func (n *Node) AttrCount() int {
	if n == nil {
		return 0
	}
	return len(n.attrs)
}

// Prop returns an element property value and whether it was ever set.
// Properties are the mutable DOM-object side of attributes (checked,
// value, className); they do not round-trip through serialization.
func (n *Node) Prop(name string) (any, bool) {
	if n == nil || n.props == nil {
		return nil, false
	}
	v, ok := n.props[name]
	return v, ok
}

// SetProp sets an element property.
func (n *Node) SetProp(name string, value any) {
	if n == nil || name == "" {
		return
	}
	if n.props == nil {
		n.props = make(map[string]any)
	}
	n.props[name] = value
}
